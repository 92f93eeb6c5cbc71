package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents an expense owner. Identity is managed by the identity
// provider; this service only keeps the fields insights need.
type User struct {
	ID            uuid.UUID
	Email         string
	Name          string
	MonthlyBudget decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
