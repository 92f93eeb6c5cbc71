package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is the top level of the expense classification.
type Category struct {
	ID        uuid.UUID
	Label     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubCategory belongs to exactly one category.
type SubCategory struct {
	ID         uuid.UUID
	Label      string
	CategoryID uuid.UUID
	Category   *Category
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PaymentType identifies how an expense was paid, e.g. CREDIT_CARD or UPI.
type PaymentType struct {
	ID        uuid.UUID
	Code      string
	Label     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
