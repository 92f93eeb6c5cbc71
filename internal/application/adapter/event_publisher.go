package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseSource tells consumers how an expense came to exist.
type ExpenseSource string

const (
	ExpenseSourceManual    ExpenseSource = "manual"
	ExpenseSourceRecurring ExpenseSource = "recurring"
)

// ExpensesCreatedEvent announces expenses persisted for one owner.
type ExpensesCreatedEvent struct {
	OwnerID    uuid.UUID
	ExpenseIDs []uuid.UUID
	Total      decimal.Decimal
	Source     ExpenseSource
	OccurredAt time.Time
}

// ExpenseEventPublisher publishes expense lifecycle events.
type ExpenseEventPublisher interface {
	// PublishExpensesCreated publishes an ExpensesCreatedEvent.
	PublishExpensesCreated(ctx context.Context, event ExpensesCreatedEvent) error
}
