package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// RecurringExpenseRepository defines the interface for recurring expense persistence operations.
type RecurringExpenseRepository interface {
	// Create creates a new recurring expense in the database.
	Create(ctx context.Context, recurring *entity.RecurringExpense) error

	// FindByID retrieves a recurring expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringExpense, error)

	// FindByOwner retrieves all recurring expenses of an owner, with labels.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.RecurringExpenseDetail, error)

	// FindByDayOfMonth retrieves every owner's recurring expenses scheduled on day.
	FindByDayOfMonth(ctx context.Context, day int) ([]*entity.RecurringExpense, error)

	// Delete removes a recurring expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
