// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// ExpensePage is one page of a filtered expense listing.
type ExpensePage struct {
	Content []*entity.ExpenseDetail
	Meta    valueobject.PageMeta
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// CreateBatch creates all expenses in a single transaction.
	CreateBatch(ctx context.Context, expenses []*entity.Expense) error

	// FindByOwnerInRange retrieves the owner's expenses dated within [from, to], with labels.
	FindByOwnerInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.ExpenseDetail, error)

	// GetMonthlyCategoryTotals returns the owner's spending grouped by month and category
	// for expenses dated within [from, to], ordered by month then category ascending.
	GetMonthlyCategoryTotals(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]entity.MonthlyCategoryTotal, error)

	// FindByFilter retrieves one page of expenses matching the filter.
	FindByFilter(
		ctx context.Context,
		filter valueobject.ExpenseFilter,
		page valueobject.PageRequest,
		sort []valueobject.SortOrder,
	) (*ExpensePage, error)

	// SumByOwnerInRange returns the total the owner spent within [from, to].
	SumByOwnerInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
}
