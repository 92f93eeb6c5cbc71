package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// last30DaysWindow is the length of the rolling window, in days.
const last30DaysWindow = 30

// GetMonthlyExpenseInput represents the input for the spending totals.
type GetMonthlyExpenseInput struct {
	OwnerID uuid.UUID
}

// GetMonthlyExpenseOutput holds the owner's spending totals.
type GetMonthlyExpenseOutput struct {
	CurrentMonth decimal.Decimal
	Last30Days   decimal.Decimal
}

// GetMonthlyExpenseUseCase computes the current month and rolling 30 day totals.
type GetMonthlyExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewGetMonthlyExpenseUseCase creates a new GetMonthlyExpenseUseCase instance.
func NewGetMonthlyExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetMonthlyExpenseUseCase {
	return &GetMonthlyExpenseUseCase{
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

// Execute computes both totals concurrently.
func (uc *GetMonthlyExpenseUseCase) Execute(ctx context.Context, input GetMonthlyExpenseInput) (*GetMonthlyExpenseOutput, error) {
	today := entity.TruncateToDate(uc.now().UTC())
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	windowStart := today.AddDate(0, 0, -last30DaysWindow)

	var monthly entity.MonthlyExpense
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := uc.expenseRepo.SumByOwnerInRange(gctx, input.OwnerID, monthStart, today)
		if err != nil {
			return fmt.Errorf("failed to sum current month: %w", err)
		}
		monthly.CurrentMonth = total
		return nil
	})

	g.Go(func() error {
		total, err := uc.expenseRepo.SumByOwnerInRange(gctx, input.OwnerID, windowStart, today)
		if err != nil {
			return fmt.Errorf("failed to sum last 30 days: %w", err)
		}
		monthly.Last30Days = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &GetMonthlyExpenseOutput{
		CurrentMonth: monthly.CurrentMonth,
		Last30Days:   monthly.Last30Days,
	}, nil
}
