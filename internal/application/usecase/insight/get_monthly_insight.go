package insight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// rollingWindowDays is the length of the non-monthly insight window.
const rollingWindowDays = 30

// GetMonthlyInsightInput represents the input for a spending insight.
type GetMonthlyInsightInput struct {
	OwnerID uuid.UUID
	// Monthly selects the current calendar month. Otherwise the last 30 days are used.
	Monthly bool
}

// GetMonthlyInsightOutput holds the insight and the window it covers.
type GetMonthlyInsightOutput struct {
	Insight *entity.MonthlyExpenseInsight
	From    time.Time
	To      time.Time
}

// GetMonthlyInsightUseCase builds a category breakdown of the owner's spending.
type GetMonthlyInsightUseCase struct {
	expenseRepo adapter.ExpenseRepository
	userRepo    adapter.UserRepository
	now         func() time.Time
}

// NewGetMonthlyInsightUseCase creates a new GetMonthlyInsightUseCase instance.
func NewGetMonthlyInsightUseCase(
	expenseRepo adapter.ExpenseRepository,
	userRepo adapter.UserRepository,
) *GetMonthlyInsightUseCase {
	return &GetMonthlyInsightUseCase{
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// Execute loads the budget and the records of the window, then summarizes them.
func (uc *GetMonthlyInsightUseCase) Execute(ctx context.Context, input GetMonthlyInsightInput) (*GetMonthlyInsightOutput, error) {
	// 1. Resolve the window
	from, to := insightWindow(uc.now().UTC(), input.Monthly)

	// 2. Load budget and records concurrently
	var (
		budget  decimal.Decimal
		records []*entity.ExpenseDetail
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := uc.userRepo.FindByID(gctx, input.OwnerID)
		if err != nil {
			if errors.Is(err, domainerror.ErrUserNotFound) {
				slog.Debug("No profile for owner, using zero budget", "owner_id", input.OwnerID)
				budget = decimal.Zero
				return nil
			}
			return fmt.Errorf("failed to load user: %w", err)
		}
		budget = user.MonthlyBudget
		return nil
	})

	g.Go(func() error {
		found, err := uc.expenseRepo.FindByOwnerInRange(gctx, input.OwnerID, from, to)
		if err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		records = found
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightUnavailable,
			"failed to load insight data",
			fmt.Errorf("%w: %v", domainerror.ErrInsightUnavailable, err),
		)
	}

	// 3. Summarize
	return &GetMonthlyInsightOutput{
		Insight: SummarizeExpenses(records, budget),
		From:    from,
		To:      to,
	}, nil
}

// insightWindow returns the inclusive date range of an insight.
func insightWindow(now time.Time, monthly bool) (time.Time, time.Time) {
	today := entity.TruncateToDate(now)
	if monthly {
		from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, -1)
		return from, to
	}
	return today.AddDate(0, 0, -rollingWindowDays), today
}
