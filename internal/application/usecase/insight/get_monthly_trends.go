package insight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DefaultTrendWindowMonths is the number of months a trend covers when none is configured.
const DefaultTrendWindowMonths = 12

// GetMonthlyTrendsInput represents the input for the monthly trend matrix.
type GetMonthlyTrendsInput struct {
	OwnerID uuid.UUID
}

// GetMonthlyTrendsOutput holds the trend matrix and its column order.
type GetMonthlyTrendsOutput struct {
	Rows       []entity.MonthlyTrendRow
	Categories []string
	Cached     bool
}

// GetMonthlyTrendsUseCase builds the month by category spending matrix.
type GetMonthlyTrendsUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	trendCache   adapter.TrendCache
	windowMonths int
	now          func() time.Time
}

// NewGetMonthlyTrendsUseCase creates a new GetMonthlyTrendsUseCase instance.
// trendCache may be nil.
func NewGetMonthlyTrendsUseCase(
	expenseRepo adapter.ExpenseRepository,
	trendCache adapter.TrendCache,
	windowMonths int,
) *GetMonthlyTrendsUseCase {
	if windowMonths <= 0 {
		windowMonths = DefaultTrendWindowMonths
	}
	return &GetMonthlyTrendsUseCase{
		expenseRepo:  expenseRepo,
		trendCache:   trendCache,
		windowMonths: windowMonths,
		now:          time.Now,
	}
}

// Execute returns the trend matrix for the window ending in the current month.
func (uc *GetMonthlyTrendsUseCase) Execute(ctx context.Context, input GetMonthlyTrendsInput) (*GetMonthlyTrendsOutput, error) {
	// 1. Resolve the window
	today := entity.TruncateToDate(uc.now().UTC())
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := monthStart.AddDate(0, -(uc.windowMonths - 1), 0)
	// The whole current month counts, including installments dated after today
	to := monthStart.AddDate(0, 1, -1)
	cacheKey := monthStart.Format("2006-01")

	// 2. Try the cache
	if uc.trendCache != nil {
		rows, ok, err := uc.trendCache.Get(ctx, input.OwnerID, cacheKey)
		if err != nil {
			slog.Warn("Failed to read trend cache",
				"owner_id", input.OwnerID,
				"error", err,
			)
		} else if ok {
			return &GetMonthlyTrendsOutput{Rows: rows, Categories: TrendCategories(rows), Cached: true}, nil
		}
	}

	// 3. Aggregate and pivot
	totals, err := uc.expenseRepo.GetMonthlyCategoryTotals(ctx, input.OwnerID, from, to)
	if err != nil {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightUnavailable,
			"failed to load monthly totals",
			fmt.Errorf("%w: %v", domainerror.ErrInsightUnavailable, err),
		)
	}
	rows := BuildTrendMatrix(totals)

	// 4. Store in cache
	if uc.trendCache != nil {
		if err := uc.trendCache.Set(ctx, input.OwnerID, cacheKey, rows); err != nil {
			slog.Warn("Failed to write trend cache",
				"owner_id", input.OwnerID,
				"error", err,
			)
		}
	}

	return &GetMonthlyTrendsOutput{Rows: rows, Categories: TrendCategories(rows)}, nil
}
