package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateTodayExpensesInput represents the input for a materialization run.
type CreateTodayExpensesInput struct {
	// Today overrides the run date. The zero value means the current date.
	Today time.Time
}

// CreateTodayExpensesOutput reports the outcome of a materialization run.
type CreateTodayExpensesOutput struct {
	Date      time.Time
	Templates int
	Created   int
	Failed    int
}

// CreateTodayExpensesUseCase materializes the recurring expenses scheduled for today.
type CreateTodayExpensesUseCase struct {
	expenseRepo   adapter.ExpenseRepository
	recurringRepo adapter.RecurringExpenseRepository
	trendCache    adapter.TrendCache
	publisher     adapter.ExpenseEventPublisher
	now           func() time.Time
}

// NewCreateTodayExpensesUseCase creates a new CreateTodayExpensesUseCase instance.
// trendCache and publisher are optional.
func NewCreateTodayExpensesUseCase(
	expenseRepo adapter.ExpenseRepository,
	recurringRepo adapter.RecurringExpenseRepository,
	trendCache adapter.TrendCache,
	publisher adapter.ExpenseEventPublisher,
) *CreateTodayExpensesUseCase {
	return &CreateTodayExpensesUseCase{
		expenseRepo:   expenseRepo,
		recurringRepo: recurringRepo,
		trendCache:    trendCache,
		publisher:     publisher,
		now:           time.Now,
	}
}

// Execute persists one expense per matching template. Each expense is saved on its own;
// a failed save is logged and skipped.
func (uc *CreateTodayExpensesUseCase) Execute(ctx context.Context, input CreateTodayExpensesInput) (*CreateTodayExpensesOutput, error) {
	now := uc.now()
	today := input.Today
	if today.IsZero() {
		today = now
	}
	today = entity.TruncateToDate(today)

	// 1. Select templates for the day
	templates, err := uc.recurringRepo.FindByDayOfMonth(ctx, today.Day())
	if err != nil {
		return nil, fmt.Errorf("failed to find recurring expenses: %w", err)
	}

	output := &CreateTodayExpensesOutput{Date: today, Templates: len(templates)}
	if len(templates) == 0 {
		slog.Info("No recurring expenses scheduled", "day", today.Day())
		return output, nil
	}

	// 2. Materialize and persist each record independently
	created := make(map[uuid.UUID][]*entity.Expense)
	for _, expense := range MaterializeRecurring(templates, today, now) {
		if err := uc.expenseRepo.Create(ctx, expense); err != nil {
			output.Failed++
			slog.Error("Failed to create recurring expense",
				"owner_id", expense.OwnerID,
				"sub_category_id", expense.SubCategoryID,
				"error", err,
			)
			continue
		}
		output.Created++
		created[expense.OwnerID] = append(created[expense.OwnerID], expense)
	}

	slog.Info("Recurring expenses materialized",
		"date", today.Format("2006-01-02"),
		"templates", output.Templates,
		"created", output.Created,
		"failed", output.Failed,
	)

	// 3. Notify collaborators per owner
	for ownerID, expenses := range created {
		uc.afterCreate(ctx, ownerID, expenses)
	}

	return output, nil
}

func (uc *CreateTodayExpensesUseCase) afterCreate(ctx context.Context, ownerID uuid.UUID, expenses []*entity.Expense) {
	if uc.trendCache != nil {
		if err := uc.trendCache.Invalidate(ctx, ownerID); err != nil {
			slog.Warn("Failed to invalidate trend cache", "owner_id", ownerID, "error", err)
		}
	}

	if uc.publisher == nil {
		return
	}

	ids := make([]uuid.UUID, len(expenses))
	total := decimal.Zero
	for i, e := range expenses {
		ids[i] = e.ID
		total = total.Add(e.Amount)
	}

	event := adapter.ExpensesCreatedEvent{
		OwnerID:    ownerID,
		ExpenseIDs: ids,
		Total:      total,
		Source:     adapter.ExpenseSourceRecurring,
		OccurredAt: uc.now().UTC(),
	}
	if err := uc.publisher.PublishExpensesCreated(ctx, event); err != nil {
		slog.Warn("Failed to publish expenses created event", "owner_id", ownerID, "error", err)
	}
}
