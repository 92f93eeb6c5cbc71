package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteRecurringExpenseInput represents the input for recurring expense deletion.
type DeleteRecurringExpenseInput struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
}

// DeleteRecurringExpenseUseCase handles recurring expense deletion.
type DeleteRecurringExpenseUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
}

// NewDeleteRecurringExpenseUseCase creates a new DeleteRecurringExpenseUseCase instance.
func NewDeleteRecurringExpenseUseCase(recurringRepo adapter.RecurringExpenseRepository) *DeleteRecurringExpenseUseCase {
	return &DeleteRecurringExpenseUseCase{recurringRepo: recurringRepo}
}

// Execute deletes the recurring expense when the caller owns it.
func (uc *DeleteRecurringExpenseUseCase) Execute(ctx context.Context, input DeleteRecurringExpenseInput) error {
	// 1. Load the template
	recurring, err := uc.recurringRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringExpenseNotFound) {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringExpenseNotFound,
				"recurring expense not found",
				domainerror.ErrRecurringExpenseNotFound,
			)
		}
		return fmt.Errorf("failed to find recurring expense: %w", err)
	}

	// 2. Check ownership
	if recurring.OwnerID != input.OwnerID {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeNotAuthorizedRecurring,
			"not authorized to delete this recurring expense",
			domainerror.ErrNotAuthorizedToModifyRecurringExpense,
		)
	}

	// 3. Delete
	if err := uc.recurringRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete recurring expense: %w", err)
	}

	slog.Info("Recurring expense deleted",
		"recurring_expense_id", input.ID,
		"owner_id", input.OwnerID,
	)
	return nil
}
