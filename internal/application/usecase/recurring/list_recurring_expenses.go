package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// ListRecurringExpensesInput represents the input for listing recurring expenses.
type ListRecurringExpensesInput struct {
	OwnerID uuid.UUID
}

// ListRecurringExpensesOutput represents the output of listing recurring expenses.
type ListRecurringExpensesOutput struct {
	RecurringExpenses []*RecurringExpenseOutput
}

// ListRecurringExpensesUseCase lists the recurring expenses of an owner.
type ListRecurringExpensesUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
}

// NewListRecurringExpensesUseCase creates a new ListRecurringExpensesUseCase instance.
func NewListRecurringExpensesUseCase(recurringRepo adapter.RecurringExpenseRepository) *ListRecurringExpensesUseCase {
	return &ListRecurringExpensesUseCase{recurringRepo: recurringRepo}
}

// Execute returns the owner's recurring expenses.
func (uc *ListRecurringExpensesUseCase) Execute(ctx context.Context, input ListRecurringExpensesInput) (*ListRecurringExpensesOutput, error) {
	details, err := uc.recurringRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}

	output := &ListRecurringExpensesOutput{RecurringExpenses: make([]*RecurringExpenseOutput, len(details))}
	for i, d := range details {
		output.RecurringExpenses[i] = toRecurringExpenseOutput(d)
	}
	return output, nil
}
