package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	OwnerID         uuid.UUID
	CategoryID      *uuid.UUID
	SubCategoryID   *uuid.UUID
	PaymentTypeCode *string
	DateFrom        *time.Time
	DateTo          *time.Time
	Page            int // Zero-based
	Size            int
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
	Page     valueobject.PageMeta
}

// ListExpensesUseCase handles filtered, paged expense listing.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if input.DateFrom != nil && input.DateTo != nil && input.DateTo.Before(*input.DateFrom) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidFilter,
			"date_to must not be before date_from",
			domainerror.ErrInvalidFilterDateRange,
		)
	}

	filter := valueobject.ComposeExpenseFilter(valueobject.ExpenseFilterInput{
		OwnerID:         input.OwnerID,
		CategoryID:      input.CategoryID,
		SubCategoryID:   input.SubCategoryID,
		PaymentTypeCode: input.PaymentTypeCode,
		DateFrom:        input.DateFrom,
		DateTo:          input.DateTo,
	})
	page := valueobject.NewPageRequest(input.Page, input.Size)

	result, err := uc.expenseRepo.FindByFilter(ctx, filter, page, valueobject.DefaultExpenseSort)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	output := &ListExpensesOutput{
		Expenses: make([]*ExpenseOutput, len(result.Content)),
		Page:     result.Meta,
	}
	for i, d := range result.Content {
		output.Expenses[i] = toExpenseOutput(d)
	}

	return output, nil
}
