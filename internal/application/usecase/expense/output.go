package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseOutput represents a single expense in use case outputs.
type ExpenseOutput struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Amount           decimal.Decimal
	Date             time.Time
	Comments         string
	SubCategoryID    uuid.UUID
	SubCategoryLabel string
	CategoryID       uuid.UUID
	CategoryLabel    string
	PaymentTypeCode  string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// toExpenseOutput converts an expense detail into an ExpenseOutput.
func toExpenseOutput(d *entity.ExpenseDetail) *ExpenseOutput {
	return &ExpenseOutput{
		ID:               d.Expense.ID,
		OwnerID:          d.Expense.OwnerID,
		Amount:           d.Expense.Amount,
		Date:             d.Expense.Date,
		Comments:         d.Expense.Comments,
		SubCategoryID:    d.Expense.SubCategoryID,
		SubCategoryLabel: d.SubCategoryLabel,
		CategoryID:       d.CategoryID,
		CategoryLabel:    d.CategoryLabel,
		PaymentTypeCode:  d.PaymentTypeCode,
		CreatedAt:        d.Expense.CreatedAt,
		UpdatedAt:        d.Expense.UpdatedAt,
	}
}
