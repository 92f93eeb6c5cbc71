package recurring

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// RecurringExpenseOutput represents a recurring expense in use case responses.
type RecurringExpenseOutput struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Amount           decimal.Decimal
	DayOfMonth       int
	Comments         string
	SubCategoryID    uuid.UUID
	SubCategoryLabel string
	CategoryLabel    string
	PaymentTypeCode  string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func toRecurringExpenseOutput(detail *entity.RecurringExpenseDetail) *RecurringExpenseOutput {
	r := detail.RecurringExpense
	return &RecurringExpenseOutput{
		ID:               r.ID,
		OwnerID:          r.OwnerID,
		Amount:           r.Amount,
		DayOfMonth:       r.DayOfMonth,
		Comments:         r.Comments,
		SubCategoryID:    r.SubCategoryID,
		SubCategoryLabel: detail.SubCategoryLabel,
		CategoryLabel:    detail.CategoryLabel,
		PaymentTypeCode:  detail.PaymentTypeCode,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
