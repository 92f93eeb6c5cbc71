package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MinRecurringDayOfMonth is the first day a recurring expense may fire on.
	MinRecurringDayOfMonth = 1
	// MaxRecurringDayOfMonth is the last day a recurring expense may fire on.
	// Every month has at least 28 days.
	MaxRecurringDayOfMonth = 28
)

// RecurringExpense is a template that produces one expense per month.
type RecurringExpense struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Amount        decimal.Decimal
	DayOfMonth    int
	Comments      string
	SubCategoryID uuid.UUID
	PaymentTypeID uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRecurringExpense creates a new RecurringExpense entity.
func NewRecurringExpense(
	ownerID uuid.UUID,
	amount decimal.Decimal,
	dayOfMonth int,
	comments string,
	subCategoryID uuid.UUID,
	paymentTypeID uuid.UUID,
) *RecurringExpense {
	now := time.Now().UTC()

	return &RecurringExpense{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Amount:        amount,
		DayOfMonth:    dayOfMonth,
		Comments:      comments,
		SubCategoryID: subCategoryID,
		PaymentTypeID: paymentTypeID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsValidRecurringDayOfMonth reports whether day can schedule a recurring expense.
func IsValidRecurringDayOfMonth(day int) bool {
	return day >= MinRecurringDayOfMonth && day <= MaxRecurringDayOfMonth
}

// RecurringExpenseDetail is a recurring expense joined with its labels.
type RecurringExpenseDetail struct {
	RecurringExpense *RecurringExpense
	SubCategoryLabel string
	CategoryLabel    string
	PaymentTypeCode  string
}
