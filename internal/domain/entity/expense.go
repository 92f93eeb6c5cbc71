// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxExpenseCommentsLength is the maximum allowed length for expense comments.
const MaxExpenseCommentsLength = 500

// Expense represents a single spending record owned by a user.
type Expense struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time // Calendar date, stored as UTC midnight
	Comments      string
	SubCategoryID uuid.UUID
	PaymentTypeID uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	ownerID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	comments string,
	subCategoryID uuid.UUID,
	paymentTypeID uuid.UUID,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Amount:        amount,
		Date:          TruncateToDate(date),
		Comments:      comments,
		SubCategoryID: subCategoryID,
		PaymentTypeID: paymentTypeID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ExpenseDetail is an expense joined with the labels of its classification.
type ExpenseDetail struct {
	Expense          *Expense
	SubCategoryLabel string
	CategoryID       uuid.UUID
	CategoryLabel    string
	PaymentTypeCode  string
}

// MonthlyExpense holds the spending totals shown on the home screen.
type MonthlyExpense struct {
	CurrentMonth decimal.Decimal
	Last30Days   decimal.Decimal
}

// TruncateToDate drops the time of day, keeping the calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
