// Package valueobject contains domain value objects for the Expense Tracker system.
package valueobject

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseCriterion is one conjunct of an expense filter.
// The set of variants is closed: OwnerEquals, CategoryEquals,
// SubCategoryEquals, PaymentTypeEquals and DateRange.
type ExpenseCriterion interface {
	// Matches reports whether the expense satisfies the criterion.
	Matches(expense *entity.ExpenseDetail) bool
	isExpenseCriterion()
}

// OwnerEquals restricts results to a single owner. Every filter carries one.
type OwnerEquals struct {
	OwnerID uuid.UUID
}

// CategoryEquals matches expenses whose sub-category belongs to the category.
type CategoryEquals struct {
	CategoryID uuid.UUID
}

// SubCategoryEquals matches expenses of a single sub-category.
type SubCategoryEquals struct {
	SubCategoryID uuid.UUID
}

// PaymentTypeEquals matches expenses paid with the given payment type code.
type PaymentTypeEquals struct {
	Code string
}

// DateRange matches expenses dated within [From, To]. A nil bound is open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (OwnerEquals) isExpenseCriterion()       {}
func (CategoryEquals) isExpenseCriterion()    {}
func (SubCategoryEquals) isExpenseCriterion() {}
func (PaymentTypeEquals) isExpenseCriterion() {}
func (DateRange) isExpenseCriterion()         {}

// Matches implements ExpenseCriterion.
func (c OwnerEquals) Matches(expense *entity.ExpenseDetail) bool {
	return expense.Expense.OwnerID == c.OwnerID
}

// Matches implements ExpenseCriterion.
func (c CategoryEquals) Matches(expense *entity.ExpenseDetail) bool {
	return expense.CategoryID == c.CategoryID
}

// Matches implements ExpenseCriterion.
func (c SubCategoryEquals) Matches(expense *entity.ExpenseDetail) bool {
	return expense.Expense.SubCategoryID == c.SubCategoryID
}

// Matches implements ExpenseCriterion.
func (c PaymentTypeEquals) Matches(expense *entity.ExpenseDetail) bool {
	return expense.PaymentTypeCode == c.Code
}

// Matches implements ExpenseCriterion. Both bounds are inclusive and compared by calendar date.
func (c DateRange) Matches(expense *entity.ExpenseDetail) bool {
	date := entity.TruncateToDate(expense.Expense.Date)
	if c.From != nil && date.Before(entity.TruncateToDate(*c.From)) {
		return false
	}
	if c.To != nil && date.After(entity.TruncateToDate(*c.To)) {
		return false
	}
	return true
}

// ExpenseFilterInput holds the optional filters of an expense listing.
type ExpenseFilterInput struct {
	OwnerID         uuid.UUID
	CategoryID      *uuid.UUID
	SubCategoryID   *uuid.UUID
	PaymentTypeCode *string
	DateFrom        *time.Time
	DateTo          *time.Time
}

// ExpenseFilter is a conjunction of criteria. The first criterion is always OwnerEquals.
type ExpenseFilter struct {
	Criteria []ExpenseCriterion
}

// ComposeExpenseFilter builds the filter for the given input.
// Absent filters contribute nothing; the owner criterion is always present.
func ComposeExpenseFilter(input ExpenseFilterInput) ExpenseFilter {
	criteria := []ExpenseCriterion{OwnerEquals{OwnerID: input.OwnerID}}

	if input.CategoryID != nil {
		criteria = append(criteria, CategoryEquals{CategoryID: *input.CategoryID})
	}
	if input.SubCategoryID != nil {
		criteria = append(criteria, SubCategoryEquals{SubCategoryID: *input.SubCategoryID})
	}
	if input.PaymentTypeCode != nil && *input.PaymentTypeCode != "" {
		criteria = append(criteria, PaymentTypeEquals{Code: *input.PaymentTypeCode})
	}
	if input.DateFrom != nil || input.DateTo != nil {
		criteria = append(criteria, DateRange{From: input.DateFrom, To: input.DateTo})
	}

	return ExpenseFilter{Criteria: criteria}
}

// OwnerID returns the owner the filter is scoped to.
func (f ExpenseFilter) OwnerID() uuid.UUID {
	for _, c := range f.Criteria {
		if owner, ok := c.(OwnerEquals); ok {
			return owner.OwnerID
		}
	}
	return uuid.Nil
}

// Matches reports whether the expense satisfies every criterion.
func (f ExpenseFilter) Matches(expense *entity.ExpenseDetail) bool {
	for _, c := range f.Criteria {
		if !c.Matches(expense) {
			return false
		}
	}
	return true
}
