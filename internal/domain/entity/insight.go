package entity

import "github.com/shopspring/decimal"

// SubCategoryWiseExpense is the total spent in one sub-category.
type SubCategoryWiseExpense struct {
	SubCategory string
	Amount      decimal.Decimal
}

// CategoryWiseExpense is the total spent in one category, broken down by sub-category.
type CategoryWiseExpense struct {
	Category                string
	Amount                  decimal.Decimal
	SubCategoryWiseExpenses []SubCategoryWiseExpense
}

// MonthlyExpenseInsight summarizes the spending of a period against the owner's budget.
type MonthlyExpenseInsight struct {
	MonthlyBudget        decimal.Decimal
	TotalExpense         decimal.Decimal
	CategoryWiseExpenses []CategoryWiseExpense
}

// MonthlyCategoryTotal is one grouped sum row: the amount spent in a category during a month.
type MonthlyCategoryTotal struct {
	Month    string // "YYYY-MM"
	Category string
	Amount   decimal.Decimal
}

// CategoryAmount is one cell of a trend row.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// MonthlyTrendRow holds every category's amount for one month.
// CategoryAmounts is ordered by category label.
type MonthlyTrendRow struct {
	Month           string
	CategoryAmounts []CategoryAmount
}

// AmountFor returns the amount recorded for category, or zero when absent.
func (r MonthlyTrendRow) AmountFor(category string) decimal.Decimal {
	for _, ca := range r.CategoryAmounts {
		if ca.Category == category {
			return ca.Amount
		}
	}
	return decimal.Zero
}
