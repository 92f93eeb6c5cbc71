package insight

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// BuildTrendMatrix turns sparse (month, category, amount) rows into one row per month
// carrying every category seen anywhere in the input.
//
// Categories are ordered by byte-wise string comparison. Months keep the order of
// their first occurrence in rows. Missing cells are zero. When the same
// (month, category) pair appears more than once the last occurrence wins.
func BuildTrendMatrix(rows []entity.MonthlyCategoryTotal) []entity.MonthlyTrendRow {
	if len(rows) == 0 {
		return []entity.MonthlyTrendRow{}
	}

	categorySet := make(map[string]struct{})
	cells := make(map[string]map[string]decimal.Decimal)
	var months []string

	for _, r := range rows {
		categorySet[r.Category] = struct{}{}

		byCategory, ok := cells[r.Month]
		if !ok {
			byCategory = make(map[string]decimal.Decimal)
			cells[r.Month] = byCategory
			months = append(months, r.Month)
		}
		byCategory[r.Category] = r.Amount
	}

	categories := make([]string, 0, len(categorySet))
	for c := range categorySet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	matrix := make([]entity.MonthlyTrendRow, len(months))
	for i, month := range months {
		amounts := make([]entity.CategoryAmount, len(categories))
		for j, c := range categories {
			amount, ok := cells[month][c]
			if !ok {
				amount = decimal.Zero
			}
			amounts[j] = entity.CategoryAmount{Category: c, Amount: amount}
		}
		matrix[i] = entity.MonthlyTrendRow{Month: month, CategoryAmounts: amounts}
	}

	return matrix
}

// TrendCategories returns the ordered category labels of a trend matrix.
func TrendCategories(matrix []entity.MonthlyTrendRow) []string {
	if len(matrix) == 0 {
		return []string{}
	}
	categories := make([]string, len(matrix[0].CategoryAmounts))
	for i, ca := range matrix[0].CategoryAmounts {
		categories[i] = ca.Category
	}
	return categories
}
