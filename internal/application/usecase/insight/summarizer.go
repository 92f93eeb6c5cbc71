// Package insight contains spending insight and trend use cases.
package insight

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SummarizeExpenses groups records by category label, then by sub-category label.
//
// Sub-categories within a category and the categories themselves are ordered by
// descending amount; equal amounts keep the order in which they were first seen.
// The input slice is not modified.
func SummarizeExpenses(records []*entity.ExpenseDetail, budget decimal.Decimal) *entity.MonthlyExpenseInsight {
	type categoryGroup struct {
		label    string
		subs     []entity.SubCategoryWiseExpense
		subIndex map[string]int
	}

	var groups []*categoryGroup
	groupIndex := make(map[string]int)

	for _, r := range records {
		gi, ok := groupIndex[r.CategoryLabel]
		if !ok {
			gi = len(groups)
			groupIndex[r.CategoryLabel] = gi
			groups = append(groups, &categoryGroup{
				label:    r.CategoryLabel,
				subIndex: make(map[string]int),
			})
		}
		g := groups[gi]

		si, ok := g.subIndex[r.SubCategoryLabel]
		if !ok {
			si = len(g.subs)
			g.subIndex[r.SubCategoryLabel] = si
			g.subs = append(g.subs, entity.SubCategoryWiseExpense{
				SubCategory: r.SubCategoryLabel,
				Amount:      decimal.Zero,
			})
		}
		g.subs[si].Amount = g.subs[si].Amount.Add(r.Expense.Amount)
	}

	categories := make([]entity.CategoryWiseExpense, 0, len(groups))
	total := decimal.Zero
	for _, g := range groups {
		sort.SliceStable(g.subs, func(i, j int) bool {
			return g.subs[i].Amount.GreaterThan(g.subs[j].Amount)
		})

		sum := decimal.Zero
		for _, s := range g.subs {
			sum = sum.Add(s.Amount)
		}
		total = total.Add(sum)

		categories = append(categories, entity.CategoryWiseExpense{
			Category:                g.label,
			Amount:                  sum,
			SubCategoryWiseExpenses: g.subs,
		})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Amount.GreaterThan(categories[j].Amount)
	})

	return &entity.MonthlyExpenseInsight{
		MonthlyBudget:        budget,
		TotalExpense:         total,
		CategoryWiseExpenses: categories,
	}
}
