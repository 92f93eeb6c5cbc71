package dto

import (
	"bytes"
	"encoding/json"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SubCategoryWiseExpenseResponse is the spend of one sub-category.
type SubCategoryWiseExpenseResponse struct {
	SubCategory string `json:"sub_category"`
	Amount      string `json:"amount"`
}

// CategoryWiseExpenseResponse is the spend of one category and its sub-categories.
type CategoryWiseExpenseResponse struct {
	Category                string                           `json:"category"`
	Amount                  string                           `json:"amount"`
	SubCategoryWiseExpenses []SubCategoryWiseExpenseResponse `json:"sub_category_wise_expenses"`
}

// MonthlyExpenseInsightResponse represents the spending breakdown of a window.
type MonthlyExpenseInsightResponse struct {
	MonthlyBudget        string                        `json:"monthly_budget"`
	TotalExpense         string                        `json:"total_expense"`
	CategoryWiseExpenses []CategoryWiseExpenseResponse `json:"category_wise_expenses"`
}

// CategoryAmounts renders as a JSON object whose keys keep the slice order.
// Amounts are fixed two-decimal strings like every other amount in the API.
type CategoryAmounts []entity.CategoryAmount

// MarshalJSON implements json.Marshaler.
func (c CategoryAmounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ca := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ca.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(`:"`)
		buf.WriteString(ca.Amount.StringFixed(2))
		buf.WriteByte('"')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MonthlyTrendRowResponse is one month of the trend matrix.
type MonthlyTrendRowResponse struct {
	Month           string          `json:"month"`
	CategoryAmounts CategoryAmounts `json:"category_amounts"`
}

// ToMonthlyExpenseInsightResponse converts a MonthlyExpenseInsight entity to its response DTO.
func ToMonthlyExpenseInsightResponse(insight *entity.MonthlyExpenseInsight) MonthlyExpenseInsightResponse {
	response := MonthlyExpenseInsightResponse{
		MonthlyBudget:        insight.MonthlyBudget.StringFixed(2),
		TotalExpense:         insight.TotalExpense.StringFixed(2),
		CategoryWiseExpenses: make([]CategoryWiseExpenseResponse, 0, len(insight.CategoryWiseExpenses)),
	}
	for _, c := range insight.CategoryWiseExpenses {
		category := CategoryWiseExpenseResponse{
			Category:                c.Category,
			Amount:                  c.Amount.StringFixed(2),
			SubCategoryWiseExpenses: make([]SubCategoryWiseExpenseResponse, 0, len(c.SubCategoryWiseExpenses)),
		}
		for _, s := range c.SubCategoryWiseExpenses {
			category.SubCategoryWiseExpenses = append(category.SubCategoryWiseExpenses, SubCategoryWiseExpenseResponse{
				SubCategory: s.SubCategory,
				Amount:      s.Amount.StringFixed(2),
			})
		}
		response.CategoryWiseExpenses = append(response.CategoryWiseExpenses, category)
	}
	return response
}

// ToMonthlyTrendResponse converts trend rows to their response DTOs.
func ToMonthlyTrendResponse(rows []entity.MonthlyTrendRow) []MonthlyTrendRowResponse {
	response := make([]MonthlyTrendRowResponse, len(rows))
	for i, row := range rows {
		response[i] = MonthlyTrendRowResponse{
			Month:           row.Month,
			CategoryAmounts: CategoryAmounts(row.CategoryAmounts),
		}
	}
	return response
}
