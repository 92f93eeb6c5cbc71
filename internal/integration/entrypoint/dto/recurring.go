package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/recurring"
)

// CreateRecurringExpenseRequest represents the request body for recurring expense creation.
type CreateRecurringExpenseRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	DayOfMonth      int             `json:"day_of_month" binding:"required"`
	Comments        string          `json:"comments,omitempty"`
	SubCategoryID   string          `json:"sub_category_id" binding:"required"`
	PaymentTypeCode string          `json:"payment_type_code" binding:"required"`
}

// RecurringExpenseResponse represents a recurring expense template in API responses.
type RecurringExpenseResponse struct {
	ID               string    `json:"id"`
	Amount           string    `json:"amount"`
	DayOfMonth       int       `json:"day_of_month"`
	Comments         string    `json:"comments"`
	SubCategoryID    string    `json:"sub_category_id"`
	SubCategoryLabel string    `json:"sub_category"`
	CategoryLabel    string    `json:"category"`
	PaymentTypeCode  string    `json:"payment_type_code"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RecurringExpenseListResponse represents the response for listing recurring expenses.
type RecurringExpenseListResponse struct {
	RecurringExpenses []RecurringExpenseResponse `json:"recurring_expenses"`
}

// ToRecurringExpenseResponse converts a RecurringExpenseOutput to its response DTO.
func ToRecurringExpenseResponse(r *recurring.RecurringExpenseOutput) RecurringExpenseResponse {
	return RecurringExpenseResponse{
		ID:               r.ID.String(),
		Amount:           r.Amount.StringFixed(2),
		DayOfMonth:       r.DayOfMonth,
		Comments:         r.Comments,
		SubCategoryID:    r.SubCategoryID.String(),
		SubCategoryLabel: r.SubCategoryLabel,
		CategoryLabel:    r.CategoryLabel,
		PaymentTypeCode:  r.PaymentTypeCode,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// ToRecurringExpenseListResponse converts a ListRecurringExpensesOutput to its response DTO.
func ToRecurringExpenseListResponse(output *recurring.ListRecurringExpensesOutput) RecurringExpenseListResponse {
	response := RecurringExpenseListResponse{
		RecurringExpenses: make([]RecurringExpenseResponse, len(output.RecurringExpenses)),
	}
	for i, r := range output.RecurringExpenses {
		response.RecurringExpenses[i] = ToRecurringExpenseResponse(r)
	}
	return response
}
