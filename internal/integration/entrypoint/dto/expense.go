package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date" binding:"required"`
	Comments        string          `json:"comments,omitempty" binding:"omitempty,max=500"`
	SubCategoryID   string          `json:"sub_category_id" binding:"required"`
	PaymentTypeCode string          `json:"payment_type_code" binding:"required"`
	Months          int             `json:"months,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID               string    `json:"id"`
	Amount           string    `json:"amount"`
	Date             string    `json:"date"`
	Comments         string    `json:"comments"`
	SubCategoryID    string    `json:"sub_category_id"`
	SubCategoryLabel string    `json:"sub_category"`
	CategoryID       string    `json:"category_id"`
	CategoryLabel    string    `json:"category"`
	PaymentTypeCode  string    `json:"payment_type_code"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateExpenseResponse lists the records created by one request.
// An amortized request creates one record per month.
type CreateExpenseResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ExpensePageResponse is a zero-based page of expenses.
type ExpensePageResponse struct {
	Content       []ExpenseResponse `json:"content"`
	PageNumber    int               `json:"page_number"`
	PageSize      int               `json:"page_size"`
	TotalElements int64             `json:"total_elements"`
	TotalPages    int               `json:"total_pages"`
	Last          bool              `json:"last"`
}

// MonthlyExpenseResponse holds the owner's current month and rolling 30 day totals.
type MonthlyExpenseResponse struct {
	CurrentMonth string `json:"current_month"`
	Last30Days   string `json:"last_30_days"`
}

// ToExpenseResponse converts an ExpenseOutput to an ExpenseResponse DTO.
func ToExpenseResponse(e *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:               e.ID.String(),
		Amount:           e.Amount.StringFixed(2),
		Date:             e.Date.Format("2006-01-02"),
		Comments:         e.Comments,
		SubCategoryID:    e.SubCategoryID.String(),
		SubCategoryLabel: e.SubCategoryLabel,
		CategoryID:       e.CategoryID.String(),
		CategoryLabel:    e.CategoryLabel,
		PaymentTypeCode:  e.PaymentTypeCode,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func toExpenseResponses(expenses []*expense.ExpenseOutput) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return responses
}

// ToCreateExpenseResponse converts a CreateExpenseOutput to its response DTO.
func ToCreateExpenseResponse(output *expense.CreateExpenseOutput) CreateExpenseResponse {
	return CreateExpenseResponse{Expenses: toExpenseResponses(output.Expenses)}
}

// ToExpensePageResponse converts a ListExpensesOutput to a paged response DTO.
func ToExpensePageResponse(output *expense.ListExpensesOutput) ExpensePageResponse {
	return ExpensePageResponse{
		Content:       toExpenseResponses(output.Expenses),
		PageNumber:    output.Page.PageNumber,
		PageSize:      output.Page.PageSize,
		TotalElements: output.Page.TotalElements,
		TotalPages:    output.Page.TotalPages,
		Last:          output.Page.Last,
	}
}

// ToMonthlyExpenseResponse converts a GetMonthlyExpenseOutput to its response DTO.
func ToMonthlyExpenseResponse(output *expense.GetMonthlyExpenseOutput) MonthlyExpenseResponse {
	return MonthlyExpenseResponse{
		CurrentMonth: output.CurrentMonth.StringFixed(2),
		Last30Days:   output.Last30Days.StringFixed(2),
	}
}
