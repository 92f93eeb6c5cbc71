package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UpdateBudgetRequest represents the request body for a monthly budget update.
type UpdateBudgetRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// UserResponse represents the owner profile in API responses.
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	MonthlyBudget string    `json:"monthly_budget"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToUserResponse converts a User entity to its response DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		MonthlyBudget: user.MonthlyBudget.StringFixed(2),
		UpdatedAt:     user.UpdatedAt,
	}
}
