// Package user contains owner profile use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

var minBudgetAmount = decimal.New(1, -2)

// UpdateBudgetInput represents the input for a monthly budget update.
type UpdateBudgetInput struct {
	OwnerID uuid.UUID
	// Email comes from the access token and refreshes the stored profile when set.
	Email  string
	Amount decimal.Decimal
}

// UpdateBudgetOutput represents the output of a monthly budget update.
type UpdateBudgetOutput struct {
	User *entity.User
}

// UpdateBudgetUseCase sets the owner's monthly budget, creating the profile on first use.
type UpdateBudgetUseCase struct {
	userRepo adapter.UserRepository
	now      func() time.Time
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(userRepo adapter.UserRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	// 1. Validate the amount
	if input.Amount.LessThan(minBudgetAmount) || !input.Amount.Equal(input.Amount.Truncate(2)) {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget must be at least 0.01 with at most two decimal places",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	now := uc.now().UTC()

	// 2. Load the profile, or start one
	user, err := uc.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
		user = &entity.User{
			ID:        input.OwnerID,
			CreatedAt: now,
		}
	}

	// 3. Apply the changes
	if input.Email != "" {
		user.Email = input.Email
	}
	user.MonthlyBudget = input.Amount
	user.UpdatedAt = now

	// 4. Persist
	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	slog.Info("Monthly budget updated",
		"owner_id", input.OwnerID,
		"budget", input.Amount.StringFixed(2),
	)

	return &UpdateBudgetOutput{User: user}, nil
}
