package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

var minRecurringAmount = decimal.RequireFromString("0.01")

// CreateRecurringExpenseInput represents the input for recurring expense creation.
type CreateRecurringExpenseInput struct {
	OwnerID         uuid.UUID
	Amount          decimal.Decimal
	DayOfMonth      int
	Comments        string
	SubCategoryID   uuid.UUID
	PaymentTypeCode string
}

// CreateRecurringExpenseUseCase handles recurring expense creation.
type CreateRecurringExpenseUseCase struct {
	recurringRepo   adapter.RecurringExpenseRepository
	subCategoryRepo adapter.SubCategoryRepository
	paymentTypeRepo adapter.PaymentTypeRepository
}

// NewCreateRecurringExpenseUseCase creates a new CreateRecurringExpenseUseCase instance.
func NewCreateRecurringExpenseUseCase(
	recurringRepo adapter.RecurringExpenseRepository,
	subCategoryRepo adapter.SubCategoryRepository,
	paymentTypeRepo adapter.PaymentTypeRepository,
) *CreateRecurringExpenseUseCase {
	return &CreateRecurringExpenseUseCase{
		recurringRepo:   recurringRepo,
		subCategoryRepo: subCategoryRepo,
		paymentTypeRepo: paymentTypeRepo,
	}
}

// Execute performs the recurring expense creation.
func (uc *CreateRecurringExpenseUseCase) Execute(ctx context.Context, input CreateRecurringExpenseInput) (*RecurringExpenseOutput, error) {
	// 1. Validate input
	if err := validateRecurringInput(input); err != nil {
		return nil, err
	}

	// 2. Resolve classification
	subCategory, err := uc.subCategoryRepo.FindByID(ctx, input.SubCategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSubCategoryNotFound) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringSubCategoryAbsent,
				"sub-category not found",
				domainerror.ErrSubCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find sub-category: %w", err)
	}

	paymentType, err := uc.paymentTypeRepo.FindByCode(ctx, input.PaymentTypeCode)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentTypeNotFound) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringPaymentTypeAbsent,
				fmt.Sprintf("payment type %s not found", input.PaymentTypeCode),
				domainerror.ErrPaymentTypeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find payment type: %w", err)
	}

	// 3. Persist
	recurring := entity.NewRecurringExpense(
		input.OwnerID,
		input.Amount,
		input.DayOfMonth,
		input.Comments,
		subCategory.ID,
		paymentType.ID,
	)
	if err := uc.recurringRepo.Create(ctx, recurring); err != nil {
		return nil, fmt.Errorf("failed to create recurring expense: %w", err)
	}

	slog.Info("Recurring expense created",
		"recurring_expense_id", recurring.ID,
		"owner_id", recurring.OwnerID,
		"day_of_month", recurring.DayOfMonth,
	)

	categoryLabel := ""
	if subCategory.Category != nil {
		categoryLabel = subCategory.Category.Label
	}
	return toRecurringExpenseOutput(&entity.RecurringExpenseDetail{
		RecurringExpense: recurring,
		SubCategoryLabel: subCategory.Label,
		CategoryLabel:    categoryLabel,
		PaymentTypeCode:  paymentType.Code,
	}), nil
}

func validateRecurringInput(input CreateRecurringExpenseInput) error {
	if !entity.IsValidRecurringDayOfMonth(input.DayOfMonth) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidDayOfMonth,
			fmt.Sprintf("day of month must be between %d and %d", entity.MinRecurringDayOfMonth, entity.MaxRecurringDayOfMonth),
			domainerror.ErrInvalidDayOfMonth,
		)
	}

	if input.Amount.LessThan(minRecurringAmount) || !input.Amount.Equal(input.Amount.Truncate(2)) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringAmount,
			"amount must be at least 0.01 with at most two decimal places",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if utf8.RuneCountInString(input.Comments) > entity.MaxExpenseCommentsLength {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringCommentsTooLong,
			fmt.Sprintf("comments must not exceed %d characters", entity.MaxExpenseCommentsLength),
			domainerror.ErrCommentsTooLong,
		)
	}

	return nil
}
