package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

var (
	// minExpenseAmount is the smallest amount an expense may have.
	minExpenseAmount = decimal.RequireFromString("0.01")
	// paymentTypeCodePattern matches codes such as CREDIT_CARD.
	paymentTypeCodePattern = regexp.MustCompile(`^[A-Z_]+$`)
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	OwnerID         uuid.UUID
	Amount          decimal.Decimal
	Date            time.Time
	Comments        string
	SubCategoryID   uuid.UUID
	PaymentTypeCode string
	Months          int // Amortization period; 0 or 1 means a single expense
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expenses []*ExpenseOutput
}

// CreateExpenseUseCase handles expense creation, including amortized expenses.
type CreateExpenseUseCase struct {
	expenseRepo     adapter.ExpenseRepository
	subCategoryRepo adapter.SubCategoryRepository
	paymentTypeRepo adapter.PaymentTypeRepository
	trendCache      adapter.TrendCache
	publisher       adapter.ExpenseEventPublisher
	now             func() time.Time
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
// trendCache and publisher are optional.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	subCategoryRepo adapter.SubCategoryRepository,
	paymentTypeRepo adapter.PaymentTypeRepository,
	trendCache adapter.TrendCache,
	publisher adapter.ExpenseEventPublisher,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:     expenseRepo,
		subCategoryRepo: subCategoryRepo,
		paymentTypeRepo: paymentTypeRepo,
		trendCache:      trendCache,
		publisher:       publisher,
		now:             time.Now,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	// 1. Validate input
	period, err := uc.validateInput(input)
	if err != nil {
		return nil, err
	}

	// 2. Resolve classification
	subCategory, err := uc.subCategoryRepo.FindByID(ctx, input.SubCategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSubCategoryNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeSubCategoryNotFound,
				"sub-category not found",
				domainerror.ErrSubCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find sub-category: %w", err)
	}

	paymentType, err := uc.paymentTypeRepo.FindByCode(ctx, input.PaymentTypeCode)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentTypeNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodePaymentTypeNotFound,
				fmt.Sprintf("payment type %s not found", input.PaymentTypeCode),
				domainerror.ErrPaymentTypeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find payment type: %w", err)
	}

	// 3. Split into monthly installments
	installments, err := SplitAmortized(input.Amount, entity.TruncateToDate(input.Date), period.Months(), input.Comments)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidAmortizationMonths,
			"invalid amortization period",
			err,
		)
	}

	expenses := make([]*entity.Expense, len(installments))
	for i, inst := range installments {
		expenses[i] = entity.NewExpense(
			input.OwnerID,
			inst.Amount,
			inst.Date,
			inst.Comments,
			subCategory.ID,
			paymentType.ID,
		)
	}

	// 4. Persist all installments together
	if err := uc.expenseRepo.CreateBatch(ctx, expenses); err != nil {
		return nil, fmt.Errorf("failed to create expenses: %w", err)
	}

	slog.Info("Expenses created",
		"owner_id", input.OwnerID,
		"count", len(expenses),
		"amount", input.Amount.String(),
	)

	// 5. Notify collaborators; failures do not undo the creation
	uc.afterCreate(ctx, input.OwnerID, expenses)

	// Build output
	categoryLabel := ""
	if subCategory.Category != nil {
		categoryLabel = subCategory.Category.Label
	}
	output := &CreateExpenseOutput{Expenses: make([]*ExpenseOutput, len(expenses))}
	for i, e := range expenses {
		output.Expenses[i] = toExpenseOutput(&entity.ExpenseDetail{
			Expense:          e,
			SubCategoryLabel: subCategory.Label,
			CategoryID:       subCategory.CategoryID,
			CategoryLabel:    categoryLabel,
			PaymentTypeCode:  paymentType.Code,
		})
	}

	return output, nil
}

// validateInput validates the input and returns the amortization period.
func (uc *CreateExpenseUseCase) validateInput(input CreateExpenseInput) (valueobject.AmortizationPeriod, error) {
	if input.Amount.LessThan(minExpenseAmount) || !input.Amount.Equal(input.Amount.Truncate(2)) {
		return 0, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be at least 0.01 with at most two decimal places",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	today := entity.TruncateToDate(uc.now().UTC())
	if input.Date.IsZero() || entity.TruncateToDate(input.Date).After(today) {
		return 0, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"date is required and cannot be in the future",
			domainerror.ErrInvalidExpenseDate,
		)
	}

	if utf8.RuneCountInString(input.Comments) > entity.MaxExpenseCommentsLength {
		return 0, domainerror.NewExpenseError(
			domainerror.ErrCodeCommentsTooLong,
			fmt.Sprintf("comments must not exceed %d characters", entity.MaxExpenseCommentsLength),
			domainerror.ErrCommentsTooLong,
		)
	}

	if !paymentTypeCodePattern.MatchString(input.PaymentTypeCode) {
		return 0, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidPaymentTypeCode,
			"payment type code must contain only uppercase letters and underscores",
			domainerror.ErrInvalidPaymentTypeCode,
		)
	}

	period, ok := valueobject.ParseAmortizationPeriod(input.Months)
	if !ok {
		return 0, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidAmortizationMonths,
			"months must be one of 1, 2, 3, 6, 12",
			domainerror.ErrInvalidAmortizationMonths,
		)
	}

	return period, nil
}

// afterCreate invalidates cached trends and publishes the creation event.
func (uc *CreateExpenseUseCase) afterCreate(ctx context.Context, ownerID uuid.UUID, expenses []*entity.Expense) {
	if uc.trendCache != nil {
		if err := uc.trendCache.Invalidate(ctx, ownerID); err != nil {
			slog.Warn("Failed to invalidate trend cache",
				"owner_id", ownerID,
				"error", err,
			)
		}
	}

	if uc.publisher == nil {
		return
	}

	event := adapter.ExpensesCreatedEvent{
		OwnerID:    ownerID,
		ExpenseIDs: make([]uuid.UUID, len(expenses)),
		Total:      decimal.Zero,
		Source:     adapter.ExpenseSourceManual,
		OccurredAt: uc.now().UTC(),
	}
	for i, e := range expenses {
		event.ExpenseIDs[i] = e.ID
		event.Total = event.Total.Add(e.Amount)
	}

	if err := uc.publisher.PublishExpensesCreated(ctx, event); err != nil {
		slog.Warn("Failed to publish expenses created event",
			"owner_id", ownerID,
			"error", err,
		)
	}
}
