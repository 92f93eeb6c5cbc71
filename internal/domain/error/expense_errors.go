// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the amount is not positive or has more than two decimals.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrInvalidExpenseDate is returned when the date is missing or in the future.
	ErrInvalidExpenseDate = errors.New("invalid expense date")

	// ErrCommentsTooLong is returned when the comments exceed the maximum length.
	ErrCommentsTooLong = errors.New("comments too long")

	// ErrInvalidPaymentTypeCode is returned when the payment type code is malformed.
	ErrInvalidPaymentTypeCode = errors.New("invalid payment type code")

	// ErrInvalidAmortizationMonths is returned when the amortization period is not supported.
	ErrInvalidAmortizationMonths = errors.New("amortization months must be one of 1, 2, 3, 6, 12")

	// ErrSubCategoryNotFound is returned when the referenced sub-category does not exist.
	ErrSubCategoryNotFound = errors.New("sub-category not found")

	// ErrPaymentTypeNotFound is returned when the referenced payment type does not exist.
	ErrPaymentTypeNotFound = errors.New("payment type not found")

	// ErrInvalidFilterDateRange is returned when date_to is before date_from.
	ErrInvalidFilterDateRange = errors.New("date_to must not be before date_from")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount      ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseDate        ExpenseErrorCode = "EXP-010002"
	ErrCodeCommentsTooLong           ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidPaymentTypeCode    ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidAmortizationMonths ExpenseErrorCode = "EXP-010005"
	ErrCodeMissingExpenseFields      ExpenseErrorCode = "EXP-010006"
	ErrCodeInvalidFilter             ExpenseErrorCode = "EXP-010007"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound     ExpenseErrorCode = "EXP-020001"
	ErrCodeSubCategoryNotFound ExpenseErrorCode = "EXP-020002"
	ErrCodePaymentTypeNotFound ExpenseErrorCode = "EXP-020003"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
