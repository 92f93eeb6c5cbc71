package error

import "errors"

// Recurring expense domain errors.
var (
	// ErrRecurringExpenseNotFound is returned when a recurring expense is not found.
	ErrRecurringExpenseNotFound = errors.New("recurring expense not found")

	// ErrInvalidDayOfMonth is returned when the day of month is outside 1..28.
	ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 28")

	// ErrNotAuthorizedToModifyRecurringExpense is returned when the caller does not own the template.
	ErrNotAuthorizedToModifyRecurringExpense = errors.New("not authorized to modify recurring expense")
)

// RecurringErrorCode defines error codes for recurring expense errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDayOfMonth        RecurringErrorCode = "REC-010001"
	ErrCodeInvalidRecurringAmount   RecurringErrorCode = "REC-010002"
	ErrCodeRecurringCommentsTooLong RecurringErrorCode = "REC-010003"

	// Lookup errors (02XXXX)
	ErrCodeRecurringExpenseNotFound   RecurringErrorCode = "REC-020001"
	ErrCodeRecurringSubCategoryAbsent RecurringErrorCode = "REC-020002"
	ErrCodeRecurringPaymentTypeAbsent RecurringErrorCode = "REC-020003"

	// Authorization errors (03XXXX)
	ErrCodeNotAuthorizedRecurring RecurringErrorCode = "REC-030001"
)

// RecurringError represents a recurring expense error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
