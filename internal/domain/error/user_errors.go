package error

import "errors"

// User profile domain errors.
var (
	// ErrUserNotFound is returned when an owner has no profile in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidBudgetAmount is returned when a monthly budget is not positive or has more than two decimals.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")
)

// UserErrorCode defines error codes for user profile errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount UserErrorCode = "USR-010001"
	ErrCodeMissingBudgetFields UserErrorCode = "USR-010002"
)

// UserError represents a user profile error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
