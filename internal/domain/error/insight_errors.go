package error

import "errors"

// Insight domain errors.
var (
	// ErrInsightUnavailable is returned when insight data could not be loaded.
	ErrInsightUnavailable = errors.New("insight data unavailable")

	// ErrTrendExportFailed is returned when the trend workbook could not be produced.
	ErrTrendExportFailed = errors.New("trend export failed")
)

// InsightErrorCode defines error codes for insight errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	// Internal errors (99XXXX)
	ErrCodeInsightUnavailable InsightErrorCode = "INS-990001"
	ErrCodeTrendExportFailed  InsightErrorCode = "INS-990002"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
