// Package error defines domain-specific errors for the expenditure tracker.
package error

import "errors"

// Report and dashboard domain errors.
var (
	// ErrMissingFromMonth is returned when the from parameter is not provided.
	ErrMissingFromMonth = errors.New("from month is required")

	// ErrMissingToMonth is returned when the to parameter is not provided.
	ErrMissingToMonth = errors.New("to month is required")

	// ErrInvalidMonthRange is returned when from is after to.
	ErrInvalidMonthRange = errors.New("from month must not be after to month")
)

// ReportErrorCode defines error codes for report and dashboard errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingFromMonth      ReportErrorCode = "RPT-010001"
	ErrCodeMissingToMonth        ReportErrorCode = "RPT-010002"
	ErrCodeInvalidMonthRange     ReportErrorCode = "RPT-010003"
	ErrCodeReportInvalidMonth    ReportErrorCode = "RPT-010004"

	// Not-found errors (02XXXX)
	ErrCodeReportProfileNotFound ReportErrorCode = "RPT-020001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
