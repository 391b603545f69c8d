package error

import "errors"

// Email error sentinels.
var (
	ErrPermanentEmailFailure = errors.New("permanent email failure")
	ErrTemporaryEmailFailure = errors.New("temporary email failure")
)

// EmailErrorCode represents specific email error codes.
type EmailErrorCode string

const (
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-010001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-010002"
)

// EmailError represents an email delivery error with a specific code.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
