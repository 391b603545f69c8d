// Package error defines domain-specific errors for the expenditure tracker.
package error

import "errors"

// Expenditure domain errors.
var (
	// ErrExpenditureNotFound is returned when an expenditure does not exist.
	ErrExpenditureNotFound = errors.New("expenditure not found")

	// ErrProfileNotFound is returned when the referenced profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrCategoryNotFound is returned when the referenced category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrPaymentMethodNotFound is returned when the referenced payment method does not exist.
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	// ErrInvalidExpenditureType is returned when the type is not REGULAR, SUBSCRIPTION or INSTALLMENT.
	ErrInvalidExpenditureType = errors.New("invalid expenditure type")

	// ErrExpenditureTypeImmutable is returned when an update attempts to change the type.
	ErrExpenditureTypeImmutable = errors.New("expenditure type cannot be changed")

	// ErrInvalidPaymentDay is returned when the payment day is outside 1-31.
	ErrInvalidPaymentDay = errors.New("payment day must be between 1 and 31")

	// ErrMissingDetailFields is returned when the detail payload lacks fields required by the type.
	ErrMissingDetailFields = errors.New("missing required detail fields for expenditure type")

	// ErrDetailTypeMismatch is returned when the detail variant does not match the expenditure type.
	ErrDetailTypeMismatch = errors.New("detail variant does not match expenditure type")

	// ErrInvalidMonthFormat is returned when a month value is not in YYYY-MM form.
	ErrInvalidMonthFormat = errors.New("month must be in YYYY-MM format")

	// ErrInvalidStatusValue is returned when a status is neither active nor paused.
	ErrInvalidStatusValue = errors.New("status must be active or paused")

	// ErrInvalidPagination is returned when page or limit parameters are out of range.
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

// ExpenditureErrorCode defines error codes for expenditure errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenditureErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenditureType   ExpenditureErrorCode = "EXP-010001"
	ErrCodeInvalidPaymentDay        ExpenditureErrorCode = "EXP-010002"
	ErrCodeMissingDetailFields      ExpenditureErrorCode = "EXP-010003"
	ErrCodeDetailTypeMismatch       ExpenditureErrorCode = "EXP-010004"
	ErrCodeInvalidMonthFormat       ExpenditureErrorCode = "EXP-010005"
	ErrCodeInvalidStatusValue       ExpenditureErrorCode = "EXP-010006"
	ErrCodeExpenditureTypeImmutable ExpenditureErrorCode = "EXP-010007"
	ErrCodeInvalidPagination        ExpenditureErrorCode = "EXP-010008"

	// Not-found errors (02XXXX)
	ErrCodeExpenditureNotFound   ExpenditureErrorCode = "EXP-020001"
	ErrCodeProfileNotFound       ExpenditureErrorCode = "EXP-020002"
	ErrCodeCategoryNotFound      ExpenditureErrorCode = "EXP-020003"
	ErrCodePaymentMethodNotFound ExpenditureErrorCode = "EXP-020004"

	// Internal errors (99XXXX)
	ErrCodeExpenditureInternalError ExpenditureErrorCode = "EXP-990001"
)

// ExpenditureError represents an expenditure error with code and message.
type ExpenditureError struct {
	Code    ExpenditureErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenditureError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenditureError) Unwrap() error {
	return e.Err
}

// NewExpenditureError creates a new ExpenditureError with the given code and message.
func NewExpenditureError(code ExpenditureErrorCode, message string, err error) *ExpenditureError {
	return &ExpenditureError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
