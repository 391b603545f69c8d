// Package error defines domain-specific errors for the expenditure tracker.
package error

import "errors"

// Backup and restore domain errors.
var (
	// ErrJobNotFound is returned when no job exists for the given id.
	ErrJobNotFound = errors.New("job not found")

	// ErrMalformedBackup is returned when a backup document lacks the data section.
	ErrMalformedBackup = errors.New("malformed backup document: missing data section")

	// ErrBackupFileRequired is returned when a restore is submitted without a file.
	ErrBackupFileRequired = errors.New("backup file is required")

	// ErrArtifactNotFound is returned when a backup artifact cannot be located.
	ErrArtifactNotFound = errors.New("backup artifact not found")
)

// BackupErrorCode defines error codes for backup and restore errors.
// Format: BCK-XXYYYY where XX is category and YYYY is specific error.
type BackupErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMalformedBackup    BackupErrorCode = "BCK-010001"
	ErrCodeBackupFileRequired BackupErrorCode = "BCK-010002"

	// Not-found errors (02XXXX)
	ErrCodeJobNotFound      BackupErrorCode = "BCK-020001"
	ErrCodeArtifactNotFound BackupErrorCode = "BCK-020002"

	// Internal errors (99XXXX)
	ErrCodeBackupInternalError BackupErrorCode = "BCK-990001"
)

// BackupError represents a backup error with code and message.
type BackupError struct {
	Code    BackupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BackupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BackupError) Unwrap() error {
	return e.Err
}

// NewBackupError creates a new BackupError with the given code and message.
func NewBackupError(code BackupErrorCode, message string, err error) *BackupError {
	return &BackupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
