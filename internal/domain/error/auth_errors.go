// Package error defines domain-specific errors for the expenditure tracker.
package error

import "errors"

// Auth boundary errors. Token issuance lives in the external auth service;
// only validation failures surface here.
var (
	// ErrMissingToken is returned when no bearer token accompanies a request.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when a token fails validation or has expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUT-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUT-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUT-010003"
)
