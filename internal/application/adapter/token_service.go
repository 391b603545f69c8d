package adapter

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a JWT access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token validation. Token
// issuance is handled by the external identity provider; this service only
// verifies tokens presented by clients.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(token string) (*TokenClaims, error)
}
