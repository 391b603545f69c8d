package adapters

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func signToken(t *testing.T, secret string, userID, email string, expiresAt time.Time) string {
	t.Helper()
	claims := CustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestTokenService(t *testing.T) {
	const secret = "test-secret"
	service := NewTokenService(secret)

	t.Run("valid token yields claims", func(t *testing.T) {
		userID := uuid.New()
		expiresAt := time.Now().UTC().Add(time.Hour)
		token := signToken(t, secret, userID.String(), "user@example.com", expiresAt)

		claims, err := service.ValidateAccessToken(token)
		if err != nil {
			t.Fatalf("ValidateAccessToken failed: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "user@example.com" {
			t.Errorf("unexpected email: %s", claims.Email)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := signToken(t, secret, uuid.New().String(), "user@example.com", time.Now().UTC().Add(-time.Hour))

		if _, err := service.ValidateAccessToken(token); err == nil {
			t.Error("expected an error for an expired token")
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token := signToken(t, "other-secret", uuid.New().String(), "user@example.com", time.Now().UTC().Add(time.Hour))

		if _, err := service.ValidateAccessToken(token); err == nil {
			t.Error("expected an error for a token signed with a different secret")
		}
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		if _, err := service.ValidateAccessToken("not-a-jwt"); err == nil {
			t.Error("expected an error for a malformed token")
		}
	})

	t.Run("garbage user id is rejected", func(t *testing.T) {
		token := signToken(t, secret, "not-a-uuid", "user@example.com", time.Now().UTC().Add(time.Hour))

		if _, err := service.ValidateAccessToken(token); err == nil {
			t.Error("expected an error for a non-uuid subject")
		}
	})
}
