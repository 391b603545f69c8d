// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrencyCode is the currency assigned to new profiles.
const DefaultCurrencyCode = "KRW"

// Profile represents a named ledger of recurring expenditures owned by one user.
type Profile struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	CurrencyCode string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProfile creates a new Profile entity.
func NewProfile(userID uuid.UUID, name, currencyCode string) *Profile {
	now := time.Now().UTC()

	if currencyCode == "" {
		currencyCode = DefaultCurrencyCode
	}

	return &Profile{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		CurrencyCode: currencyCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
