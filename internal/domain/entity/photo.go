// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Photo is an image attached to an expenditure (receipt, contract, ...).
type Photo struct {
	ID            uuid.UUID
	ExpenditureID uuid.UUID
	FilePath      string
	CreatedAt     time.Time
}

// NewPhoto creates a new Photo entity.
func NewPhoto(expenditureID uuid.UUID, filePath string) *Photo {
	return &Photo{
		ID:            uuid.New(),
		ExpenditureID: expenditureID,
		FilePath:      filePath,
		CreatedAt:     time.Now().UTC(),
	}
}
