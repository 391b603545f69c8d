// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExpenditureStatus is the recorded state of an expenditure for a month range.
type ExpenditureStatus string

const (
	StatusActive ExpenditureStatus = "active"
	StatusPaused ExpenditureStatus = "paused"
)

// IsValid reports whether s is a recordable status value.
func (s ExpenditureStatus) IsValid() bool {
	return s == StatusActive || s == StatusPaused
}

// StatusEntry is one effective-dated status change for an expenditure.
// Entries are keyed by (ExpenditureID, EffectiveMonth); writing the same
// month twice replaces the earlier status.
type StatusEntry struct {
	ExpenditureID  uuid.UUID
	Status         ExpenditureStatus
	EffectiveMonth time.Time // First day of the month, UTC
}
