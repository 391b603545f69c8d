// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentRecord notes whether one month's bill for an expenditure was paid.
// Purely informational bookkeeping; aggregation totals never read it.
type PaymentRecord struct {
	ExpenditureID uuid.UUID
	PaymentMonth  time.Time // First day of the month, UTC
	IsPaid        bool
	PaidTimestamp *time.Time
}
