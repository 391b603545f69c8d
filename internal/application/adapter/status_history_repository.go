// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// StatusHistoryRepository defines the interface for status history persistence.
type StatusHistoryRepository interface {
	// Upsert writes a status entry keyed on (expenditureId, effectiveMonth).
	// An existing row for that exact month is overwritten; otherwise a new
	// row is inserted. Idempotent under repeated identical calls.
	Upsert(ctx context.Context, entry *entity.StatusEntry) error

	// FindEffective returns the entry with the greatest effectiveMonth not
	// exceeding targetMonth, or nil when the expenditure has no entry at or
	// before that month.
	FindEffective(ctx context.Context, expenditureID uuid.UUID, targetMonth time.Time) (*entity.StatusEntry, error)

	// FindByExpenditure returns all entries for an expenditure ordered by
	// effectiveMonth ascending.
	FindByExpenditure(ctx context.Context, expenditureID uuid.UUID) ([]*entity.StatusEntry, error)
}

// PaymentHistoryRepository defines the interface for payment bookkeeping persistence.
type PaymentHistoryRepository interface {
	// Upsert writes a payment record keyed on (expenditureId, paymentMonth).
	Upsert(ctx context.Context, record *entity.PaymentRecord) error

	// FindByExpenditureAndMonth returns the record for one month, or nil
	// when none exists.
	FindByExpenditureAndMonth(ctx context.Context, expenditureID uuid.UUID, month time.Time) (*entity.PaymentRecord, error)
}
