// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// ExpenditureRepository defines the interface for expenditure persistence operations.
type ExpenditureRepository interface {
	// Create atomically creates an expenditure, its typed detail variant, and
	// an initial status entry in a single transaction.
	Create(ctx context.Context, expenditure *entity.Expenditure, detail entity.ExpenditureDetail, initialStatus *entity.StatusEntry) error

	// FindByID retrieves an expenditure by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expenditure, error)

	// FindByProfile retrieves all expenditures of a profile with their categories.
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.ExpenditureWithCategory, error)

	// FindDetail retrieves the detail variant matching the expenditure's type.
	// Returns nil without error when no detail row exists.
	FindDetail(ctx context.Context, id uuid.UUID, expenditureType entity.ExpenditureType) (entity.ExpenditureDetail, error)

	// Update persists changes to an expenditure's base fields.
	Update(ctx context.Context, expenditure *entity.Expenditure) error

	// UpdateDetail replaces the detail variant for an expenditure.
	UpdateDetail(ctx context.Context, detail entity.ExpenditureDetail) error

	// Delete removes an expenditure and cascades to its detail, status
	// history, payment history and photos inside one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks whether an expenditure exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// FindSubscriptionsDueForReminder returns subscriptions whose next payment
	// occurs in exactly the detail's reminder lead time from the given date,
	// together with the owning profile.
	FindSubscriptionsDueForReminder(ctx context.Context, asOf time.Time) ([]*SubscriptionReminder, error)
}

// SubscriptionReminder pairs a subscription expenditure with reminder context.
type SubscriptionReminder struct {
	Expenditure *entity.Expenditure
	Detail      *entity.SubscriptionDetail
	Profile     *entity.Profile
	DueDate     time.Time
}
