// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// ProfileRepository defines the interface for profile persistence operations.
type ProfileRepository interface {
	// Create creates a new profile in the database.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a profile by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// ExistsByID checks whether a profile exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
