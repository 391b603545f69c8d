// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ExistsByID checks whether a category exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// PaymentMethodRepository defines the interface for payment method persistence operations.
type PaymentMethodRepository interface {
	// Create creates a new payment method in the database.
	Create(ctx context.Context, method *entity.PaymentMethod) error

	// ExistsByID checks whether a payment method exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
