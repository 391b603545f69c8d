package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	"github.com/0Hoxy/fixedExpenses/internal/integration/persistence/model"
)

// paymentMethodRepository implements the adapter.PaymentMethodRepository interface.
type paymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository creates a new payment method repository instance.
func NewPaymentMethodRepository(db *gorm.DB) adapter.PaymentMethodRepository {
	return &paymentMethodRepository{
		db: db,
	}
}

// Create creates a new payment method in the database.
func (r *paymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	methodModel := model.PaymentMethodFromEntity(method)
	result := r.db.WithContext(ctx).Create(methodModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ExistsByID checks whether a payment method exists.
func (r *paymentMethodRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.PaymentMethodModel{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
