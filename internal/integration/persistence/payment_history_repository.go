package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	"github.com/0Hoxy/fixedExpenses/internal/integration/persistence/model"
)

// paymentHistoryRepository implements the adapter.PaymentHistoryRepository interface.
type paymentHistoryRepository struct {
	db *gorm.DB
}

// NewPaymentHistoryRepository creates a new payment history repository instance.
func NewPaymentHistoryRepository(db *gorm.DB) adapter.PaymentHistoryRepository {
	return &paymentHistoryRepository{
		db: db,
	}
}

// Upsert writes a payment record keyed on (expenditure_id, payment_month).
func (r *paymentHistoryRepository) Upsert(ctx context.Context, record *entity.PaymentRecord) error {
	recordModel := model.PaymentHistoryFromEntity(record)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "expenditure_id"}, {Name: "payment_month"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_paid", "paid_timestamp"}),
	}).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByExpenditureAndMonth returns the record for one month, or nil when
// none exists.
func (r *paymentHistoryRepository) FindByExpenditureAndMonth(ctx context.Context, expenditureID uuid.UUID, month time.Time) (*entity.PaymentRecord, error) {
	var recordModel model.PaymentHistoryModel
	result := r.db.WithContext(ctx).
		Where("expenditure_id = ? AND payment_month = ?", expenditureID, month).
		First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}
