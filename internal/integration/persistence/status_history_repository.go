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

// statusHistoryRepository implements the adapter.StatusHistoryRepository interface.
type statusHistoryRepository struct {
	db *gorm.DB
}

// NewStatusHistoryRepository creates a new status history repository instance.
func NewStatusHistoryRepository(db *gorm.DB) adapter.StatusHistoryRepository {
	return &statusHistoryRepository{
		db: db,
	}
}

// Upsert writes a status entry keyed on (expenditure_id, effective_month).
func (r *statusHistoryRepository) Upsert(ctx context.Context, entry *entity.StatusEntry) error {
	entryModel := model.StatusHistoryFromEntity(entry)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "expenditure_id"}, {Name: "effective_month"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindEffective returns the entry with the greatest effective_month not
// exceeding the target month, or nil when none exists.
func (r *statusHistoryRepository) FindEffective(ctx context.Context, expenditureID uuid.UUID, targetMonth time.Time) (*entity.StatusEntry, error) {
	var entryModel model.StatusHistoryModel
	result := r.db.WithContext(ctx).
		Where("expenditure_id = ? AND effective_month <= ?", expenditureID, targetMonth).
		Order("effective_month DESC").
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByExpenditure returns all entries for an expenditure ordered by
// effective_month ascending.
func (r *statusHistoryRepository) FindByExpenditure(ctx context.Context, expenditureID uuid.UUID) ([]*entity.StatusEntry, error) {
	var entryModels []model.StatusHistoryModel
	result := r.db.WithContext(ctx).
		Where("expenditure_id = ?", expenditureID).
		Order("effective_month ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.StatusEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}
