// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	"github.com/0Hoxy/fixedExpenses/internal/integration/persistence/model"
)

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(db *gorm.DB) adapter.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Create creates a new profile in the database.
func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileModel := model.ProfileFromEntity(profile)
	result := r.db.WithContext(ctx).Create(profileModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a profile by its ID. Returns nil when not found.
func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

// ExistsByID checks whether a profile exists.
func (r *profileRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ProfileModel{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
