package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	"github.com/0Hoxy/fixedExpenses/internal/integration/persistence/model"
)

// expenditureRepository implements the adapter.ExpenditureRepository interface.
type expenditureRepository struct {
	db *gorm.DB
}

// NewExpenditureRepository creates a new expenditure repository instance.
func NewExpenditureRepository(db *gorm.DB) adapter.ExpenditureRepository {
	return &expenditureRepository{
		db: db,
	}
}

// Create atomically creates an expenditure, its typed detail variant, and an
// initial status entry in a single transaction.
func (r *expenditureRepository) Create(ctx context.Context, expenditure *entity.Expenditure, detail entity.ExpenditureDetail, initialStatus *entity.StatusEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Category").Create(model.ExpenditureFromEntity(expenditure)).Error; err != nil {
			return err
		}
		if err := createDetail(tx, detail); err != nil {
			return err
		}
		if err := tx.Create(model.StatusHistoryFromEntity(initialStatus)).Error; err != nil {
			return err
		}
		return nil
	})
}

func createDetail(tx *gorm.DB, detail entity.ExpenditureDetail) error {
	switch d := detail.(type) {
	case *entity.RegularDetail:
		return tx.Create(model.RegularDetailFromEntity(d)).Error
	case *entity.SubscriptionDetail:
		return tx.Create(model.SubscriptionDetailFromEntity(d)).Error
	case *entity.InstallmentDetail:
		return tx.Create(model.InstallmentDetailFromEntity(d)).Error
	default:
		return errors.New("unknown expenditure detail variant")
	}
}

// FindByID retrieves an expenditure by its ID. Returns nil when not found.
func (r *expenditureRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expenditure, error) {
	var expenditureModel model.ExpenditureModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenditureModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return expenditureModel.ToEntity(), nil
}

// FindByProfile retrieves all expenditures of a profile with their categories.
func (r *expenditureRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.ExpenditureWithCategory, error) {
	var expenditureModels []model.ExpenditureModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("profile_id = ?", profileID).
		Order("created_at ASC").
		Find(&expenditureModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenditures := make([]*entity.ExpenditureWithCategory, len(expenditureModels))
	for i := range expenditureModels {
		expenditures[i] = &entity.ExpenditureWithCategory{
			Expenditure: expenditureModels[i].ToEntity(),
			Category:    expenditureModels[i].Category.ToEntity(),
		}
	}
	return expenditures, nil
}

// FindDetail retrieves the detail variant matching the expenditure's type.
// Returns nil without error when no detail row exists.
func (r *expenditureRepository) FindDetail(ctx context.Context, id uuid.UUID, expenditureType entity.ExpenditureType) (entity.ExpenditureDetail, error) {
	switch expenditureType {
	case entity.ExpenditureTypeRegular:
		var detailModel model.RegularDetailModel
		result := r.db.WithContext(ctx).Where("expenditure_id = ?", id).First(&detailModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, result.Error
		}
		return detailModel.ToEntity(), nil
	case entity.ExpenditureTypeSubscription:
		var detailModel model.SubscriptionDetailModel
		result := r.db.WithContext(ctx).Where("expenditure_id = ?", id).First(&detailModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, result.Error
		}
		return detailModel.ToEntity(), nil
	case entity.ExpenditureTypeInstallment:
		var detailModel model.InstallmentDetailModel
		result := r.db.WithContext(ctx).Where("expenditure_id = ?", id).First(&detailModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, result.Error
		}
		return detailModel.ToEntity(), nil
	default:
		return nil, nil
	}
}

// Update persists changes to an expenditure's base fields.
func (r *expenditureRepository) Update(ctx context.Context, expenditure *entity.Expenditure) error {
	result := r.db.WithContext(ctx).Omit("Category").Save(model.ExpenditureFromEntity(expenditure))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateDetail replaces the detail variant for an expenditure.
func (r *expenditureRepository) UpdateDetail(ctx context.Context, detail entity.ExpenditureDetail) error {
	switch d := detail.(type) {
	case *entity.RegularDetail:
		return r.db.WithContext(ctx).Save(model.RegularDetailFromEntity(d)).Error
	case *entity.SubscriptionDetail:
		return r.db.WithContext(ctx).Save(model.SubscriptionDetailFromEntity(d)).Error
	case *entity.InstallmentDetail:
		return r.db.WithContext(ctx).Save(model.InstallmentDetailFromEntity(d)).Error
	default:
		return errors.New("unknown expenditure detail variant")
	}
}

// Delete removes an expenditure and cascades to its detail, status history,
// payment history and photos inside one transaction.
func (r *expenditureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expenditure_id = ?", id).Delete(&model.PhotoModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("expenditure_id = ?", id).Delete(&model.StatusHistoryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("expenditure_id = ?", id).Delete(&model.PaymentHistoryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("expenditure_id = ?", id).Delete(&model.RegularDetailModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("expenditure_id = ?", id).Delete(&model.SubscriptionDetailModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("expenditure_id = ?", id).Delete(&model.InstallmentDetailModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&model.ExpenditureModel{}).Error; err != nil {
			return err
		}
		return nil
	})
}

// ExistsByID checks whether an expenditure exists.
func (r *expenditureRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ExpenditureModel{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// FindSubscriptionsDueForReminder returns subscriptions whose next payment is
// exactly the detail's lead time away from asOf, together with the owning
// profile. Only expenditures active for the due month are included.
func (r *expenditureRepository) FindSubscriptionsDueForReminder(ctx context.Context, asOf time.Time) ([]*adapter.SubscriptionReminder, error) {
	var detailModels []model.SubscriptionDetailModel
	result := r.db.WithContext(ctx).
		Where("reminder_days_before > 0").
		Find(&detailModels)
	if result.Error != nil {
		return nil, result.Error
	}

	today := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	var reminders []*adapter.SubscriptionReminder
	for i := range detailModels {
		detail := detailModels[i].ToEntity()

		var expenditureModel model.ExpenditureModel
		if err := r.db.WithContext(ctx).Where("id = ?", detail.ExpenditureID).First(&expenditureModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		expenditure := expenditureModel.ToEntity()

		dueDate := nextDueDate(today, expenditure.PaymentDay)
		if int(dueDate.Sub(today).Hours()/24) != detail.ReminderDaysBefore {
			continue
		}

		dueMonth := time.Date(dueDate.Year(), dueDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		var statusModel model.StatusHistoryModel
		err := r.db.WithContext(ctx).
			Where("expenditure_id = ? AND effective_month <= ?", expenditure.ID, dueMonth).
			Order("effective_month DESC").
			First(&statusModel).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		if entity.ExpenditureStatus(statusModel.Status) != entity.StatusActive {
			continue
		}

		var profileModel model.ProfileModel
		if err := r.db.WithContext(ctx).Where("id = ?", expenditure.ProfileID).First(&profileModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		reminders = append(reminders, &adapter.SubscriptionReminder{
			Expenditure: expenditure,
			Detail:      detail,
			Profile:     profileModel.ToEntity(),
			DueDate:     dueDate,
		})
	}
	return reminders, nil
}

// nextDueDate resolves the next occurrence of paymentDay on or after today.
// Days past the month's end clamp to the month's last day.
func nextDueDate(today time.Time, paymentDay int) time.Time {
	candidate := dayInMonth(today.Year(), today.Month(), paymentDay)
	if candidate.Before(today) {
		next := today.AddDate(0, 1, -today.Day()+1)
		candidate = dayInMonth(next.Year(), next.Month(), paymentDay)
	}
	return candidate
}

func dayInMonth(year int, month time.Month, day int) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
