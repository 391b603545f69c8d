package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/integration/persistence/model"
)

// insertBatchSize bounds the row count per INSERT during restore.
const insertBatchSize = 200

// snapshotRepository implements the adapter.SnapshotRepository interface.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository instance.
func NewSnapshotRepository(db *gorm.DB) adapter.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// ReadAll loads every row of every table into a snapshot.
func (r *snapshotRepository) ReadAll(ctx context.Context) (*adapter.StoreSnapshot, error) {
	db := r.db.WithContext(ctx)
	snapshot := &adapter.StoreSnapshot{}

	var profileModels []model.ProfileModel
	if err := db.Find(&profileModels).Error; err != nil {
		return nil, err
	}
	for i := range profileModels {
		snapshot.Profiles = append(snapshot.Profiles, profileModels[i].ToEntity())
	}

	var categoryModels []model.CategoryModel
	if err := db.Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	for i := range categoryModels {
		snapshot.Categories = append(snapshot.Categories, categoryModels[i].ToEntity())
	}

	var paymentMethodModels []model.PaymentMethodModel
	if err := db.Find(&paymentMethodModels).Error; err != nil {
		return nil, err
	}
	for i := range paymentMethodModels {
		snapshot.PaymentMethods = append(snapshot.PaymentMethods, paymentMethodModels[i].ToEntity())
	}

	var expenditureModels []model.ExpenditureModel
	if err := db.Find(&expenditureModels).Error; err != nil {
		return nil, err
	}
	for i := range expenditureModels {
		snapshot.Expenditures = append(snapshot.Expenditures, expenditureModels[i].ToEntity())
	}

	var regularModels []model.RegularDetailModel
	if err := db.Find(&regularModels).Error; err != nil {
		return nil, err
	}
	for i := range regularModels {
		snapshot.RegularDetails = append(snapshot.RegularDetails, regularModels[i].ToEntity())
	}

	var subscriptionModels []model.SubscriptionDetailModel
	if err := db.Find(&subscriptionModels).Error; err != nil {
		return nil, err
	}
	for i := range subscriptionModels {
		snapshot.SubscriptionDetails = append(snapshot.SubscriptionDetails, subscriptionModels[i].ToEntity())
	}

	var installmentModels []model.InstallmentDetailModel
	if err := db.Find(&installmentModels).Error; err != nil {
		return nil, err
	}
	for i := range installmentModels {
		snapshot.InstallmentDetails = append(snapshot.InstallmentDetails, installmentModels[i].ToEntity())
	}

	var paymentModels []model.PaymentHistoryModel
	if err := db.Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	for i := range paymentModels {
		snapshot.PaymentHistory = append(snapshot.PaymentHistory, paymentModels[i].ToEntity())
	}

	var statusModels []model.StatusHistoryModel
	if err := db.Find(&statusModels).Error; err != nil {
		return nil, err
	}
	for i := range statusModels {
		snapshot.StatusHistory = append(snapshot.StatusHistory, statusModels[i].ToEntity())
	}

	var photoModels []model.PhotoModel
	if err := db.Find(&photoModels).Error; err != nil {
		return nil, err
	}
	for i := range photoModels {
		snapshot.Photos = append(snapshot.Photos, photoModels[i].ToEntity())
	}

	return snapshot, nil
}

// ReplaceAll deletes all existing rows and inserts the snapshot's rows inside
// a single transaction. Deletes run child-first, inserts parent-first, so
// foreign keys hold at every point. Any failure rolls the whole transaction
// back.
func (r *snapshotRepository) ReplaceAll(ctx context.Context, snapshot *adapter.StoreSnapshot, progress func(percent int)) error {
	report := func(percent int) {
		if progress != nil {
			progress(percent)
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deletions := []interface{}{
			&model.PhotoModel{},
			&model.StatusHistoryModel{},
			&model.PaymentHistoryModel{},
			&model.InstallmentDetailModel{},
			&model.SubscriptionDetailModel{},
			&model.RegularDetailModel{},
			&model.ExpenditureModel{},
			&model.PaymentMethodModel{},
			&model.CategoryModel{},
			&model.ProfileModel{},
		}
		for _, target := range deletions {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(target).Error; err != nil {
				return err
			}
		}
		report(40)

		if err := insertBatch(tx, profileModels(snapshot)); err != nil {
			return err
		}
		if err := insertBatch(tx, categoryModels(snapshot)); err != nil {
			return err
		}
		if err := insertBatch(tx, paymentMethodModels(snapshot)); err != nil {
			return err
		}
		report(60)

		if err := insertBatch(tx, expenditureModels(snapshot)); err != nil {
			return err
		}
		if err := insertBatch(tx, regularDetailModels(snapshot)); err != nil {
			return err
		}
		if err := insertBatch(tx, subscriptionDetailModels(snapshot)); err != nil {
			return err
		}
		if err := insertBatch(tx, installmentDetailModels(snapshot)); err != nil {
			return err
		}
		report(80)

		if err := insertBatch(tx, paymentHistoryModels(snapshot)); err != nil {
			return err
		}
		if err := insertBatch(tx, statusHistoryModels(snapshot)); err != nil {
			return err
		}
		if err := insertBatch(tx, photoModels(snapshot)); err != nil {
			return err
		}
		report(95)

		return nil
	})
}

func insertBatch[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Omit(clause.Associations).CreateInBatches(rows, insertBatchSize).Error
}

func profileModels(s *adapter.StoreSnapshot) []*model.ProfileModel {
	rows := make([]*model.ProfileModel, len(s.Profiles))
	for i, p := range s.Profiles {
		rows[i] = model.ProfileFromEntity(p)
	}
	return rows
}

func categoryModels(s *adapter.StoreSnapshot) []*model.CategoryModel {
	rows := make([]*model.CategoryModel, len(s.Categories))
	for i, c := range s.Categories {
		rows[i] = model.CategoryFromEntity(c)
	}
	return rows
}

func paymentMethodModels(s *adapter.StoreSnapshot) []*model.PaymentMethodModel {
	rows := make([]*model.PaymentMethodModel, len(s.PaymentMethods))
	for i, pm := range s.PaymentMethods {
		rows[i] = model.PaymentMethodFromEntity(pm)
	}
	return rows
}

func expenditureModels(s *adapter.StoreSnapshot) []*model.ExpenditureModel {
	rows := make([]*model.ExpenditureModel, len(s.Expenditures))
	for i, e := range s.Expenditures {
		rows[i] = model.ExpenditureFromEntity(e)
	}
	return rows
}

func regularDetailModels(s *adapter.StoreSnapshot) []*model.RegularDetailModel {
	rows := make([]*model.RegularDetailModel, len(s.RegularDetails))
	for i, d := range s.RegularDetails {
		rows[i] = model.RegularDetailFromEntity(d)
	}
	return rows
}

func subscriptionDetailModels(s *adapter.StoreSnapshot) []*model.SubscriptionDetailModel {
	rows := make([]*model.SubscriptionDetailModel, len(s.SubscriptionDetails))
	for i, d := range s.SubscriptionDetails {
		rows[i] = model.SubscriptionDetailFromEntity(d)
	}
	return rows
}

func installmentDetailModels(s *adapter.StoreSnapshot) []*model.InstallmentDetailModel {
	rows := make([]*model.InstallmentDetailModel, len(s.InstallmentDetails))
	for i, d := range s.InstallmentDetails {
		rows[i] = model.InstallmentDetailFromEntity(d)
	}
	return rows
}

func paymentHistoryModels(s *adapter.StoreSnapshot) []*model.PaymentHistoryModel {
	rows := make([]*model.PaymentHistoryModel, len(s.PaymentHistory))
	for i, p := range s.PaymentHistory {
		rows[i] = model.PaymentHistoryFromEntity(p)
	}
	return rows
}

func statusHistoryModels(s *adapter.StoreSnapshot) []*model.StatusHistoryModel {
	rows := make([]*model.StatusHistoryModel, len(s.StatusHistory))
	for i, e := range s.StatusHistory {
		rows[i] = model.StatusHistoryFromEntity(e)
	}
	return rows
}

func photoModels(s *adapter.StoreSnapshot) []*model.PhotoModel {
	rows := make([]*model.PhotoModel, len(s.Photos))
	for i, p := range s.Photos {
		rows[i] = model.PhotoFromEntity(p)
	}
	return rows
}
