package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	"github.com/0Hoxy/fixedExpenses/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	err = db.AutoMigrate(
		&model.ProfileModel{},
		&model.CategoryModel{},
		&model.PaymentMethodModel{},
		&model.ExpenditureModel{},
		&model.RegularDetailModel{},
		&model.SubscriptionDetailModel{},
		&model.InstallmentDetailModel{},
		&model.StatusHistoryModel{},
		&model.PaymentHistoryModel{},
		&model.PhotoModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func seedProfile(t *testing.T, db *gorm.DB) *entity.Profile {
	t.Helper()
	profile := entity.NewProfile(uuid.New(), "tester", "")
	if err := db.Create(model.ProfileFromEntity(profile)).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	return profile
}

func seedCategory(t *testing.T, db *gorm.DB, profileID uuid.UUID) *entity.Category {
	t.Helper()
	category := entity.NewCategory(profileID, "Housing", "home", "#336699", false)
	if err := db.Create(model.CategoryFromEntity(category)).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return category
}

func newExpenditure(profileID, categoryID uuid.UUID, itemName string, expenditureType entity.ExpenditureType) *entity.Expenditure {
	return entity.NewExpenditure(profileID, categoryID, nil, itemName, 25, "monthly", expenditureType, "")
}

func TestStatusHistoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("upsert on same month replaces the stored status", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewStatusHistoryRepository(db)
		expenditureID := uuid.New()

		first := &entity.StatusEntry{ExpenditureID: expenditureID, Status: entity.StatusActive, EffectiveMonth: month(2025, time.March)}
		if err := repo.Upsert(ctx, first); err != nil {
			t.Fatalf("first upsert failed: %v", err)
		}
		second := &entity.StatusEntry{ExpenditureID: expenditureID, Status: entity.StatusPaused, EffectiveMonth: month(2025, time.March)}
		if err := repo.Upsert(ctx, second); err != nil {
			t.Fatalf("second upsert failed: %v", err)
		}

		entries, err := repo.FindByExpenditure(ctx, expenditureID)
		if err != nil {
			t.Fatalf("FindByExpenditure failed: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected a single entry after overwrite, got %d", len(entries))
		}
		if entries[0].Status != entity.StatusPaused {
			t.Errorf("expected paused after overwrite, got %s", entries[0].Status)
		}
	})

	t.Run("latest entry at or before the target month wins", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewStatusHistoryRepository(db)
		expenditureID := uuid.New()

		entries := []*entity.StatusEntry{
			{ExpenditureID: expenditureID, Status: entity.StatusActive, EffectiveMonth: month(2025, time.January)},
			{ExpenditureID: expenditureID, Status: entity.StatusPaused, EffectiveMonth: month(2025, time.April)},
		}
		for _, e := range entries {
			if err := repo.Upsert(ctx, e); err != nil {
				t.Fatalf("upsert failed: %v", err)
			}
		}

		cases := []struct {
			target time.Time
			want   entity.ExpenditureStatus
		}{
			{month(2025, time.January), entity.StatusActive},
			{month(2025, time.March), entity.StatusActive},
			{month(2025, time.April), entity.StatusPaused},
			{month(2025, time.December), entity.StatusPaused},
		}
		for _, c := range cases {
			entry, err := repo.FindEffective(ctx, expenditureID, c.target)
			if err != nil {
				t.Fatalf("FindEffective(%v) failed: %v", c.target, err)
			}
			if entry == nil {
				t.Fatalf("FindEffective(%v) returned nil", c.target)
			}
			if entry.Status != c.want {
				t.Errorf("FindEffective(%v): expected %s, got %s", c.target, c.want, entry.Status)
			}
		}
	})

	t.Run("no entry at or before the target yields nil", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewStatusHistoryRepository(db)
		expenditureID := uuid.New()

		entry := &entity.StatusEntry{ExpenditureID: expenditureID, Status: entity.StatusActive, EffectiveMonth: month(2025, time.June)}
		if err := repo.Upsert(ctx, entry); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		got, err := repo.FindEffective(ctx, expenditureID, month(2025, time.February))
		if err != nil {
			t.Fatalf("FindEffective failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil before the first entry, got %+v", got)
		}
	})
}

func TestPaymentHistoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("upsert overwrites the record for the same month", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewPaymentHistoryRepository(db)
		expenditureID := uuid.New()
		paidAt := time.Date(2025, time.March, 25, 9, 0, 0, 0, time.UTC)

		first := &entity.PaymentRecord{ExpenditureID: expenditureID, PaymentMonth: month(2025, time.March), IsPaid: true, PaidTimestamp: &paidAt}
		if err := repo.Upsert(ctx, first); err != nil {
			t.Fatalf("first upsert failed: %v", err)
		}
		second := &entity.PaymentRecord{ExpenditureID: expenditureID, PaymentMonth: month(2025, time.March), IsPaid: false}
		if err := repo.Upsert(ctx, second); err != nil {
			t.Fatalf("second upsert failed: %v", err)
		}

		record, err := repo.FindByExpenditureAndMonth(ctx, expenditureID, month(2025, time.March))
		if err != nil {
			t.Fatalf("FindByExpenditureAndMonth failed: %v", err)
		}
		if record == nil {
			t.Fatal("expected a record, got nil")
		}
		if record.IsPaid {
			t.Error("expected unpaid after overwrite")
		}
		if record.PaidTimestamp != nil {
			t.Errorf("expected cleared timestamp, got %v", record.PaidTimestamp)
		}
	})

	t.Run("missing month yields nil without error", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewPaymentHistoryRepository(db)

		record, err := repo.FindByExpenditureAndMonth(ctx, uuid.New(), month(2025, time.March))
		if err != nil {
			t.Fatalf("FindByExpenditureAndMonth failed: %v", err)
		}
		if record != nil {
			t.Errorf("expected nil, got %+v", record)
		}
	})
}

func TestExpenditureRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create writes expenditure, detail and initial status atomically", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewExpenditureRepository(db)
		profile := seedProfile(t, db)
		category := seedCategory(t, db, profile.ID)

		expenditure := newExpenditure(profile.ID, category.ID, "Rent", entity.ExpenditureTypeRegular)
		detail := &entity.RegularDetail{ExpenditureID: expenditure.ID, Amount: decimal.NewFromInt(500000)}
		status := &entity.StatusEntry{ExpenditureID: expenditure.ID, Status: entity.StatusActive, EffectiveMonth: month(2025, time.March)}

		if err := repo.Create(ctx, expenditure, detail, status); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		found, err := repo.FindByID(ctx, expenditure.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if found == nil || found.ItemName != "Rent" {
			t.Fatalf("expected stored expenditure, got %+v", found)
		}

		storedDetail, err := repo.FindDetail(ctx, expenditure.ID, entity.ExpenditureTypeRegular)
		if err != nil {
			t.Fatalf("FindDetail failed: %v", err)
		}
		regular, ok := storedDetail.(*entity.RegularDetail)
		if !ok {
			t.Fatalf("expected regular detail, got %T", storedDetail)
		}
		if !regular.Amount.Equal(decimal.NewFromInt(500000)) {
			t.Errorf("expected amount 500000, got %s", regular.Amount)
		}

		var statusCount int64
		if err := db.Model(&model.StatusHistoryModel{}).Where("expenditure_id = ?", expenditure.ID).Count(&statusCount).Error; err != nil {
			t.Fatalf("status count failed: %v", err)
		}
		if statusCount != 1 {
			t.Errorf("expected one status entry, got %d", statusCount)
		}
	})

	t.Run("find by profile returns expenditures with their categories", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewExpenditureRepository(db)
		profile := seedProfile(t, db)
		category := seedCategory(t, db, profile.ID)

		expenditure := newExpenditure(profile.ID, category.ID, "Netflix", entity.ExpenditureTypeSubscription)
		detail := &entity.SubscriptionDetail{ExpenditureID: expenditure.ID, Amount: decimal.NewFromInt(17000)}
		status := &entity.StatusEntry{ExpenditureID: expenditure.ID, Status: entity.StatusActive, EffectiveMonth: month(2025, time.January)}
		if err := repo.Create(ctx, expenditure, detail, status); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		results, err := repo.FindByProfile(ctx, profile.ID)
		if err != nil {
			t.Fatalf("FindByProfile failed: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected one expenditure, got %d", len(results))
		}
		if results[0].Category == nil || results[0].Category.Name != "Housing" {
			t.Errorf("expected preloaded category Housing, got %+v", results[0].Category)
		}
	})

	t.Run("missing detail row yields nil without error", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewExpenditureRepository(db)

		detail, err := repo.FindDetail(ctx, uuid.New(), entity.ExpenditureTypeInstallment)
		if err != nil {
			t.Fatalf("FindDetail failed: %v", err)
		}
		if detail != nil {
			t.Errorf("expected nil detail, got %+v", detail)
		}
	})

	t.Run("delete cascades to detail, history and photos", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewExpenditureRepository(db)
		statusRepo := NewStatusHistoryRepository(db)
		paymentRepo := NewPaymentHistoryRepository(db)
		profile := seedProfile(t, db)
		category := seedCategory(t, db, profile.ID)

		expenditure := newExpenditure(profile.ID, category.ID, "Rent", entity.ExpenditureTypeRegular)
		detail := &entity.RegularDetail{ExpenditureID: expenditure.ID, Amount: decimal.NewFromInt(500000)}
		status := &entity.StatusEntry{ExpenditureID: expenditure.ID, Status: entity.StatusActive, EffectiveMonth: month(2025, time.January)}
		if err := repo.Create(ctx, expenditure, detail, status); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		payment := &entity.PaymentRecord{ExpenditureID: expenditure.ID, PaymentMonth: month(2025, time.February), IsPaid: true}
		if err := paymentRepo.Upsert(ctx, payment); err != nil {
			t.Fatalf("payment upsert failed: %v", err)
		}

		if err := repo.Delete(ctx, expenditure.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		found, err := repo.FindByID(ctx, expenditure.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if found != nil {
			t.Error("expected expenditure to be gone")
		}
		entries, err := statusRepo.FindByExpenditure(ctx, expenditure.ID)
		if err != nil {
			t.Fatalf("FindByExpenditure failed: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected status history to be gone, got %d entries", len(entries))
		}
		record, err := paymentRepo.FindByExpenditureAndMonth(ctx, expenditure.ID, month(2025, time.February))
		if err != nil {
			t.Fatalf("FindByExpenditureAndMonth failed: %v", err)
		}
		if record != nil {
			t.Error("expected payment history to be gone")
		}
		storedDetail, err := repo.FindDetail(ctx, expenditure.ID, entity.ExpenditureTypeRegular)
		if err != nil {
			t.Fatalf("FindDetail failed: %v", err)
		}
		if storedDetail != nil {
			t.Error("expected detail to be gone")
		}
	})

	t.Run("update persists base field changes", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewExpenditureRepository(db)
		profile := seedProfile(t, db)
		category := seedCategory(t, db, profile.ID)

		expenditure := newExpenditure(profile.ID, category.ID, "Rent", entity.ExpenditureTypeRegular)
		detail := &entity.RegularDetail{ExpenditureID: expenditure.ID, Amount: decimal.NewFromInt(500000)}
		status := &entity.StatusEntry{ExpenditureID: expenditure.ID, Status: entity.StatusActive, EffectiveMonth: month(2025, time.January)}
		if err := repo.Create(ctx, expenditure, detail, status); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		expenditure.ItemName = "New Rent"
		expenditure.PaymentDay = 1
		if err := repo.Update(ctx, expenditure); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		found, err := repo.FindByID(ctx, expenditure.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if found.ItemName != "New Rent" || found.PaymentDay != 1 {
			t.Errorf("expected updated fields, got %+v", found)
		}
	})
}

func TestFindSubscriptionsDueForReminder(t *testing.T) {
	ctx := context.Background()

	seedSubscription := func(t *testing.T, db *gorm.DB, profileID, categoryID uuid.UUID, paymentDay, reminderDays int, status entity.ExpenditureStatus) *entity.Expenditure {
		t.Helper()
		repo := NewExpenditureRepository(db)
		expenditure := entity.NewExpenditure(profileID, categoryID, nil, "Streaming", paymentDay, "monthly", entity.ExpenditureTypeSubscription, "")
		detail := &entity.SubscriptionDetail{ExpenditureID: expenditure.ID, Amount: decimal.NewFromInt(17000), ReminderDaysBefore: reminderDays}
		entry := &entity.StatusEntry{ExpenditureID: expenditure.ID, Status: status, EffectiveMonth: month(2025, time.January)}
		if err := repo.Create(ctx, expenditure, detail, entry); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		return expenditure
	}

	t.Run("matches subscriptions whose lead time lands on asOf", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewExpenditureRepository(db)
		profile := seedProfile(t, db)
		category := seedCategory(t, db, profile.ID)

		// Due on the 25th, 3-day lead: asOf the 22nd should match.
		matched := seedSubscription(t, db, profile.ID, category.ID, 25, 3, entity.StatusActive)
		seedSubscription(t, db, profile.ID, category.ID, 28, 3, entity.StatusActive)

		asOf := time.Date(2025, time.March, 22, 10, 30, 0, 0, time.UTC)
		reminders, err := repo.FindSubscriptionsDueForReminder(ctx, asOf)
		if err != nil {
			t.Fatalf("FindSubscriptionsDueForReminder failed: %v", err)
		}
		if len(reminders) != 1 {
			t.Fatalf("expected one reminder, got %d", len(reminders))
		}
		if reminders[0].Expenditure.ID != matched.ID {
			t.Errorf("expected expenditure %s, got %s", matched.ID, reminders[0].Expenditure.ID)
		}
		wantDue := time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC)
		if !reminders[0].DueDate.Equal(wantDue) {
			t.Errorf("expected due date %v, got %v", wantDue, reminders[0].DueDate)
		}
		if reminders[0].Profile == nil || reminders[0].Profile.ID != profile.ID {
			t.Error("expected the owning profile on the reminder")
		}
	})

	t.Run("paused subscriptions are skipped", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewExpenditureRepository(db)
		profile := seedProfile(t, db)
		category := seedCategory(t, db, profile.ID)

		seedSubscription(t, db, profile.ID, category.ID, 25, 3, entity.StatusPaused)

		asOf := time.Date(2025, time.March, 22, 0, 0, 0, 0, time.UTC)
		reminders, err := repo.FindSubscriptionsDueForReminder(ctx, asOf)
		if err != nil {
			t.Fatalf("FindSubscriptionsDueForReminder failed: %v", err)
		}
		if len(reminders) != 0 {
			t.Errorf("expected no reminders, got %d", len(reminders))
		}
	})

	t.Run("payment day earlier in the month wraps to the next month", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewExpenditureRepository(db)
		profile := seedProfile(t, db)
		category := seedCategory(t, db, profile.ID)

		// Due day 5 already passed in March; next due is April 5th, 7 days
		// after March 29th.
		seedSubscription(t, db, profile.ID, category.ID, 5, 7, entity.StatusActive)

		asOf := time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC)
		reminders, err := repo.FindSubscriptionsDueForReminder(ctx, asOf)
		if err != nil {
			t.Fatalf("FindSubscriptionsDueForReminder failed: %v", err)
		}
		if len(reminders) != 1 {
			t.Fatalf("expected one reminder, got %d", len(reminders))
		}
		wantDue := time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC)
		if !reminders[0].DueDate.Equal(wantDue) {
			t.Errorf("expected due date %v, got %v", wantDue, reminders[0].DueDate)
		}
	})
}
