package backup

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
)

func sampleSnapshot() *adapter.StoreSnapshot {
	profile := entity.NewProfile(uuid.New(), "tester", "KRW")
	category := entity.NewCategory(profile.ID, "Housing", "home", "#FF0000", true)
	method := entity.NewPaymentMethod(profile.ID, "Main card", "card")

	exp := entity.NewExpenditure(profile.ID, category.ID, &method.ID, "Rent", 25, "monthly", entity.ExpenditureTypeRegular, "lease")
	inst := entity.NewExpenditure(profile.ID, category.ID, nil, "Laptop", 5, "monthly", entity.ExpenditureTypeInstallment, "")

	paidAt := time.Date(2025, 3, 25, 9, 0, 0, 0, time.UTC)
	interest := decimal.NewFromFloat(5.5)

	return &adapter.StoreSnapshot{
		Profiles:       []*entity.Profile{profile},
		Categories:     []*entity.Category{category},
		PaymentMethods: []*entity.PaymentMethod{method},
		Expenditures:   []*entity.Expenditure{exp, inst},
		RegularDetails: []*entity.RegularDetail{{
			ExpenditureID: exp.ID,
			Amount:        decimal.NewFromInt(500000),
		}},
		InstallmentDetails: []*entity.InstallmentDetail{{
			ExpenditureID:   inst.ID,
			PrincipalAmount: decimal.NewFromInt(1200000),
			MonthlyPayment:  decimal.NewFromInt(100000),
			StartMonth:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			TotalMonths:     12,
			InterestType:    entity.InterestTypePercent,
			InterestValue:   &interest,
		}},
		PaymentHistory: []*entity.PaymentRecord{{
			ExpenditureID: exp.ID,
			PaymentMonth:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			IsPaid:        true,
			PaidTimestamp: &paidAt,
		}},
		StatusHistory: []*entity.StatusEntry{{
			ExpenditureID:  exp.ID,
			Status:         entity.StatusActive,
			EffectiveMonth: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
		Photos: []*entity.Photo{entity.NewPhoto(exp.ID, "photos/receipt.jpg")},
	}
}

func TestSnapshotCodec_RoundTrip(t *testing.T) {
	original := sampleSnapshot()
	createdAt := time.Date(2025, 3, 30, 12, 0, 0, 0, time.UTC)

	raw, err := EncodeSnapshot(original, createdAt)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := DecodeSnapshot(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(decoded.Profiles) != 1 || decoded.Profiles[0].ID != original.Profiles[0].ID {
		t.Error("profiles did not survive the round trip")
	}
	if len(decoded.Expenditures) != 2 {
		t.Errorf("expected 2 expenditures, got %d", len(decoded.Expenditures))
	}
	if decoded.Expenditures[0].Type != entity.ExpenditureTypeRegular {
		t.Errorf("expected REGULAR, got %s", decoded.Expenditures[0].Type)
	}
	if !decoded.RegularDetails[0].Amount.Equal(decimal.NewFromInt(500000)) {
		t.Errorf("regular amount mismatch: %s", decoded.RegularDetails[0].Amount)
	}
	inst := decoded.InstallmentDetails[0]
	if inst.TotalMonths != 12 || inst.InterestValue == nil || !inst.InterestValue.Equal(decimal.NewFromFloat(5.5)) {
		t.Error("installment detail did not survive the round trip")
	}
	if !decoded.StatusHistory[0].EffectiveMonth.Equal(original.StatusHistory[0].EffectiveMonth) {
		t.Error("status history month mismatch")
	}
	record := decoded.PaymentHistory[0]
	if !record.IsPaid || record.PaidTimestamp == nil || !record.PaidTimestamp.Equal(*original.PaymentHistory[0].PaidTimestamp) {
		t.Error("payment record did not survive the round trip")
	}
}

func TestSnapshotCodec_DocumentShape(t *testing.T) {
	raw, err := EncodeSnapshot(sampleSnapshot(), time.Now().UTC())
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	var version string
	if err := json.Unmarshal(doc["version"], &version); err != nil || version != "1.0" {
		t.Errorf("expected version \"1.0\", got %s", doc["version"])
	}
	if _, ok := doc["createdAt"]; !ok {
		t.Error("expected a createdAt field")
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(doc["data"], &data); err != nil {
		t.Fatalf("data section is not an object: %v", err)
	}
	for _, key := range []string{
		"profiles", "categories", "paymentMethods", "expenditures",
		"expenditureDetailsRegular", "expenditureDetailsSubscription",
		"expenditureDetailsInstallment", "paymentHistory", "statusHistory", "photos",
	} {
		if _, ok := data[key]; !ok {
			t.Errorf("expected data.%s to be present", key)
		}
	}
}

func TestDecodeSnapshot_Validation(t *testing.T) {
	t.Run("missing data section is malformed", func(t *testing.T) {
		_, err := DecodeSnapshot([]byte(`{"version":"1.0","createdAt":"2025-03-30T12:00:00Z"}`))
		if !errors.Is(err, domainerror.ErrMalformedBackup) {
			t.Errorf("expected ErrMalformedBackup, got %v", err)
		}
	})

	t.Run("invalid JSON is malformed", func(t *testing.T) {
		_, err := DecodeSnapshot([]byte(`not json at all`))
		var backupErr *domainerror.BackupError
		if !errors.As(err, &backupErr) || backupErr.Code != domainerror.ErrCodeMalformedBackup {
			t.Errorf("expected malformed backup error, got %v", err)
		}
	})

	t.Run("empty data object decodes to an empty snapshot", func(t *testing.T) {
		snapshot, err := DecodeSnapshot([]byte(`{"version":"1.0","createdAt":"2025-03-30T12:00:00Z","data":{}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snapshot.Profiles) != 0 || len(snapshot.Expenditures) != 0 {
			t.Error("expected an empty snapshot")
		}
	})
}
