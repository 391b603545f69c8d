package expenditure

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
)

func seedExpenditure(h *harness, expType entity.ExpenditureType) *entity.Expenditure {
	exp := entity.NewExpenditure(h.profileID, h.categoryID, nil, "Rent", 25, "monthly", expType, "")
	h.expRepo.expenditures[exp.ID] = exp
	return exp
}

func TestUpdateExpenditureUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("updates base fields", func(t *testing.T) {
		h := newHarness()
		exp := seedExpenditure(h, entity.ExpenditureTypeRegular)
		uc := NewUpdateExpenditureUseCase(h.expRepo, h.categoryRepo, h.paymentMethodRepo)

		name := " New Rent "
		day := 10
		out, err := uc.Execute(ctx, UpdateExpenditureInput{
			ExpenditureID: exp.ID,
			ItemName:      &name,
			PaymentDay:    &day,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Expenditure.ItemName != "New Rent" {
			t.Errorf("expected trimmed name, got %q", out.Expenditure.ItemName)
		}
		if out.Expenditure.PaymentDay != 10 {
			t.Errorf("expected payment day 10, got %d", out.Expenditure.PaymentDay)
		}
	})

	t.Run("type change is rejected", func(t *testing.T) {
		h := newHarness()
		exp := seedExpenditure(h, entity.ExpenditureTypeRegular)
		uc := NewUpdateExpenditureUseCase(h.expRepo, h.categoryRepo, h.paymentMethodRepo)

		newType := "SUBSCRIPTION"
		_, err := uc.Execute(ctx, UpdateExpenditureInput{ExpenditureID: exp.ID, Type: &newType})
		if !errors.Is(err, domainerror.ErrExpenditureTypeImmutable) {
			t.Errorf("expected ErrExpenditureTypeImmutable, got %v", err)
		}
	})

	t.Run("same type in the payload is accepted", func(t *testing.T) {
		h := newHarness()
		exp := seedExpenditure(h, entity.ExpenditureTypeRegular)
		uc := NewUpdateExpenditureUseCase(h.expRepo, h.categoryRepo, h.paymentMethodRepo)

		sameType := "REGULAR"
		if _, err := uc.Execute(ctx, UpdateExpenditureInput{ExpenditureID: exp.ID, Type: &sameType}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("detail update must match the stored type", func(t *testing.T) {
		h := newHarness()
		exp := seedExpenditure(h, entity.ExpenditureTypeRegular)
		uc := NewUpdateExpenditureUseCase(h.expRepo, h.categoryRepo, h.paymentMethodRepo)

		out, err := uc.Execute(ctx, UpdateExpenditureInput{
			ExpenditureID: exp.ID,
			Detail:        &DetailInput{Amount: amount(600000)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		detail := h.expRepo.details[out.Expenditure.ID]
		if detail == nil || detail.ExpenditureKind() != entity.ExpenditureTypeRegular {
			t.Error("expected a regular detail to be stored")
		}
	})

	t.Run("unknown expenditure fails with not found", func(t *testing.T) {
		h := newHarness()
		uc := NewUpdateExpenditureUseCase(h.expRepo, h.categoryRepo, h.paymentMethodRepo)

		_, err := uc.Execute(ctx, UpdateExpenditureInput{ExpenditureID: uuid.New()})
		if !errors.Is(err, domainerror.ErrExpenditureNotFound) {
			t.Errorf("expected ErrExpenditureNotFound, got %v", err)
		}
	})
}

func TestMarkPaymentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("marks a month paid with default timestamp", func(t *testing.T) {
		h := newHarness()
		exp := seedExpenditure(h, entity.ExpenditureTypeRegular)
		uc := NewMarkPaymentUseCase(h.expRepo, h.paymentRepo)

		out, err := uc.Execute(ctx, MarkPaymentInput{ExpenditureID: exp.ID, Month: "2025-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Record.IsPaid {
			t.Error("expected isPaid to default to true")
		}
		if out.Record.PaidTimestamp == nil {
			t.Error("expected a paid timestamp to be set")
		}
		if out.Record.PaymentMonth != time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) {
			t.Errorf("expected normalized payment month, got %s", out.Record.PaymentMonth)
		}
	})

	t.Run("unpaid record clears the timestamp", func(t *testing.T) {
		h := newHarness()
		exp := seedExpenditure(h, entity.ExpenditureTypeRegular)
		uc := NewMarkPaymentUseCase(h.expRepo, h.paymentRepo)

		unpaid := false
		out, err := uc.Execute(ctx, MarkPaymentInput{ExpenditureID: exp.ID, Month: "2025-03", IsPaid: &unpaid})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Record.IsPaid {
			t.Error("expected isPaid false")
		}
		if out.Record.PaidTimestamp != nil {
			t.Error("expected no paid timestamp for an unpaid record")
		}
	})

	t.Run("marking the same month twice overwrites", func(t *testing.T) {
		h := newHarness()
		exp := seedExpenditure(h, entity.ExpenditureTypeRegular)
		uc := NewMarkPaymentUseCase(h.expRepo, h.paymentRepo)

		if _, err := uc.Execute(ctx, MarkPaymentInput{ExpenditureID: exp.ID, Month: "2025-03"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		unpaid := false
		if _, err := uc.Execute(ctx, MarkPaymentInput{ExpenditureID: exp.ID, Month: "2025-03", IsPaid: &unpaid}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		month := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		record, _ := h.paymentRepo.FindByExpenditureAndMonth(ctx, exp.ID, month)
		if record == nil || record.IsPaid {
			t.Error("expected the overwrite to win")
		}
		if len(h.paymentRepo.records[exp.ID]) != 1 {
			t.Errorf("expected a single record, got %d", len(h.paymentRepo.records[exp.ID]))
		}
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		h := newHarness()
		exp := seedExpenditure(h, entity.ExpenditureTypeRegular)
		uc := NewMarkPaymentUseCase(h.expRepo, h.paymentRepo)

		_, err := uc.Execute(ctx, MarkPaymentInput{ExpenditureID: exp.ID, Month: "March 2025"})
		if !errors.Is(err, domainerror.ErrInvalidMonthFormat) {
			t.Errorf("expected ErrInvalidMonthFormat, got %v", err)
		}
	})
}
