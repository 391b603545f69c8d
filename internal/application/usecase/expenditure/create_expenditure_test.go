package expenditure

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
)

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCreateExpenditureUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	validInput := func(h *harness) CreateExpenditureInput {
		return CreateExpenditureInput{
			ProfileID:    h.profileID,
			CategoryID:   h.categoryID,
			ItemName:     "  Rent  ",
			PaymentDay:   25,
			PaymentCycle: "monthly",
			Type:         "REGULAR",
			Detail:       DetailInput{Amount: amount(500000)},
		}
	}

	t.Run("creates expenditure with detail and initial active status", func(t *testing.T) {
		h := newHarness()
		uc := NewCreateExpenditureUseCase(h.profileRepo, h.categoryRepo, h.paymentMethodRepo, h.expRepo)

		out, err := uc.Execute(ctx, validInput(h))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Expenditure.ItemName != "Rent" {
			t.Errorf("expected trimmed item name, got %q", out.Expenditure.ItemName)
		}

		if len(h.expRepo.created) != 1 {
			t.Fatalf("expected one create call, got %d", len(h.expRepo.created))
		}
		rec := h.expRepo.created[0]
		if rec.detail == nil || rec.detail.ExpenditureKind() != entity.ExpenditureTypeRegular {
			t.Error("expected a regular detail to be created with the expenditure")
		}
		if rec.initialStatus == nil || rec.initialStatus.Status != entity.StatusActive {
			t.Error("expected an initial active status entry")
		}
		if rec.initialStatus.EffectiveMonth.Day() != 1 {
			t.Errorf("expected initial status month normalized to the 1st, got day %d", rec.initialStatus.EffectiveMonth.Day())
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		h := newHarness()
		uc := NewCreateExpenditureUseCase(h.profileRepo, h.categoryRepo, h.paymentMethodRepo, h.expRepo)

		in := validInput(h)
		in.Type = "ONE_TIME"
		_, err := uc.Execute(ctx, in)
		if !errors.Is(err, domainerror.ErrInvalidExpenditureType) {
			t.Errorf("expected ErrInvalidExpenditureType, got %v", err)
		}
	})

	t.Run("rejects payment day out of range", func(t *testing.T) {
		h := newHarness()
		uc := NewCreateExpenditureUseCase(h.profileRepo, h.categoryRepo, h.paymentMethodRepo, h.expRepo)

		for _, day := range []int{0, 32, -1} {
			in := validInput(h)
			in.PaymentDay = day
			if _, err := uc.Execute(ctx, in); !errors.Is(err, domainerror.ErrInvalidPaymentDay) {
				t.Errorf("day %d: expected ErrInvalidPaymentDay, got %v", day, err)
			}
		}
	})

	t.Run("rejects missing detail fields per type", func(t *testing.T) {
		h := newHarness()
		uc := NewCreateExpenditureUseCase(h.profileRepo, h.categoryRepo, h.paymentMethodRepo, h.expRepo)

		regular := validInput(h)
		regular.Detail = DetailInput{}
		if _, err := uc.Execute(ctx, regular); !errors.Is(err, domainerror.ErrMissingDetailFields) {
			t.Errorf("REGULAR: expected ErrMissingDetailFields, got %v", err)
		}

		installment := validInput(h)
		installment.Type = "INSTALLMENT"
		installment.Detail = DetailInput{PrincipalAmount: amount(1200000), MonthlyPayment: amount(100000)}
		if _, err := uc.Execute(ctx, installment); !errors.Is(err, domainerror.ErrMissingDetailFields) {
			t.Errorf("INSTALLMENT: expected ErrMissingDetailFields, got %v", err)
		}
	})

	t.Run("rejects malformed installment start month", func(t *testing.T) {
		h := newHarness()
		uc := NewCreateExpenditureUseCase(h.profileRepo, h.categoryRepo, h.paymentMethodRepo, h.expRepo)

		in := validInput(h)
		in.Type = "INSTALLMENT"
		startMonth := "2025-01-15"
		months := 12
		in.Detail = DetailInput{
			PrincipalAmount: amount(1200000),
			MonthlyPayment:  amount(100000),
			StartMonth:      &startMonth,
			TotalMonths:     &months,
		}
		if _, err := uc.Execute(ctx, in); !errors.Is(err, domainerror.ErrInvalidMonthFormat) {
			t.Errorf("expected ErrInvalidMonthFormat, got %v", err)
		}
	})

	t.Run("unknown references fail with not found", func(t *testing.T) {
		h := newHarness()
		uc := NewCreateExpenditureUseCase(h.profileRepo, h.categoryRepo, h.paymentMethodRepo, h.expRepo)

		in := validInput(h)
		in.ProfileID = uuid.New()
		if _, err := uc.Execute(ctx, in); !errors.Is(err, domainerror.ErrProfileNotFound) {
			t.Errorf("expected ErrProfileNotFound, got %v", err)
		}

		in = validInput(h)
		in.CategoryID = uuid.New()
		if _, err := uc.Execute(ctx, in); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}

		in = validInput(h)
		unknown := uuid.New()
		in.PaymentMethodID = &unknown
		if _, err := uc.Execute(ctx, in); !errors.Is(err, domainerror.ErrPaymentMethodNotFound) {
			t.Errorf("expected ErrPaymentMethodNotFound, got %v", err)
		}
	})
}
