package expenditure

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
	"github.com/0Hoxy/fixedExpenses/internal/domain/valueobject"
)

// MarkPaymentInput represents the input for recording a month's payment.
type MarkPaymentInput struct {
	ExpenditureID uuid.UUID
	Month         string // YYYY-MM
	IsPaid        *bool  // Defaults to true
	PaidTimestamp *time.Time
}

// MarkPaymentOutput represents the output of recording a payment.
type MarkPaymentOutput struct {
	Record *entity.PaymentRecord
}

// MarkPaymentUseCase records whether a given month's payment was made.
// Records are keyed on (expenditure, month), so marking the same month
// twice overwrites the earlier record.
type MarkPaymentUseCase struct {
	expenditureRepo adapter.ExpenditureRepository
	paymentRepo     adapter.PaymentHistoryRepository
}

// NewMarkPaymentUseCase creates a new MarkPaymentUseCase instance.
func NewMarkPaymentUseCase(
	expenditureRepo adapter.ExpenditureRepository,
	paymentRepo adapter.PaymentHistoryRepository,
) *MarkPaymentUseCase {
	return &MarkPaymentUseCase{
		expenditureRepo: expenditureRepo,
		paymentRepo:     paymentRepo,
	}
}

// Execute records the payment state for one month.
func (uc *MarkPaymentUseCase) Execute(ctx context.Context, input MarkPaymentInput) (*MarkPaymentOutput, error) {
	month, err := valueobject.ParseMonth(input.Month)
	if err != nil {
		return nil, domainerror.NewExpenditureError(
			domainerror.ErrCodeInvalidMonthFormat,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonthFormat,
		)
	}

	exists, err := uc.expenditureRepo.ExistsByID(ctx, input.ExpenditureID)
	if err != nil {
		return nil, fmt.Errorf("failed to check expenditure existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewExpenditureError(
			domainerror.ErrCodeExpenditureNotFound,
			"expenditure not found",
			domainerror.ErrExpenditureNotFound,
		)
	}

	isPaid := true
	if input.IsPaid != nil {
		isPaid = *input.IsPaid
	}

	var paidAt *time.Time
	if isPaid {
		if input.PaidTimestamp != nil {
			paidAt = input.PaidTimestamp
		} else {
			now := time.Now().UTC()
			paidAt = &now
		}
	}

	record := &entity.PaymentRecord{
		ExpenditureID: input.ExpenditureID,
		PaymentMonth:  month.Time(),
		IsPaid:        isPaid,
		PaidTimestamp: paidAt,
	}

	if err := uc.paymentRepo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to upsert payment record: %w", err)
	}

	return &MarkPaymentOutput{Record: record}, nil
}
