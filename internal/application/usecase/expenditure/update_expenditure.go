package expenditure

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
)

// UpdateExpenditureInput represents a partial update. Nil fields are left
// unchanged. The expenditure type is fixed at creation; a non-nil Type that
// differs from the stored one fails.
type UpdateExpenditureInput struct {
	ExpenditureID   uuid.UUID
	Type            *string
	CategoryID      *uuid.UUID
	PaymentMethodID *uuid.UUID
	ItemName        *string
	PaymentDay      *int
	PaymentCycle    *string
	Memo            *string
	Detail          *DetailInput
}

// UpdateExpenditureOutput represents the output of an update.
type UpdateExpenditureOutput struct {
	Expenditure *entity.Expenditure
}

// UpdateExpenditureUseCase handles partial updates of an expenditure's base
// fields and optionally its detail.
type UpdateExpenditureUseCase struct {
	expenditureRepo   adapter.ExpenditureRepository
	categoryRepo      adapter.CategoryRepository
	paymentMethodRepo adapter.PaymentMethodRepository
}

// NewUpdateExpenditureUseCase creates a new UpdateExpenditureUseCase instance.
func NewUpdateExpenditureUseCase(
	expenditureRepo adapter.ExpenditureRepository,
	categoryRepo adapter.CategoryRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
) *UpdateExpenditureUseCase {
	return &UpdateExpenditureUseCase{
		expenditureRepo:   expenditureRepo,
		categoryRepo:      categoryRepo,
		paymentMethodRepo: paymentMethodRepo,
	}
}

// Execute applies the update.
func (uc *UpdateExpenditureUseCase) Execute(ctx context.Context, input UpdateExpenditureInput) (*UpdateExpenditureOutput, error) {
	exp, err := uc.expenditureRepo.FindByID(ctx, input.ExpenditureID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenditure: %w", err)
	}
	if exp == nil {
		return nil, domainerror.NewExpenditureError(
			domainerror.ErrCodeExpenditureNotFound,
			"expenditure not found",
			domainerror.ErrExpenditureNotFound,
		)
	}

	if input.Type != nil && entity.ExpenditureType(*input.Type) != exp.Type {
		return nil, domainerror.NewExpenditureError(
			domainerror.ErrCodeExpenditureTypeImmutable,
			"expenditure type cannot be changed after creation",
			domainerror.ErrExpenditureTypeImmutable,
		)
	}

	if input.CategoryID != nil {
		exists, err := uc.categoryRepo.ExistsByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category existence: %w", err)
		}
		if !exists {
			return nil, domainerror.NewExpenditureError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		exp.CategoryID = *input.CategoryID
	}

	if input.PaymentMethodID != nil {
		exists, err := uc.paymentMethodRepo.ExistsByID(ctx, *input.PaymentMethodID)
		if err != nil {
			return nil, fmt.Errorf("failed to check payment method existence: %w", err)
		}
		if !exists {
			return nil, domainerror.NewExpenditureError(
				domainerror.ErrCodePaymentMethodNotFound,
				"payment method not found",
				domainerror.ErrPaymentMethodNotFound,
			)
		}
		exp.PaymentMethodID = input.PaymentMethodID
	}

	if input.ItemName != nil {
		name := strings.TrimSpace(*input.ItemName)
		if name == "" {
			return nil, domainerror.NewExpenditureError(
				domainerror.ErrCodeMissingDetailFields,
				"itemName must not be empty",
				domainerror.ErrMissingDetailFields,
			)
		}
		exp.ItemName = name
	}

	if input.PaymentDay != nil {
		if *input.PaymentDay < 1 || *input.PaymentDay > 31 {
			return nil, domainerror.NewExpenditureError(
				domainerror.ErrCodeInvalidPaymentDay,
				"paymentDay must be between 1 and 31",
				domainerror.ErrInvalidPaymentDay,
			)
		}
		exp.PaymentDay = *input.PaymentDay
	}

	if input.PaymentCycle != nil {
		exp.PaymentCycle = *input.PaymentCycle
	}

	if input.Memo != nil {
		exp.Memo = strings.TrimSpace(*input.Memo)
	}

	exp.UpdatedAt = time.Now().UTC()

	if err := uc.expenditureRepo.Update(ctx, exp); err != nil {
		return nil, fmt.Errorf("failed to update expenditure: %w", err)
	}

	if input.Detail != nil {
		detail, err := buildDetail(exp.ID, exp.Type, *input.Detail)
		if err != nil {
			return nil, err
		}
		if err := uc.expenditureRepo.UpdateDetail(ctx, detail); err != nil {
			return nil, fmt.Errorf("failed to update detail: %w", err)
		}
	}

	return &UpdateExpenditureOutput{Expenditure: exp}, nil
}
