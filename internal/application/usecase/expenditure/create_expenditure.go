// Package expenditure contains expenditure CRUD and payment use cases.
package expenditure

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
	"github.com/0Hoxy/fixedExpenses/internal/domain/valueobject"
)

// DetailInput carries the type-specific detail fields of a create or update
// request. Only the fields matching the expenditure type are read; the use
// case validates that the required ones are present.
type DetailInput struct {
	// REGULAR and SUBSCRIPTION
	Amount *decimal.Decimal

	// REGULAR
	IsShared    bool
	TotalAmount *decimal.Decimal
	ShareType   *string

	// SUBSCRIPTION
	PlanName           *string
	ReminderDaysBefore int

	// INSTALLMENT
	PrincipalAmount *decimal.Decimal
	MonthlyPayment  *decimal.Decimal
	StartMonth      *string // YYYY-MM
	TotalMonths     *int
	InterestType    *string
	InterestValue   *decimal.Decimal
}

// CreateExpenditureInput represents the input for expenditure creation.
type CreateExpenditureInput struct {
	ProfileID       uuid.UUID
	CategoryID      uuid.UUID
	PaymentMethodID *uuid.UUID
	ItemName        string
	PaymentDay      int
	PaymentCycle    string
	Type            string
	Memo            string
	Detail          DetailInput
}

// CreateExpenditureOutput represents the output of expenditure creation.
type CreateExpenditureOutput struct {
	Expenditure *entity.Expenditure
	Detail      entity.ExpenditureDetail
}

// CreateExpenditureUseCase handles expenditure creation. The expenditure,
// its typed detail and an initial active status for the current month are
// written in one transaction.
type CreateExpenditureUseCase struct {
	profileRepo       adapter.ProfileRepository
	categoryRepo      adapter.CategoryRepository
	paymentMethodRepo adapter.PaymentMethodRepository
	expenditureRepo   adapter.ExpenditureRepository
}

// NewCreateExpenditureUseCase creates a new CreateExpenditureUseCase instance.
func NewCreateExpenditureUseCase(
	profileRepo adapter.ProfileRepository,
	categoryRepo adapter.CategoryRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
	expenditureRepo adapter.ExpenditureRepository,
) *CreateExpenditureUseCase {
	return &CreateExpenditureUseCase{
		profileRepo:       profileRepo,
		categoryRepo:      categoryRepo,
		paymentMethodRepo: paymentMethodRepo,
		expenditureRepo:   expenditureRepo,
	}
}

// Execute performs the expenditure creation.
func (uc *CreateExpenditureUseCase) Execute(ctx context.Context, input CreateExpenditureInput) (*CreateExpenditureOutput, error) {
	itemName := strings.TrimSpace(input.ItemName)
	if itemName == "" || input.PaymentCycle == "" {
		return nil, domainerror.NewExpenditureError(
			domainerror.ErrCodeMissingDetailFields,
			"itemName and paymentCycle are required",
			domainerror.ErrMissingDetailFields,
		)
	}

	expType := entity.ExpenditureType(input.Type)
	if !expType.IsValid() {
		return nil, domainerror.NewExpenditureError(
			domainerror.ErrCodeInvalidExpenditureType,
			"type must be REGULAR, SUBSCRIPTION or INSTALLMENT",
			domainerror.ErrInvalidExpenditureType,
		)
	}

	if input.PaymentDay < 1 || input.PaymentDay > 31 {
		return nil, domainerror.NewExpenditureError(
			domainerror.ErrCodeInvalidPaymentDay,
			"paymentDay must be between 1 and 31",
			domainerror.ErrInvalidPaymentDay,
		)
	}

	if err := uc.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	exp := entity.NewExpenditure(
		input.ProfileID,
		input.CategoryID,
		input.PaymentMethodID,
		itemName,
		input.PaymentDay,
		input.PaymentCycle,
		expType,
		strings.TrimSpace(input.Memo),
	)

	detail, err := buildDetail(exp.ID, expType, input.Detail)
	if err != nil {
		return nil, err
	}

	initialStatus := &entity.StatusEntry{
		ExpenditureID:  exp.ID,
		Status:         entity.StatusActive,
		EffectiveMonth: valueobject.MonthOf(time.Now().UTC()).Time(),
	}

	if err := uc.expenditureRepo.Create(ctx, exp, detail, initialStatus); err != nil {
		return nil, fmt.Errorf("failed to create expenditure: %w", err)
	}

	return &CreateExpenditureOutput{
		Expenditure: exp,
		Detail:      detail,
	}, nil
}

func (uc *CreateExpenditureUseCase) checkReferences(ctx context.Context, input CreateExpenditureInput) error {
	exists, err := uc.profileRepo.ExistsByID(ctx, input.ProfileID)
	if err != nil {
		return fmt.Errorf("failed to check profile existence: %w", err)
	}
	if !exists {
		return domainerror.NewExpenditureError(
			domainerror.ErrCodeProfileNotFound,
			"profile not found",
			domainerror.ErrProfileNotFound,
		)
	}

	exists, err = uc.categoryRepo.ExistsByID(ctx, input.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to check category existence: %w", err)
	}
	if !exists {
		return domainerror.NewExpenditureError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if input.PaymentMethodID != nil {
		exists, err = uc.paymentMethodRepo.ExistsByID(ctx, *input.PaymentMethodID)
		if err != nil {
			return fmt.Errorf("failed to check payment method existence: %w", err)
		}
		if !exists {
			return domainerror.NewExpenditureError(
				domainerror.ErrCodePaymentMethodNotFound,
				"payment method not found",
				domainerror.ErrPaymentMethodNotFound,
			)
		}
	}
	return nil
}

// buildDetail validates and assembles the detail variant for a type.
func buildDetail(expenditureID uuid.UUID, expType entity.ExpenditureType, input DetailInput) (entity.ExpenditureDetail, error) {
	switch expType {
	case entity.ExpenditureTypeRegular:
		if input.Amount == nil {
			return nil, missingDetail("REGULAR requires detail.amount")
		}
		var shareType *entity.ShareType
		if input.ShareType != nil {
			st := entity.ShareType(*input.ShareType)
			shareType = &st
		}
		return &entity.RegularDetail{
			ExpenditureID: expenditureID,
			Amount:        *input.Amount,
			IsShared:      input.IsShared,
			TotalAmount:   input.TotalAmount,
			ShareType:     shareType,
		}, nil

	case entity.ExpenditureTypeSubscription:
		if input.Amount == nil {
			return nil, missingDetail("SUBSCRIPTION requires detail.amount")
		}
		return &entity.SubscriptionDetail{
			ExpenditureID:      expenditureID,
			Amount:             *input.Amount,
			PlanName:           input.PlanName,
			ReminderDaysBefore: input.ReminderDaysBefore,
		}, nil

	case entity.ExpenditureTypeInstallment:
		if input.PrincipalAmount == nil || input.MonthlyPayment == nil || input.StartMonth == nil || input.TotalMonths == nil {
			return nil, missingDetail("INSTALLMENT requires detail.principalAmount, monthlyPayment, startMonth and totalMonths")
		}
		startMonth, err := valueobject.ParseMonth(*input.StartMonth)
		if err != nil {
			return nil, domainerror.NewExpenditureError(
				domainerror.ErrCodeInvalidMonthFormat,
				"startMonth must be in YYYY-MM format",
				domainerror.ErrInvalidMonthFormat,
			)
		}
		interestType := entity.InterestTypeNone
		if input.InterestType != nil {
			interestType = entity.InterestType(*input.InterestType)
		}
		return &entity.InstallmentDetail{
			ExpenditureID:   expenditureID,
			PrincipalAmount: *input.PrincipalAmount,
			MonthlyPayment:  *input.MonthlyPayment,
			StartMonth:      startMonth.Time(),
			TotalMonths:     *input.TotalMonths,
			InterestType:    interestType,
			InterestValue:   input.InterestValue,
		}, nil

	default:
		return nil, domainerror.NewExpenditureError(
			domainerror.ErrCodeInvalidExpenditureType,
			"unknown expenditure type",
			domainerror.ErrInvalidExpenditureType,
		)
	}
}

func missingDetail(message string) error {
	return domainerror.NewExpenditureError(
		domainerror.ErrCodeMissingDetailFields,
		message,
		domainerror.ErrMissingDetailFields,
	)
}
