// Package status contains status history use cases.
package status

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

// SetStatusInput represents the input for recording a status change.
type SetStatusInput struct {
	ExpenditureID  uuid.UUID
	EffectiveMonth string // YYYY-MM or YYYY-MM-01
	Status         string
}

// SetStatusOutput represents the output of recording a status change.
type SetStatusOutput struct {
	Entry *entity.StatusEntry
}

// SetStatusUseCase handles status history writes.
type SetStatusUseCase struct {
	expenditureRepo adapter.ExpenditureRepository
	statusRepo      adapter.StatusHistoryRepository
}

// NewSetStatusUseCase creates a new SetStatusUseCase instance.
func NewSetStatusUseCase(
	expenditureRepo adapter.ExpenditureRepository,
	statusRepo adapter.StatusHistoryRepository,
) *SetStatusUseCase {
	return &SetStatusUseCase{
		expenditureRepo: expenditureRepo,
		statusRepo:      statusRepo,
	}
}

// Execute records a status for an expenditure effective from a given month.
// Writing the same (expenditure, month) pair again overwrites the earlier
// status, so repeated identical calls are idempotent.
func (uc *SetStatusUseCase) Execute(ctx context.Context, input SetStatusInput) (*SetStatusOutput, error) {
	month, err := parseEffectiveMonth(input.EffectiveMonth)
	if err != nil {
		return nil, domainerror.NewExpenditureError(
			domainerror.ErrCodeInvalidMonthFormat,
			"effectiveMonth must be YYYY-MM or the first of a month (YYYY-MM-01)",
			domainerror.ErrInvalidMonthFormat,
		)
	}

	status := entity.ExpenditureStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerror.NewExpenditureError(
			domainerror.ErrCodeInvalidStatusValue,
			"status must be 'active' or 'paused'",
			domainerror.ErrInvalidStatusValue,
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

	entry := &entity.StatusEntry{
		ExpenditureID:  input.ExpenditureID,
		Status:         status,
		EffectiveMonth: month.Time(),
	}

	if err := uc.statusRepo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to upsert status entry: %w", err)
	}

	return &SetStatusOutput{Entry: entry}, nil
}

// parseEffectiveMonth accepts the month either as YYYY-MM or as a full date
// pinned to the first of the month (YYYY-MM-01), the form older clients send.
func parseEffectiveMonth(s string) (valueobject.Month, error) {
	if month, err := valueobject.ParseMonth(s); err == nil {
		return month, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return valueobject.Month{}, err
	}
	if t.Day() != 1 {
		return valueobject.Month{}, fmt.Errorf("effective month date must be the first of the month, got %q", s)
	}
	return valueobject.MonthOf(t), nil
}
