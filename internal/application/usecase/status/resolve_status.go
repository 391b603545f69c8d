package status

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	"github.com/0Hoxy/fixedExpenses/internal/domain/valueobject"
)

// Resolution is the outcome of resolving an expenditure's status for a month.
type Resolution string

const (
	// ResolutionActive means the latest entry at or before the target month is active.
	ResolutionActive Resolution = "active"
	// ResolutionPaused means the latest entry at or before the target month is paused.
	ResolutionPaused Resolution = "paused"
	// ResolutionUndefined means no entry exists at or before the target month.
	ResolutionUndefined Resolution = "undefined"
)

// ResolutionOf maps a status entry to its resolution. A nil entry means the
// expenditure had no recorded status at or before the target month.
func ResolutionOf(entry *entity.StatusEntry) Resolution {
	if entry == nil {
		return ResolutionUndefined
	}
	if entry.Status == entity.StatusPaused {
		return ResolutionPaused
	}
	return ResolutionActive
}

// ResolveStatusInput represents the input for resolving a status.
type ResolveStatusInput struct {
	ExpenditureID uuid.UUID
	TargetMonth   valueobject.Month
}

// ResolveStatusOutput represents the output of resolving a status.
type ResolveStatusOutput struct {
	Resolution Resolution
	Entry      *entity.StatusEntry // nil when undefined
}

// ResolveStatusUseCase answers "what was this expenditure's status in month M".
// The entry with the greatest effectiveMonth not after M wins; entries
// effective after M never influence the answer.
type ResolveStatusUseCase struct {
	statusRepo adapter.StatusHistoryRepository
}

// NewResolveStatusUseCase creates a new ResolveStatusUseCase instance.
func NewResolveStatusUseCase(statusRepo adapter.StatusHistoryRepository) *ResolveStatusUseCase {
	return &ResolveStatusUseCase{statusRepo: statusRepo}
}

// Execute resolves the effective status of an expenditure for a target month.
func (uc *ResolveStatusUseCase) Execute(ctx context.Context, input ResolveStatusInput) (*ResolveStatusOutput, error) {
	entry, err := uc.statusRepo.FindEffective(ctx, input.ExpenditureID, input.TargetMonth.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve status: %w", err)
	}

	return &ResolveStatusOutput{
		Resolution: ResolutionOf(entry),
		Entry:      entry,
	}, nil
}
