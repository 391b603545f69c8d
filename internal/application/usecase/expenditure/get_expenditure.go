package expenditure

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
)

// GetExpenditureInput represents the input for fetching one expenditure.
type GetExpenditureInput struct {
	ExpenditureID uuid.UUID
}

// GetExpenditureOutput represents an expenditure with its detail, category
// and most recent status entry.
type GetExpenditureOutput struct {
	Expenditure  *entity.Expenditure
	Category     *entity.Category
	Detail       entity.ExpenditureDetail // nil when the detail row is missing
	LatestStatus *entity.StatusEntry      // nil when no status was ever recorded
}

// GetExpenditureUseCase handles single-expenditure reads.
type GetExpenditureUseCase struct {
	expenditureRepo adapter.ExpenditureRepository
	categoryRepo    adapter.CategoryRepository
	statusRepo      adapter.StatusHistoryRepository
}

// NewGetExpenditureUseCase creates a new GetExpenditureUseCase instance.
func NewGetExpenditureUseCase(
	expenditureRepo adapter.ExpenditureRepository,
	categoryRepo adapter.CategoryRepository,
	statusRepo adapter.StatusHistoryRepository,
) *GetExpenditureUseCase {
	return &GetExpenditureUseCase{
		expenditureRepo: expenditureRepo,
		categoryRepo:    categoryRepo,
		statusRepo:      statusRepo,
	}
}

// Execute fetches one expenditure with its detail and latest status.
func (uc *GetExpenditureUseCase) Execute(ctx context.Context, input GetExpenditureInput) (*GetExpenditureOutput, error) {
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

	detail, err := uc.expenditureRepo.FindDetail(ctx, exp.ID, exp.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to load detail: %w", err)
	}

	category, err := uc.categoryRepo.FindByID(ctx, exp.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	entries, err := uc.statusRepo.FindByExpenditure(ctx, exp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load status history: %w", err)
	}
	var latest *entity.StatusEntry
	for _, entry := range entries {
		if latest == nil || entry.EffectiveMonth.After(latest.EffectiveMonth) {
			latest = entry
		}
	}

	return &GetExpenditureOutput{
		Expenditure:  exp,
		Category:     category,
		Detail:       detail,
		LatestStatus: latest,
	}, nil
}
