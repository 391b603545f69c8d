package expenditure

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
)

// DeleteExpenditureInput represents the input for expenditure deletion.
type DeleteExpenditureInput struct {
	ExpenditureID uuid.UUID
}

// DeleteExpenditureUseCase handles expenditure deletion. The detail, status
// history, payment history and photos are removed with it.
type DeleteExpenditureUseCase struct {
	expenditureRepo adapter.ExpenditureRepository
}

// NewDeleteExpenditureUseCase creates a new DeleteExpenditureUseCase instance.
func NewDeleteExpenditureUseCase(expenditureRepo adapter.ExpenditureRepository) *DeleteExpenditureUseCase {
	return &DeleteExpenditureUseCase{expenditureRepo: expenditureRepo}
}

// Execute performs the deletion.
func (uc *DeleteExpenditureUseCase) Execute(ctx context.Context, input DeleteExpenditureInput) error {
	exists, err := uc.expenditureRepo.ExistsByID(ctx, input.ExpenditureID)
	if err != nil {
		return fmt.Errorf("failed to check expenditure existence: %w", err)
	}
	if !exists {
		return domainerror.NewExpenditureError(
			domainerror.ErrCodeExpenditureNotFound,
			"expenditure not found",
			domainerror.ErrExpenditureNotFound,
		)
	}

	if err := uc.expenditureRepo.Delete(ctx, input.ExpenditureID); err != nil {
		return fmt.Errorf("failed to delete expenditure: %w", err)
	}
	return nil
}
