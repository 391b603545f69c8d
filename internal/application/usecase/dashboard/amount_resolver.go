// Package dashboard contains aggregation use cases over a profile's expenditures.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// AmountResolver resolves the monthly amount an expenditure contributes,
// dispatching on its type: REGULAR and SUBSCRIPTION contribute their amount,
// INSTALLMENT contributes its monthly payment.
type AmountResolver struct {
	expenditureRepo adapter.ExpenditureRepository
	logger          *slog.Logger
}

// NewAmountResolver creates a new AmountResolver instance.
func NewAmountResolver(expenditureRepo adapter.ExpenditureRepository, logger *slog.Logger) *AmountResolver {
	return &AmountResolver{
		expenditureRepo: expenditureRepo,
		logger:          logger,
	}
}

// Resolve returns the monthly amount for an expenditure. An expenditure with
// no detail row resolves to zero rather than failing the whole aggregation;
// the inconsistency is logged so it can be repaired.
func (r *AmountResolver) Resolve(ctx context.Context, exp *entity.Expenditure) (decimal.Decimal, error) {
	detail, err := r.expenditureRepo.FindDetail(ctx, exp.ID, exp.Type)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load detail for expenditure %s: %w", exp.ID, err)
	}
	if detail == nil {
		r.logger.Warn("expenditure has no detail row, treating amount as zero",
			"expenditure_id", exp.ID,
			"type", exp.Type,
		)
		return decimal.Zero, nil
	}
	return detail.MonthlyAmount(), nil
}
