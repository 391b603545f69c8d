package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
	"github.com/0Hoxy/fixedExpenses/internal/domain/valueobject"
)

// SeriesPoint is one month's total in a monthly report.
type SeriesPoint struct {
	Month valueobject.Month
	Total decimal.Decimal
}

// GetMonthlyReportInput represents the input for the monthly report query.
type GetMonthlyReportInput struct {
	ProfileID uuid.UUID
	FromMonth string // YYYY-MM, required
	ToMonth   string // YYYY-MM, required
}

// GetMonthlyReportOutput represents a month-by-month series plus a
// period-accumulated category breakdown.
type GetMonthlyReportOutput struct {
	Series     []SeriesPoint
	ByCategory []CategoryBreakdown
}

// GetMonthlyReportUseCase walks an inclusive month range and computes each
// month's total independently. The active set is recomputed per month since
// status can change anywhere in the range.
type GetMonthlyReportUseCase struct {
	profileRepo     adapter.ProfileRepository
	expenditureRepo adapter.ExpenditureRepository
	statusRepo      adapter.StatusHistoryRepository
	amountResolver  *AmountResolver
	dashboard       *GetDashboardUseCase
}

// NewGetMonthlyReportUseCase creates a new GetMonthlyReportUseCase instance.
func NewGetMonthlyReportUseCase(
	profileRepo adapter.ProfileRepository,
	expenditureRepo adapter.ExpenditureRepository,
	statusRepo adapter.StatusHistoryRepository,
	amountResolver *AmountResolver,
) *GetMonthlyReportUseCase {
	return &GetMonthlyReportUseCase{
		profileRepo:     profileRepo,
		expenditureRepo: expenditureRepo,
		statusRepo:      statusRepo,
		amountResolver:  amountResolver,
		dashboard: NewGetDashboardUseCase(
			profileRepo, expenditureRepo, statusRepo, amountResolver,
		),
	}
}

// Execute computes the monthly report over [FromMonth, ToMonth].
func (uc *GetMonthlyReportUseCase) Execute(ctx context.Context, input GetMonthlyReportInput) (*GetMonthlyReportOutput, error) {
	if input.FromMonth == "" {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingFromMonth,
			"from parameter is required (YYYY-MM)",
			domainerror.ErrMissingFromMonth,
		)
	}
	if input.ToMonth == "" {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingToMonth,
			"to parameter is required (YYYY-MM)",
			domainerror.ErrMissingToMonth,
		)
	}

	from, err := valueobject.ParseMonth(input.FromMonth)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportInvalidMonth,
			"from must be in YYYY-MM format",
			err,
		)
	}
	to, err := valueobject.ParseMonth(input.ToMonth)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportInvalidMonth,
			"to must be in YYYY-MM format",
			err,
		)
	}
	if from.After(to) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthRange,
			"from month must not be after to month",
			domainerror.ErrInvalidMonthRange,
		)
	}

	exists, err := uc.profileRepo.ExistsByID(ctx, input.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to check profile existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportProfileNotFound,
			"profile not found",
			domainerror.ErrProfileNotFound,
		)
	}

	expenditures, err := uc.expenditureRepo.FindByProfile(ctx, input.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenditures: %w", err)
	}

	series := make([]SeriesPoint, 0)
	categoryTotals := make(map[uuid.UUID]*CategoryBreakdown)
	categoryOrder := make([]uuid.UUID, 0)

	for month := from; !month.After(to); month = month.Next() {
		active, err := uc.dashboard.activeSet(ctx, expenditures, month)
		if err != nil {
			return nil, err
		}

		monthTotal := decimal.Zero
		for _, exp := range active {
			amount, err := uc.amountResolver.Resolve(ctx, exp.Expenditure)
			if err != nil {
				return nil, err
			}
			monthTotal = monthTotal.Add(amount)

			entry, ok := categoryTotals[exp.Expenditure.CategoryID]
			if !ok {
				entry = &CategoryBreakdown{
					CategoryID: exp.Expenditure.CategoryID,
					Name:       exp.Category.Name,
					Amount:     decimal.Zero,
				}
				categoryTotals[exp.Expenditure.CategoryID] = entry
				categoryOrder = append(categoryOrder, exp.Expenditure.CategoryID)
			}
			entry.Amount = entry.Amount.Add(amount)
		}

		series = append(series, SeriesPoint{Month: month, Total: monthTotal})
	}

	byCategory := make([]CategoryBreakdown, 0, len(categoryOrder))
	for _, id := range categoryOrder {
		byCategory = append(byCategory, *categoryTotals[id])
	}
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].Amount.GreaterThan(byCategory[j].Amount)
	})

	return &GetMonthlyReportOutput{
		Series:     series,
		ByCategory: byCategory,
	}, nil
}
