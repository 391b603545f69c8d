package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
	"github.com/0Hoxy/fixedExpenses/internal/domain/valueobject"
)

// UpcomingPayment describes the next payment due across a profile's active
// expenditures.
type UpcomingPayment struct {
	ExpenditureID uuid.UUID
	ItemName      string
	DueDate       time.Time
	Amount        decimal.Decimal
	DaysUntil     int
}

// CategoryBreakdown is one category's share of a month's total.
type CategoryBreakdown struct {
	CategoryID uuid.UUID
	Name       string
	Amount     decimal.Decimal
	Ratio      float64
}

// GetDashboardInput represents the input for the dashboard query.
type GetDashboardInput struct {
	ProfileID uuid.UUID
	Month     string    // YYYY-MM, defaults to the current month when empty
	Today     time.Time // Zero value means time.Now
}

// GetDashboardOutput represents the aggregated dashboard data for one month.
type GetDashboardOutput struct {
	Month          valueobject.Month
	MonthTotal     decimal.Decimal
	LastMonthTotal decimal.Decimal
	DeltaMessage   string
	Upcoming       *UpcomingPayment // nil when no active expenditure exists
	ByCategory     []CategoryBreakdown
}

// GetDashboardUseCase aggregates a profile's expenditures into month totals,
// a month-over-month delta, the next upcoming payment and a per-category
// breakdown.
type GetDashboardUseCase struct {
	profileRepo     adapter.ProfileRepository
	expenditureRepo adapter.ExpenditureRepository
	statusRepo      adapter.StatusHistoryRepository
	amountResolver  *AmountResolver
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	profileRepo adapter.ProfileRepository,
	expenditureRepo adapter.ExpenditureRepository,
	statusRepo adapter.StatusHistoryRepository,
	amountResolver *AmountResolver,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		profileRepo:     profileRepo,
		expenditureRepo: expenditureRepo,
		statusRepo:      statusRepo,
		amountResolver:  amountResolver,
	}
}

// Execute computes the dashboard for a profile and month.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	today := input.Today
	if today.IsZero() {
		today = time.Now().UTC()
	}

	month := valueobject.MonthOf(today)
	if input.Month != "" {
		parsed, err := valueobject.ParseMonth(input.Month)
		if err != nil {
			return nil, domainerror.NewExpenditureError(
				domainerror.ErrCodeInvalidMonthFormat,
				"month must be in YYYY-MM format",
				domainerror.ErrInvalidMonthFormat,
			)
		}
		month = parsed
	}

	exists, err := uc.profileRepo.ExistsByID(ctx, input.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to check profile existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewExpenditureError(
			domainerror.ErrCodeProfileNotFound,
			"profile not found",
			domainerror.ErrProfileNotFound,
		)
	}

	expenditures, err := uc.expenditureRepo.FindByProfile(ctx, input.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenditures: %w", err)
	}

	currentActive, err := uc.activeSet(ctx, expenditures, month)
	if err != nil {
		return nil, err
	}
	previousActive, err := uc.activeSet(ctx, expenditures, month.Prev())
	if err != nil {
		return nil, err
	}

	monthTotal, err := uc.sumMonthly(ctx, currentActive)
	if err != nil {
		return nil, err
	}
	lastMonthTotal, err := uc.sumMonthly(ctx, previousActive)
	if err != nil {
		return nil, err
	}

	upcoming, err := uc.upcomingPayment(ctx, currentActive, today)
	if err != nil {
		return nil, err
	}

	byCategory, err := uc.categoryBreakdown(ctx, currentActive, monthTotal)
	if err != nil {
		return nil, err
	}

	return &GetDashboardOutput{
		Month:          month,
		MonthTotal:     monthTotal,
		LastMonthTotal: lastMonthTotal,
		DeltaMessage:   FormatDeltaMessage(monthTotal, lastMonthTotal),
		Upcoming:       upcoming,
		ByCategory:     byCategory,
	}, nil
}

// activeSet filters to expenditures whose resolved status for the target
// month is active. The latest status entry at or before the month decides;
// expenditures with no entry at or before it are excluded.
func (uc *GetDashboardUseCase) activeSet(
	ctx context.Context,
	expenditures []*entity.ExpenditureWithCategory,
	month valueobject.Month,
) ([]*entity.ExpenditureWithCategory, error) {
	active := make([]*entity.ExpenditureWithCategory, 0, len(expenditures))
	for _, exp := range expenditures {
		entry, err := uc.statusRepo.FindEffective(ctx, exp.Expenditure.ID, month.Time())
		if err != nil {
			return nil, fmt.Errorf("failed to resolve status for expenditure %s: %w", exp.Expenditure.ID, err)
		}
		if entry != nil && entry.Status == entity.StatusActive {
			active = append(active, exp)
		}
	}
	return active, nil
}

func (uc *GetDashboardUseCase) sumMonthly(ctx context.Context, expenditures []*entity.ExpenditureWithCategory) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, exp := range expenditures {
		amount, err := uc.amountResolver.Resolve(ctx, exp.Expenditure)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(amount)
	}
	return total, nil
}

// upcomingPayment finds the active expenditure whose next paymentDay
// occurrence is soonest on or after today, wrapping into the next month when
// the day has already passed. Ties go to the first expenditure seen. Returns
// nil when there are no active expenditures.
func (uc *GetDashboardUseCase) upcomingPayment(
	ctx context.Context,
	expenditures []*entity.ExpenditureWithCategory,
	today time.Time,
) (*UpcomingPayment, error) {
	startOfDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	currentDay := today.Day()

	var upcoming *UpcomingPayment
	for _, exp := range expenditures {
		e := exp.Expenditure

		var dueDate time.Time
		if e.PaymentDay >= currentDay {
			dueDate = time.Date(today.Year(), today.Month(), e.PaymentDay, 0, 0, 0, 0, time.UTC)
		} else {
			dueDate = time.Date(today.Year(), today.Month()+1, e.PaymentDay, 0, 0, 0, 0, time.UTC)
		}
		daysUntil := int(dueDate.Sub(startOfDay).Hours() / 24)

		if upcoming != nil && daysUntil >= upcoming.DaysUntil {
			continue
		}

		amount, err := uc.amountResolver.Resolve(ctx, e)
		if err != nil {
			return nil, err
		}
		upcoming = &UpcomingPayment{
			ExpenditureID: e.ID,
			ItemName:      e.ItemName,
			DueDate:       dueDate,
			Amount:        amount,
			DaysUntil:     daysUntil,
		}
	}
	return upcoming, nil
}

// categoryBreakdown groups active expenditures by category, sums their
// monthly amounts and sorts descending by amount. Ratios are zero when the
// month total is zero.
func (uc *GetDashboardUseCase) categoryBreakdown(
	ctx context.Context,
	expenditures []*entity.ExpenditureWithCategory,
	monthTotal decimal.Decimal,
) ([]CategoryBreakdown, error) {
	totals := make(map[uuid.UUID]*CategoryBreakdown)
	order := make([]uuid.UUID, 0)

	for _, exp := range expenditures {
		amount, err := uc.amountResolver.Resolve(ctx, exp.Expenditure)
		if err != nil {
			return nil, err
		}

		entry, ok := totals[exp.Expenditure.CategoryID]
		if !ok {
			entry = &CategoryBreakdown{
				CategoryID: exp.Expenditure.CategoryID,
				Name:       exp.Category.Name,
				Amount:     decimal.Zero,
			}
			totals[exp.Expenditure.CategoryID] = entry
			order = append(order, exp.Expenditure.CategoryID)
		}
		entry.Amount = entry.Amount.Add(amount)
	}

	result := make([]CategoryBreakdown, 0, len(order))
	for _, id := range order {
		entry := totals[id]
		if monthTotal.IsPositive() {
			entry.Ratio, _ = entry.Amount.Div(monthTotal).Float64()
		}
		result = append(result, *entry)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount.GreaterThan(result[j].Amount)
	})
	return result, nil
}
