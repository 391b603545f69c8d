package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	"github.com/0Hoxy/fixedExpenses/internal/domain/valueobject"
)

// fakeProfileRepo is an in-memory ProfileRepository for unit tests.
type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*entity.Profile)}
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *entity.Profile) error {
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	return f.profiles[id], nil
}

func (f *fakeProfileRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.profiles[id]
	return ok, nil
}

// fakeExpenditureRepo is an in-memory ExpenditureRepository for unit tests.
type fakeExpenditureRepo struct {
	byProfile map[uuid.UUID][]*entity.ExpenditureWithCategory
	details   map[uuid.UUID]entity.ExpenditureDetail
}

func newFakeExpenditureRepo() *fakeExpenditureRepo {
	return &fakeExpenditureRepo{
		byProfile: make(map[uuid.UUID][]*entity.ExpenditureWithCategory),
		details:   make(map[uuid.UUID]entity.ExpenditureDetail),
	}
}

func (f *fakeExpenditureRepo) Create(_ context.Context, expenditure *entity.Expenditure, detail entity.ExpenditureDetail, _ *entity.StatusEntry) error {
	f.details[expenditure.ID] = detail
	return nil
}

func (f *fakeExpenditureRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expenditure, error) {
	for _, exps := range f.byProfile {
		for _, exp := range exps {
			if exp.Expenditure.ID == id {
				return exp.Expenditure, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeExpenditureRepo) FindByProfile(_ context.Context, profileID uuid.UUID) ([]*entity.ExpenditureWithCategory, error) {
	return f.byProfile[profileID], nil
}

func (f *fakeExpenditureRepo) FindDetail(_ context.Context, id uuid.UUID, _ entity.ExpenditureType) (entity.ExpenditureDetail, error) {
	return f.details[id], nil
}

func (f *fakeExpenditureRepo) Update(_ context.Context, _ *entity.Expenditure) error { return nil }

func (f *fakeExpenditureRepo) UpdateDetail(_ context.Context, _ entity.ExpenditureDetail) error {
	return nil
}

func (f *fakeExpenditureRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeExpenditureRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	exp, _ := f.FindByID(context.Background(), id)
	return exp != nil, nil
}

func (f *fakeExpenditureRepo) FindSubscriptionsDueForReminder(_ context.Context, _ time.Time) ([]*adapter.SubscriptionReminder, error) {
	return nil, nil
}

// fakeStatusRepo is an in-memory StatusHistoryRepository for unit tests. It
// mirrors the real resolution rule: greatest effectiveMonth not after the
// target wins.
type fakeStatusRepo struct {
	entries map[uuid.UUID][]*entity.StatusEntry
}

func newFakeStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{entries: make(map[uuid.UUID][]*entity.StatusEntry)}
}

func (f *fakeStatusRepo) Upsert(_ context.Context, entry *entity.StatusEntry) error {
	existing := f.entries[entry.ExpenditureID]
	for i, e := range existing {
		if e.EffectiveMonth.Equal(entry.EffectiveMonth) {
			existing[i] = entry
			return nil
		}
	}
	f.entries[entry.ExpenditureID] = append(existing, entry)
	return nil
}

func (f *fakeStatusRepo) FindEffective(_ context.Context, expenditureID uuid.UUID, targetMonth time.Time) (*entity.StatusEntry, error) {
	var best *entity.StatusEntry
	for _, e := range f.entries[expenditureID] {
		if e.EffectiveMonth.After(targetMonth) {
			continue
		}
		if best == nil || e.EffectiveMonth.After(best.EffectiveMonth) {
			best = e
		}
	}
	return best, nil
}

func (f *fakeStatusRepo) FindByExpenditure(_ context.Context, expenditureID uuid.UUID) ([]*entity.StatusEntry, error) {
	return f.entries[expenditureID], nil
}

// fixture wires the fakes into the use cases under test.
type fixture struct {
	profileRepo *fakeProfileRepo
	expRepo     *fakeExpenditureRepo
	statusRepo  *fakeStatusRepo
	profileID   uuid.UUID
	categories  map[string]*entity.Category
}

func newFixture() *fixture {
	f := &fixture{
		profileRepo: newFakeProfileRepo(),
		expRepo:     newFakeExpenditureRepo(),
		statusRepo:  newFakeStatusRepo(),
		categories:  make(map[string]*entity.Category),
	}
	profile := entity.NewProfile(uuid.New(), "tester", entity.DefaultCurrencyCode)
	f.profileRepo.profiles[profile.ID] = profile
	f.profileID = profile.ID
	return f
}

func (f *fixture) dashboardUseCase() *GetDashboardUseCase {
	resolver := NewAmountResolver(f.expRepo, slog.Default())
	return NewGetDashboardUseCase(f.profileRepo, f.expRepo, f.statusRepo, resolver)
}

func (f *fixture) reportUseCase() *GetMonthlyReportUseCase {
	resolver := NewAmountResolver(f.expRepo, slog.Default())
	return NewGetMonthlyReportUseCase(f.profileRepo, f.expRepo, f.statusRepo, resolver)
}

// addRegular registers a regular expenditure with an amount, a category and
// an active status effective from the given month.
func (f *fixture) addRegular(name string, categoryName string, amount int64, activeFrom string, paymentDay int) *entity.Expenditure {
	category := f.category(categoryName)
	exp := entity.NewExpenditure(
		f.profileID, category.ID, nil, name, paymentDay, "monthly",
		entity.ExpenditureTypeRegular, "",
	)
	f.expRepo.byProfile[f.profileID] = append(f.expRepo.byProfile[f.profileID], &entity.ExpenditureWithCategory{
		Expenditure: exp,
		Category:    category,
	})
	f.expRepo.details[exp.ID] = &entity.RegularDetail{
		ExpenditureID: exp.ID,
		Amount:        decimal.NewFromInt(amount),
	}
	if activeFrom != "" {
		f.setStatus(exp.ID, activeFrom, entity.StatusActive)
	}
	return exp
}

// category returns the fixture's category for a name, creating it once.
// Expenditures added under the same name share one category ID, which the
// breakdown grouping depends on.
func (f *fixture) category(name string) *entity.Category {
	if c, ok := f.categories[name]; ok {
		return c
	}
	c := entity.NewCategory(f.profileID, name, "", "", false)
	f.categories[name] = c
	return c
}

func (f *fixture) setStatus(expenditureID uuid.UUID, month string, status entity.ExpenditureStatus) {
	m, err := valueobject.ParseMonth(month)
	if err != nil {
		panic(err)
	}
	_ = f.statusRepo.Upsert(context.Background(), &entity.StatusEntry{
		ExpenditureID:  expenditureID,
		Status:         status,
		EffectiveMonth: m.Time(),
	})
}
