package expenditure

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func (f *fakeProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	return f.profiles[id], nil
}

func (f *fakeProfileRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.profiles[id]
	return ok, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.categories[id]
	return ok, nil
}

type fakePaymentMethodRepo struct {
	methods map[uuid.UUID]*entity.PaymentMethod
}

func (f *fakePaymentMethodRepo) Create(_ context.Context, m *entity.PaymentMethod) error {
	f.methods[m.ID] = m
	return nil
}

func (f *fakePaymentMethodRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.methods[id]
	return ok, nil
}

// createdRecord captures what the fake expenditure repo was asked to create.
type createdRecord struct {
	expenditure   *entity.Expenditure
	detail        entity.ExpenditureDetail
	initialStatus *entity.StatusEntry
}

type fakeExpenditureRepo struct {
	expenditures map[uuid.UUID]*entity.Expenditure
	details      map[uuid.UUID]entity.ExpenditureDetail
	created      []createdRecord
	deleted      []uuid.UUID
}

func newFakeExpenditureRepo() *fakeExpenditureRepo {
	return &fakeExpenditureRepo{
		expenditures: make(map[uuid.UUID]*entity.Expenditure),
		details:      make(map[uuid.UUID]entity.ExpenditureDetail),
	}
}

func (f *fakeExpenditureRepo) Create(_ context.Context, exp *entity.Expenditure, detail entity.ExpenditureDetail, initialStatus *entity.StatusEntry) error {
	f.expenditures[exp.ID] = exp
	f.details[exp.ID] = detail
	f.created = append(f.created, createdRecord{exp, detail, initialStatus})
	return nil
}

func (f *fakeExpenditureRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expenditure, error) {
	return f.expenditures[id], nil
}

func (f *fakeExpenditureRepo) FindByProfile(_ context.Context, profileID uuid.UUID) ([]*entity.ExpenditureWithCategory, error) {
	var result []*entity.ExpenditureWithCategory
	for _, exp := range f.expenditures {
		if exp.ProfileID == profileID {
			result = append(result, &entity.ExpenditureWithCategory{Expenditure: exp})
		}
	}
	return result, nil
}

func (f *fakeExpenditureRepo) FindDetail(_ context.Context, id uuid.UUID, _ entity.ExpenditureType) (entity.ExpenditureDetail, error) {
	return f.details[id], nil
}

func (f *fakeExpenditureRepo) Update(_ context.Context, exp *entity.Expenditure) error {
	f.expenditures[exp.ID] = exp
	return nil
}

func (f *fakeExpenditureRepo) UpdateDetail(_ context.Context, detail entity.ExpenditureDetail) error {
	switch d := detail.(type) {
	case *entity.RegularDetail:
		f.details[d.ExpenditureID] = d
	case *entity.SubscriptionDetail:
		f.details[d.ExpenditureID] = d
	case *entity.InstallmentDetail:
		f.details[d.ExpenditureID] = d
	}
	return nil
}

func (f *fakeExpenditureRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.expenditures, id)
	delete(f.details, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeExpenditureRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.expenditures[id]
	return ok, nil
}

func (f *fakeExpenditureRepo) FindSubscriptionsDueForReminder(_ context.Context, _ time.Time) ([]*adapter.SubscriptionReminder, error) {
	return nil, nil
}

type fakePaymentRepo struct {
	records map[uuid.UUID]map[time.Time]*entity.PaymentRecord
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{records: make(map[uuid.UUID]map[time.Time]*entity.PaymentRecord)}
}

func (f *fakePaymentRepo) Upsert(_ context.Context, record *entity.PaymentRecord) error {
	byMonth, ok := f.records[record.ExpenditureID]
	if !ok {
		byMonth = make(map[time.Time]*entity.PaymentRecord)
		f.records[record.ExpenditureID] = byMonth
	}
	byMonth[record.PaymentMonth] = record
	return nil
}

func (f *fakePaymentRepo) FindByExpenditureAndMonth(_ context.Context, expenditureID uuid.UUID, month time.Time) (*entity.PaymentRecord, error) {
	return f.records[expenditureID][month], nil
}

// harness bundles the fakes with a seeded profile and category.
type harness struct {
	profileRepo       *fakeProfileRepo
	categoryRepo      *fakeCategoryRepo
	paymentMethodRepo *fakePaymentMethodRepo
	expRepo           *fakeExpenditureRepo
	paymentRepo       *fakePaymentRepo

	profileID  uuid.UUID
	categoryID uuid.UUID
}

func newHarness() *harness {
	h := &harness{
		profileRepo:       &fakeProfileRepo{profiles: make(map[uuid.UUID]*entity.Profile)},
		categoryRepo:      &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)},
		paymentMethodRepo: &fakePaymentMethodRepo{methods: make(map[uuid.UUID]*entity.PaymentMethod)},
		expRepo:           newFakeExpenditureRepo(),
		paymentRepo:       newFakePaymentRepo(),
	}
	profile := entity.NewProfile(uuid.New(), "tester", "")
	h.profileRepo.profiles[profile.ID] = profile
	h.profileID = profile.ID

	category := entity.NewCategory(profile.ID, "Housing", "", "", false)
	h.categoryRepo.categories[category.ID] = category
	h.categoryID = category.ID
	return h
}
