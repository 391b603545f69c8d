// Package backup contains snapshot export, restore and job tracking use cases.
package backup

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
)

// SnapshotVersion is the document format version written by this codec.
const SnapshotVersion = "1.0"

// SnapshotDocument is the on-disk form of a whole-store backup.
type SnapshotDocument struct {
	Version   string        `json:"version"`
	CreatedAt time.Time     `json:"createdAt"`
	Data      *SnapshotData `json:"data"`
}

// SnapshotData holds one array per persisted table. Absent arrays decode as
// empty; an absent data object entirely fails validation.
type SnapshotData struct {
	Profiles                       []profileRecord            `json:"profiles"`
	Categories                     []categoryRecord           `json:"categories"`
	PaymentMethods                 []paymentMethodRecord      `json:"paymentMethods"`
	Expenditures                   []expenditureRecord        `json:"expenditures"`
	ExpenditureDetailsRegular      []regularDetailRecord      `json:"expenditureDetailsRegular"`
	ExpenditureDetailsSubscription []subscriptionDetailRecord `json:"expenditureDetailsSubscription"`
	ExpenditureDetailsInstallment  []installmentDetailRecord  `json:"expenditureDetailsInstallment"`
	PaymentHistory                 []paymentHistoryRecord     `json:"paymentHistory"`
	StatusHistory                  []statusHistoryRecord      `json:"statusHistory"`
	Photos                         []photoRecord              `json:"photos"`
}

type profileRecord struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	Name         string    `json:"name"`
	CurrencyCode string    `json:"currencyCode"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type categoryRecord struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profileId"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"isDefault"`
	Icon      string    `json:"icon,omitempty"`
	Color     string    `json:"color,omitempty"`
}

type paymentMethodRecord struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profileId"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
}

type expenditureRecord struct {
	ID              uuid.UUID  `json:"id"`
	ProfileID       uuid.UUID  `json:"profileId"`
	CategoryID      uuid.UUID  `json:"categoryId"`
	PaymentMethodID *uuid.UUID `json:"paymentMethodId"`
	ItemName        string     `json:"itemName"`
	PaymentDay      int        `json:"paymentDay"`
	PaymentCycle    string     `json:"paymentCycle"`
	Type            string     `json:"type"`
	Memo            string     `json:"memo,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type regularDetailRecord struct {
	ExpenditureID uuid.UUID        `json:"expenditureId"`
	Amount        decimal.Decimal  `json:"amount"`
	IsShared      bool             `json:"isShared"`
	TotalAmount   *decimal.Decimal `json:"totalAmount"`
	ShareType     *string          `json:"shareType"`
}

type subscriptionDetailRecord struct {
	ExpenditureID      uuid.UUID       `json:"expenditureId"`
	Amount             decimal.Decimal `json:"amount"`
	PlanName           *string         `json:"planName"`
	ReminderDaysBefore int             `json:"reminderDaysBefore"`
}

type installmentDetailRecord struct {
	ExpenditureID   uuid.UUID        `json:"expenditureId"`
	PrincipalAmount decimal.Decimal  `json:"principalAmount"`
	MonthlyPayment  decimal.Decimal  `json:"monthlyPayment"`
	StartMonth      time.Time        `json:"startMonth"`
	TotalMonths     int              `json:"totalMonths"`
	InterestType    string           `json:"interestType"`
	InterestValue   *decimal.Decimal `json:"interestValue"`
}

type paymentHistoryRecord struct {
	ExpenditureID uuid.UUID  `json:"expenditureId"`
	PaymentMonth  time.Time  `json:"paymentMonth"`
	IsPaid        bool       `json:"isPaid"`
	PaidTimestamp *time.Time `json:"paidTimestamp"`
}

type statusHistoryRecord struct {
	ExpenditureID  uuid.UUID `json:"expenditureId"`
	Status         string    `json:"status"`
	EffectiveMonth time.Time `json:"effectiveMonth"`
}

type photoRecord struct {
	ID            uuid.UUID `json:"id"`
	ExpenditureID uuid.UUID `json:"expenditureId"`
	FilePath      string    `json:"filePath"`
	CreatedAt     time.Time `json:"createdAt"`
}

// EncodeSnapshot serializes a store snapshot into the versioned document
// format. The output is stable JSON suitable for download and later restore.
func EncodeSnapshot(snapshot *adapter.StoreSnapshot, createdAt time.Time) ([]byte, error) {
	data := &SnapshotData{
		Profiles:                       make([]profileRecord, 0, len(snapshot.Profiles)),
		Categories:                     make([]categoryRecord, 0, len(snapshot.Categories)),
		PaymentMethods:                 make([]paymentMethodRecord, 0, len(snapshot.PaymentMethods)),
		Expenditures:                   make([]expenditureRecord, 0, len(snapshot.Expenditures)),
		ExpenditureDetailsRegular:      make([]regularDetailRecord, 0, len(snapshot.RegularDetails)),
		ExpenditureDetailsSubscription: make([]subscriptionDetailRecord, 0, len(snapshot.SubscriptionDetails)),
		ExpenditureDetailsInstallment:  make([]installmentDetailRecord, 0, len(snapshot.InstallmentDetails)),
		PaymentHistory:                 make([]paymentHistoryRecord, 0, len(snapshot.PaymentHistory)),
		StatusHistory:                  make([]statusHistoryRecord, 0, len(snapshot.StatusHistory)),
		Photos:                         make([]photoRecord, 0, len(snapshot.Photos)),
	}

	for _, p := range snapshot.Profiles {
		data.Profiles = append(data.Profiles, profileRecord{
			ID: p.ID, UserID: p.UserID, Name: p.Name, CurrencyCode: p.CurrencyCode,
			CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
		})
	}
	for _, c := range snapshot.Categories {
		data.Categories = append(data.Categories, categoryRecord{
			ID: c.ID, ProfileID: c.ProfileID, Name: c.Name, IsDefault: c.IsDefault,
			Icon: c.Icon, Color: c.Color,
		})
	}
	for _, m := range snapshot.PaymentMethods {
		data.PaymentMethods = append(data.PaymentMethods, paymentMethodRecord{
			ID: m.ID, ProfileID: m.ProfileID, Name: m.Name, Type: m.Type,
		})
	}
	for _, e := range snapshot.Expenditures {
		data.Expenditures = append(data.Expenditures, expenditureRecord{
			ID: e.ID, ProfileID: e.ProfileID, CategoryID: e.CategoryID,
			PaymentMethodID: e.PaymentMethodID, ItemName: e.ItemName,
			PaymentDay: e.PaymentDay, PaymentCycle: e.PaymentCycle,
			Type: string(e.Type), Memo: e.Memo,
			CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
		})
	}
	for _, d := range snapshot.RegularDetails {
		var shareType *string
		if d.ShareType != nil {
			s := string(*d.ShareType)
			shareType = &s
		}
		data.ExpenditureDetailsRegular = append(data.ExpenditureDetailsRegular, regularDetailRecord{
			ExpenditureID: d.ExpenditureID, Amount: d.Amount, IsShared: d.IsShared,
			TotalAmount: d.TotalAmount, ShareType: shareType,
		})
	}
	for _, d := range snapshot.SubscriptionDetails {
		data.ExpenditureDetailsSubscription = append(data.ExpenditureDetailsSubscription, subscriptionDetailRecord{
			ExpenditureID: d.ExpenditureID, Amount: d.Amount,
			PlanName: d.PlanName, ReminderDaysBefore: d.ReminderDaysBefore,
		})
	}
	for _, d := range snapshot.InstallmentDetails {
		data.ExpenditureDetailsInstallment = append(data.ExpenditureDetailsInstallment, installmentDetailRecord{
			ExpenditureID: d.ExpenditureID, PrincipalAmount: d.PrincipalAmount,
			MonthlyPayment: d.MonthlyPayment, StartMonth: d.StartMonth,
			TotalMonths: d.TotalMonths, InterestType: string(d.InterestType),
			InterestValue: d.InterestValue,
		})
	}
	for _, r := range snapshot.PaymentHistory {
		data.PaymentHistory = append(data.PaymentHistory, paymentHistoryRecord{
			ExpenditureID: r.ExpenditureID, PaymentMonth: r.PaymentMonth,
			IsPaid: r.IsPaid, PaidTimestamp: r.PaidTimestamp,
		})
	}
	for _, s := range snapshot.StatusHistory {
		data.StatusHistory = append(data.StatusHistory, statusHistoryRecord{
			ExpenditureID: s.ExpenditureID, Status: string(s.Status),
			EffectiveMonth: s.EffectiveMonth,
		})
	}
	for _, p := range snapshot.Photos {
		data.Photos = append(data.Photos, photoRecord{
			ID: p.ID, ExpenditureID: p.ExpenditureID, FilePath: p.FilePath,
			CreatedAt: p.CreatedAt,
		})
	}

	doc := SnapshotDocument{
		Version:   SnapshotVersion,
		CreatedAt: createdAt,
		Data:      data,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeSnapshot parses and validates a backup document. A document without
// a data object is malformed; empty or absent arrays inside data are fine.
func DecodeSnapshot(raw []byte) (*adapter.StoreSnapshot, error) {
	var doc SnapshotDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeMalformedBackup,
			"backup file is not valid JSON",
			err,
		)
	}
	if doc.Data == nil {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeMalformedBackup,
			"backup file has no data section",
			domainerror.ErrMalformedBackup,
		)
	}

	data := doc.Data
	snapshot := &adapter.StoreSnapshot{}

	for _, r := range data.Profiles {
		snapshot.Profiles = append(snapshot.Profiles, &entity.Profile{
			ID: r.ID, UserID: r.UserID, Name: r.Name, CurrencyCode: r.CurrencyCode,
			CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		})
	}
	for _, r := range data.Categories {
		snapshot.Categories = append(snapshot.Categories, &entity.Category{
			ID: r.ID, ProfileID: r.ProfileID, Name: r.Name, IsDefault: r.IsDefault,
			Icon: r.Icon, Color: r.Color,
		})
	}
	for _, r := range data.PaymentMethods {
		snapshot.PaymentMethods = append(snapshot.PaymentMethods, &entity.PaymentMethod{
			ID: r.ID, ProfileID: r.ProfileID, Name: r.Name, Type: r.Type,
		})
	}
	for _, r := range data.Expenditures {
		snapshot.Expenditures = append(snapshot.Expenditures, &entity.Expenditure{
			ID: r.ID, ProfileID: r.ProfileID, CategoryID: r.CategoryID,
			PaymentMethodID: r.PaymentMethodID, ItemName: r.ItemName,
			PaymentDay: r.PaymentDay, PaymentCycle: r.PaymentCycle,
			Type: entity.ExpenditureType(r.Type), Memo: r.Memo,
			CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		})
	}
	for _, r := range data.ExpenditureDetailsRegular {
		var shareType *entity.ShareType
		if r.ShareType != nil {
			s := entity.ShareType(*r.ShareType)
			shareType = &s
		}
		snapshot.RegularDetails = append(snapshot.RegularDetails, &entity.RegularDetail{
			ExpenditureID: r.ExpenditureID, Amount: r.Amount, IsShared: r.IsShared,
			TotalAmount: r.TotalAmount, ShareType: shareType,
		})
	}
	for _, r := range data.ExpenditureDetailsSubscription {
		snapshot.SubscriptionDetails = append(snapshot.SubscriptionDetails, &entity.SubscriptionDetail{
			ExpenditureID: r.ExpenditureID, Amount: r.Amount,
			PlanName: r.PlanName, ReminderDaysBefore: r.ReminderDaysBefore,
		})
	}
	for _, r := range data.ExpenditureDetailsInstallment {
		snapshot.InstallmentDetails = append(snapshot.InstallmentDetails, &entity.InstallmentDetail{
			ExpenditureID: r.ExpenditureID, PrincipalAmount: r.PrincipalAmount,
			MonthlyPayment: r.MonthlyPayment, StartMonth: r.StartMonth,
			TotalMonths: r.TotalMonths, InterestType: entity.InterestType(r.InterestType),
			InterestValue: r.InterestValue,
		})
	}
	for _, r := range data.PaymentHistory {
		snapshot.PaymentHistory = append(snapshot.PaymentHistory, &entity.PaymentRecord{
			ExpenditureID: r.ExpenditureID, PaymentMonth: r.PaymentMonth,
			IsPaid: r.IsPaid, PaidTimestamp: r.PaidTimestamp,
		})
	}
	for _, r := range data.StatusHistory {
		snapshot.StatusHistory = append(snapshot.StatusHistory, &entity.StatusEntry{
			ExpenditureID: r.ExpenditureID, Status: entity.ExpenditureStatus(r.Status),
			EffectiveMonth: r.EffectiveMonth,
		})
	}
	for _, r := range data.Photos {
		snapshot.Photos = append(snapshot.Photos, &entity.Photo{
			ID: r.ID, ExpenditureID: r.ExpenditureID, FilePath: r.FilePath,
			CreatedAt: r.CreatedAt,
		})
	}

	return snapshot, nil
}
