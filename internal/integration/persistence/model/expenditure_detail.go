package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// RegularDetailModel represents the expenditure_details_regular table.
type RegularDetailModel struct {
	ExpenditureID uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Amount        decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	IsShared      bool             `gorm:"not null;default:false"`
	TotalAmount   *decimal.Decimal `gorm:"type:numeric(14,2)"`
	ShareType     *string          `gorm:"type:varchar(10)"`
}

// TableName returns the table name for the RegularDetailModel.
func (RegularDetailModel) TableName() string {
	return "expenditure_details_regular"
}

// ToEntity converts a RegularDetailModel to a domain RegularDetail entity.
func (m *RegularDetailModel) ToEntity() *entity.RegularDetail {
	var shareType *entity.ShareType
	if m.ShareType != nil {
		s := entity.ShareType(*m.ShareType)
		shareType = &s
	}
	return &entity.RegularDetail{
		ExpenditureID: m.ExpenditureID,
		Amount:        m.Amount,
		IsShared:      m.IsShared,
		TotalAmount:   m.TotalAmount,
		ShareType:     shareType,
	}
}

// RegularDetailFromEntity creates a RegularDetailModel from a domain entity.
func RegularDetailFromEntity(d *entity.RegularDetail) *RegularDetailModel {
	var shareType *string
	if d.ShareType != nil {
		s := string(*d.ShareType)
		shareType = &s
	}
	return &RegularDetailModel{
		ExpenditureID: d.ExpenditureID,
		Amount:        d.Amount,
		IsShared:      d.IsShared,
		TotalAmount:   d.TotalAmount,
		ShareType:     shareType,
	}
}

// SubscriptionDetailModel represents the expenditure_details_subscription table.
type SubscriptionDetailModel struct {
	ExpenditureID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PlanName           *string         `gorm:"type:varchar(100)"`
	ReminderDaysBefore int             `gorm:"not null;default:0"`
}

// TableName returns the table name for the SubscriptionDetailModel.
func (SubscriptionDetailModel) TableName() string {
	return "expenditure_details_subscription"
}

// ToEntity converts a SubscriptionDetailModel to a domain SubscriptionDetail entity.
func (m *SubscriptionDetailModel) ToEntity() *entity.SubscriptionDetail {
	return &entity.SubscriptionDetail{
		ExpenditureID:      m.ExpenditureID,
		Amount:             m.Amount,
		PlanName:           m.PlanName,
		ReminderDaysBefore: m.ReminderDaysBefore,
	}
}

// SubscriptionDetailFromEntity creates a SubscriptionDetailModel from a domain entity.
func SubscriptionDetailFromEntity(d *entity.SubscriptionDetail) *SubscriptionDetailModel {
	return &SubscriptionDetailModel{
		ExpenditureID:      d.ExpenditureID,
		Amount:             d.Amount,
		PlanName:           d.PlanName,
		ReminderDaysBefore: d.ReminderDaysBefore,
	}
}

// InstallmentDetailModel represents the expenditure_details_installment table.
type InstallmentDetailModel struct {
	ExpenditureID   uuid.UUID        `gorm:"type:uuid;primaryKey"`
	PrincipalAmount decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	MonthlyPayment  decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	StartMonth      time.Time        `gorm:"not null"`
	TotalMonths     int              `gorm:"not null"`
	InterestType    string           `gorm:"type:varchar(10);not null;default:'none'"`
	InterestValue   *decimal.Decimal `gorm:"type:numeric(8,3)"`
}

// TableName returns the table name for the InstallmentDetailModel.
func (InstallmentDetailModel) TableName() string {
	return "expenditure_details_installment"
}

// ToEntity converts an InstallmentDetailModel to a domain InstallmentDetail entity.
func (m *InstallmentDetailModel) ToEntity() *entity.InstallmentDetail {
	return &entity.InstallmentDetail{
		ExpenditureID:   m.ExpenditureID,
		PrincipalAmount: m.PrincipalAmount,
		MonthlyPayment:  m.MonthlyPayment,
		StartMonth:      m.StartMonth,
		TotalMonths:     m.TotalMonths,
		InterestType:    entity.InterestType(m.InterestType),
		InterestValue:   m.InterestValue,
	}
}

// InstallmentDetailFromEntity creates an InstallmentDetailModel from a domain entity.
func InstallmentDetailFromEntity(d *entity.InstallmentDetail) *InstallmentDetailModel {
	return &InstallmentDetailModel{
		ExpenditureID:   d.ExpenditureID,
		PrincipalAmount: d.PrincipalAmount,
		MonthlyPayment:  d.MonthlyPayment,
		StartMonth:      d.StartMonth,
		TotalMonths:     d.TotalMonths,
		InterestType:    string(d.InterestType),
		InterestValue:   d.InterestValue,
	}
}
