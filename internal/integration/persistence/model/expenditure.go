package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// ExpenditureModel represents the expenditures table in the database.
type ExpenditureModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProfileID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	PaymentMethodID *uuid.UUID `gorm:"type:uuid"`
	ItemName        string     `gorm:"type:varchar(100);not null"`
	PaymentDay      int        `gorm:"not null"`
	PaymentCycle    string     `gorm:"type:varchar(20);not null"`
	Type            string     `gorm:"type:varchar(20);not null"`
	Memo            string     `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`

	Category CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for the ExpenditureModel.
func (ExpenditureModel) TableName() string {
	return "expenditures"
}

// ToEntity converts an ExpenditureModel to a domain Expenditure entity.
func (m *ExpenditureModel) ToEntity() *entity.Expenditure {
	return &entity.Expenditure{
		ID:              m.ID,
		ProfileID:       m.ProfileID,
		CategoryID:      m.CategoryID,
		PaymentMethodID: m.PaymentMethodID,
		ItemName:        m.ItemName,
		PaymentDay:      m.PaymentDay,
		PaymentCycle:    m.PaymentCycle,
		Type:            entity.ExpenditureType(m.Type),
		Memo:            m.Memo,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ExpenditureFromEntity creates an ExpenditureModel from a domain Expenditure entity.
func ExpenditureFromEntity(exp *entity.Expenditure) *ExpenditureModel {
	return &ExpenditureModel{
		ID:              exp.ID,
		ProfileID:       exp.ProfileID,
		CategoryID:      exp.CategoryID,
		PaymentMethodID: exp.PaymentMethodID,
		ItemName:        exp.ItemName,
		PaymentDay:      exp.PaymentDay,
		PaymentCycle:    exp.PaymentCycle,
		Type:            string(exp.Type),
		Memo:            exp.Memo,
		CreatedAt:       exp.CreatedAt,
		UpdatedAt:       exp.UpdatedAt,
	}
}
