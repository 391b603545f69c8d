package model

import (
	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// PaymentMethodModel represents the payment_methods table in the database.
type PaymentMethodModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(50);not null"`
	Type      string    `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for the PaymentMethodModel.
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// ToEntity converts a PaymentMethodModel to a domain PaymentMethod entity.
func (m *PaymentMethodModel) ToEntity() *entity.PaymentMethod {
	return &entity.PaymentMethod{
		ID:        m.ID,
		ProfileID: m.ProfileID,
		Name:      m.Name,
		Type:      m.Type,
	}
}

// PaymentMethodFromEntity creates a PaymentMethodModel from a domain PaymentMethod entity.
func PaymentMethodFromEntity(method *entity.PaymentMethod) *PaymentMethodModel {
	return &PaymentMethodModel{
		ID:        method.ID,
		ProfileID: method.ProfileID,
		Name:      method.Name,
		Type:      method.Type,
	}
}
