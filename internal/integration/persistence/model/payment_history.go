package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// PaymentHistoryModel represents the payment_history table, keyed by
// (expenditure_id, payment_month).
type PaymentHistoryModel struct {
	ExpenditureID uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PaymentMonth  time.Time  `gorm:"primaryKey"`
	IsPaid        bool       `gorm:"not null;default:false"`
	PaidTimestamp *time.Time `gorm:""`
}

// TableName returns the table name for the PaymentHistoryModel.
func (PaymentHistoryModel) TableName() string {
	return "payment_history"
}

// ToEntity converts a PaymentHistoryModel to a domain PaymentRecord entity.
func (m *PaymentHistoryModel) ToEntity() *entity.PaymentRecord {
	return &entity.PaymentRecord{
		ExpenditureID: m.ExpenditureID,
		PaymentMonth:  m.PaymentMonth,
		IsPaid:        m.IsPaid,
		PaidTimestamp: m.PaidTimestamp,
	}
}

// PaymentHistoryFromEntity creates a PaymentHistoryModel from a domain PaymentRecord entity.
func PaymentHistoryFromEntity(record *entity.PaymentRecord) *PaymentHistoryModel {
	return &PaymentHistoryModel{
		ExpenditureID: record.ExpenditureID,
		PaymentMonth:  record.PaymentMonth,
		IsPaid:        record.IsPaid,
		PaidTimestamp: record.PaidTimestamp,
	}
}
