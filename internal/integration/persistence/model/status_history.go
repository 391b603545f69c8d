package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// StatusHistoryModel represents the status_history table. Rows are keyed by
// (expenditure_id, effective_month); an upsert on that pair replaces the
// stored status.
type StatusHistoryModel struct {
	ExpenditureID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	EffectiveMonth time.Time `gorm:"primaryKey"`
	Status         string    `gorm:"type:varchar(10);not null"`
}

// TableName returns the table name for the StatusHistoryModel.
func (StatusHistoryModel) TableName() string {
	return "status_history"
}

// ToEntity converts a StatusHistoryModel to a domain StatusEntry entity.
func (m *StatusHistoryModel) ToEntity() *entity.StatusEntry {
	return &entity.StatusEntry{
		ExpenditureID:  m.ExpenditureID,
		Status:         entity.ExpenditureStatus(m.Status),
		EffectiveMonth: m.EffectiveMonth,
	}
}

// StatusHistoryFromEntity creates a StatusHistoryModel from a domain StatusEntry entity.
func StatusHistoryFromEntity(entry *entity.StatusEntry) *StatusHistoryModel {
	return &StatusHistoryModel{
		ExpenditureID:  entry.ExpenditureID,
		EffectiveMonth: entry.EffectiveMonth,
		Status:         string(entry.Status),
	}
}
