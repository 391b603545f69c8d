package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// PhotoModel represents the photos table in the database.
type PhotoModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExpenditureID uuid.UUID `gorm:"type:uuid;not null;index"`
	FilePath      string    `gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the PhotoModel.
func (PhotoModel) TableName() string {
	return "photos"
}

// ToEntity converts a PhotoModel to a domain Photo entity.
func (m *PhotoModel) ToEntity() *entity.Photo {
	return &entity.Photo{
		ID:            m.ID,
		ExpenditureID: m.ExpenditureID,
		FilePath:      m.FilePath,
		CreatedAt:     m.CreatedAt,
	}
}

// PhotoFromEntity creates a PhotoModel from a domain Photo entity.
func PhotoFromEntity(photo *entity.Photo) *PhotoModel {
	return &PhotoModel{
		ID:            photo.ID,
		ExpenditureID: photo.ExpenditureID,
		FilePath:      photo.FilePath,
		CreatedAt:     photo.CreatedAt,
	}
}
