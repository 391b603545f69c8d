// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// ProfileModel represents the profiles table in the database.
type ProfileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(50);not null"`
	CurrencyCode string    `gorm:"type:varchar(3);not null;default:'KRW'"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToEntity converts a ProfileModel to a domain Profile entity.
func (m *ProfileModel) ToEntity() *entity.Profile {
	return &entity.Profile{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		CurrencyCode: m.CurrencyCode,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ProfileFromEntity creates a ProfileModel from a domain Profile entity.
func ProfileFromEntity(profile *entity.Profile) *ProfileModel {
	return &ProfileModel{
		ID:           profile.ID,
		UserID:       profile.UserID,
		Name:         profile.Name,
		CurrencyCode: profile.CurrencyCode,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
}
