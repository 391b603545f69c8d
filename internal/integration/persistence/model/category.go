package model

import (
	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(50);not null"`
	IsDefault bool      `gorm:"not null;default:false"`
	Icon      string    `gorm:"type:varchar(50)"`
	Color     string    `gorm:"type:varchar(7)"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		ProfileID: m.ProfileID,
		Name:      m.Name,
		IsDefault: m.IsDefault,
		Icon:      m.Icon,
		Color:     m.Color,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		ProfileID: category.ProfileID,
		Name:      category.Name,
		IsDefault: category.IsDefault,
		Icon:      category.Icon,
		Color:     category.Color,
	}
}
