// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
)

// Category represents an expenditure category within a profile.
// Categories are referenced, not owned, by expenditures.
type Category struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Name      string
	IsDefault bool
	Icon      string
	Color     string
}

// NewCategory creates a new Category entity.
func NewCategory(profileID uuid.UUID, name, icon, color string, isDefault bool) *Category {
	return &Category{
		ID:        uuid.New(),
		ProfileID: profileID,
		Name:      name,
		IsDefault: isDefault,
		Icon:      icon,
		Color:     color,
	}
}
