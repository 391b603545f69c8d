// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
)

// PaymentMethod represents a way of paying an expenditure (card, account transfer, ...).
// Referenced, not owned, by expenditures.
type PaymentMethod struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Name      string
	Type      string
}

// NewPaymentMethod creates a new PaymentMethod entity.
func NewPaymentMethod(profileID uuid.UUID, name, methodType string) *PaymentMethod {
	return &PaymentMethod{
		ID:        uuid.New(),
		ProfileID: profileID,
		Name:      name,
		Type:      methodType,
	}
}
