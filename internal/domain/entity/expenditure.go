// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExpenditureType discriminates the three kinds of recurring expenditure.
// The type is fixed at creation and determines which detail variant exists.
type ExpenditureType string

const (
	ExpenditureTypeRegular      ExpenditureType = "REGULAR"
	ExpenditureTypeSubscription ExpenditureType = "SUBSCRIPTION"
	ExpenditureTypeInstallment  ExpenditureType = "INSTALLMENT"
)

// IsValid reports whether t is one of the known expenditure types.
func (t ExpenditureType) IsValid() bool {
	switch t {
	case ExpenditureTypeRegular, ExpenditureTypeSubscription, ExpenditureTypeInstallment:
		return true
	}
	return false
}

// Expenditure represents a recurring payment obligation within a profile.
type Expenditure struct {
	ID              uuid.UUID
	ProfileID       uuid.UUID
	CategoryID      uuid.UUID
	PaymentMethodID *uuid.UUID // Optional
	ItemName        string
	PaymentDay      int // Day of month 1-31
	PaymentCycle    string
	Type            ExpenditureType // Immutable after creation
	Memo            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewExpenditure creates a new Expenditure entity.
func NewExpenditure(
	profileID uuid.UUID,
	categoryID uuid.UUID,
	paymentMethodID *uuid.UUID,
	itemName string,
	paymentDay int,
	paymentCycle string,
	expenditureType ExpenditureType,
	memo string,
) *Expenditure {
	now := time.Now().UTC()

	return &Expenditure{
		ID:              uuid.New(),
		ProfileID:       profileID,
		CategoryID:      categoryID,
		PaymentMethodID: paymentMethodID,
		ItemName:        itemName,
		PaymentDay:      paymentDay,
		PaymentCycle:    paymentCycle,
		Type:            expenditureType,
		Memo:            memo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ExpenditureWithCategory pairs an expenditure with its referenced category.
type ExpenditureWithCategory struct {
	Expenditure *Expenditure
	Category    *Category
}
