package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/expenditure"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// DetailRequest carries the type-specific fields of a create or update
// request. Only the fields matching the expenditure type are read.
type DetailRequest struct {
	Amount             *decimal.Decimal `json:"amount,omitempty"`
	IsShared           bool             `json:"isShared,omitempty"`
	TotalAmount        *decimal.Decimal `json:"totalAmount,omitempty"`
	ShareType          *string          `json:"shareType,omitempty"`
	PlanName           *string          `json:"planName,omitempty"`
	ReminderDaysBefore int              `json:"reminderDaysBefore,omitempty"`
	PrincipalAmount    *decimal.Decimal `json:"principalAmount,omitempty"`
	MonthlyPayment     *decimal.Decimal `json:"monthlyPayment,omitempty"`
	StartMonth         *string          `json:"startMonth,omitempty"`
	TotalMonths        *int             `json:"totalMonths,omitempty"`
	InterestType       *string          `json:"interestType,omitempty"`
	InterestValue      *decimal.Decimal `json:"interestValue,omitempty"`
}

// ToDetailInput converts the request detail to the use case input form.
func (r *DetailRequest) ToDetailInput() expenditure.DetailInput {
	return expenditure.DetailInput{
		Amount:             r.Amount,
		IsShared:           r.IsShared,
		TotalAmount:        r.TotalAmount,
		ShareType:          r.ShareType,
		PlanName:           r.PlanName,
		ReminderDaysBefore: r.ReminderDaysBefore,
		PrincipalAmount:    r.PrincipalAmount,
		MonthlyPayment:     r.MonthlyPayment,
		StartMonth:         r.StartMonth,
		TotalMonths:        r.TotalMonths,
		InterestType:       r.InterestType,
		InterestValue:      r.InterestValue,
	}
}

// CreateExpenditureRequest represents the request body for expenditure creation.
type CreateExpenditureRequest struct {
	ProfileID       uuid.UUID     `json:"profileId" binding:"required"`
	CategoryID      uuid.UUID     `json:"categoryId" binding:"required"`
	PaymentMethodID *uuid.UUID    `json:"paymentMethodId,omitempty"`
	ItemName        string        `json:"itemName" binding:"required"`
	PaymentDay      int           `json:"paymentDay" binding:"required"`
	PaymentCycle    string        `json:"paymentCycle" binding:"required"`
	Type            string        `json:"type" binding:"required"`
	Memo            string        `json:"memo,omitempty"`
	Detail          DetailRequest `json:"detail"`
}

// UpdateExpenditureRequest represents a partial update. Absent fields are
// left unchanged.
type UpdateExpenditureRequest struct {
	Type            *string        `json:"type,omitempty"`
	CategoryID      *uuid.UUID     `json:"categoryId,omitempty"`
	PaymentMethodID *uuid.UUID     `json:"paymentMethodId,omitempty"`
	ItemName        *string        `json:"itemName,omitempty"`
	PaymentDay      *int           `json:"paymentDay,omitempty"`
	PaymentCycle    *string        `json:"paymentCycle,omitempty"`
	Memo            *string        `json:"memo,omitempty"`
	Detail          *DetailRequest `json:"detail,omitempty"`
}

// PaymentRequest represents the request body for recording a month's payment.
type PaymentRequest struct {
	IsPaid        *bool      `json:"isPaid,omitempty"`
	PaidTimestamp *time.Time `json:"paidTimestamp,omitempty"`
}

// StatusRequest represents the request body for recording a status change.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// DetailResponse represents the type-specific detail in API responses.
type DetailResponse struct {
	Amount             *float64 `json:"amount,omitempty"`
	IsShared           *bool    `json:"isShared,omitempty"`
	TotalAmount        *float64 `json:"totalAmount,omitempty"`
	ShareType          *string  `json:"shareType,omitempty"`
	PlanName           *string  `json:"planName,omitempty"`
	ReminderDaysBefore *int     `json:"reminderDaysBefore,omitempty"`
	PrincipalAmount    *float64 `json:"principalAmount,omitempty"`
	MonthlyPayment     *float64 `json:"monthlyPayment,omitempty"`
	StartMonth         *string  `json:"startMonth,omitempty"`
	TotalMonths        *int     `json:"totalMonths,omitempty"`
	InterestType       *string  `json:"interestType,omitempty"`
	InterestValue      *float64 `json:"interestValue,omitempty"`
}

// ExpenditureResponse represents a single expenditure in API responses.
type ExpenditureResponse struct {
	ID              string            `json:"id"`
	ProfileID       string            `json:"profileId"`
	CategoryID      string            `json:"categoryId"`
	PaymentMethodID *string           `json:"paymentMethodId,omitempty"`
	ItemName        string            `json:"itemName"`
	PaymentDay      int               `json:"paymentDay"`
	PaymentCycle    string            `json:"paymentCycle"`
	Type            string            `json:"type"`
	Memo            string            `json:"memo,omitempty"`
	CategoryName    string            `json:"categoryName,omitempty"`
	CurrentStatus   string            `json:"currentStatus,omitempty"`
	Detail          *DetailResponse   `json:"detail,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// PaginationResponse describes the page window of a list response.
type PaginationResponse struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	Limit       int  `json:"limit"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// ExpenditureListResponse represents one page of expenditures.
type ExpenditureListResponse struct {
	Expenditures []ExpenditureResponse `json:"expenditures"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// PaymentResponse represents a recorded payment in API responses.
type PaymentResponse struct {
	ExpenditureID string     `json:"expenditureId"`
	PaymentMonth  string     `json:"paymentMonth"`
	IsPaid        bool       `json:"isPaid"`
	PaidTimestamp *time.Time `json:"paidTimestamp,omitempty"`
}

// StatusResponse represents a recorded status entry in API responses.
type StatusResponse struct {
	ExpenditureID  string `json:"expenditureId"`
	Status         string `json:"status"`
	EffectiveMonth string `json:"effectiveMonth"`
}

// ResolutionResponse answers "what was the status in month M".
type ResolutionResponse struct {
	ExpenditureID string `json:"expenditureId"`
	Month         string `json:"month"`
	Resolution    string `json:"resolution"`
}

// ToExpenditureResponse converts a domain Expenditure to a response DTO.
func ToExpenditureResponse(exp *entity.Expenditure) ExpenditureResponse {
	var paymentMethodID *string
	if exp.PaymentMethodID != nil {
		s := exp.PaymentMethodID.String()
		paymentMethodID = &s
	}
	return ExpenditureResponse{
		ID:              exp.ID.String(),
		ProfileID:       exp.ProfileID.String(),
		CategoryID:      exp.CategoryID.String(),
		PaymentMethodID: paymentMethodID,
		ItemName:        exp.ItemName,
		PaymentDay:      exp.PaymentDay,
		PaymentCycle:    exp.PaymentCycle,
		Type:            string(exp.Type),
		Memo:            exp.Memo,
		CreatedAt:       exp.CreatedAt,
		UpdatedAt:       exp.UpdatedAt,
	}
}

// ToDetailResponse converts a detail variant to a response DTO.
func ToDetailResponse(detail entity.ExpenditureDetail) *DetailResponse {
	if detail == nil {
		return nil
	}
	switch d := detail.(type) {
	case *entity.RegularDetail:
		resp := &DetailResponse{
			Amount:   floatPtr(d.Amount),
			IsShared: &d.IsShared,
		}
		if d.TotalAmount != nil {
			resp.TotalAmount = floatPtr(*d.TotalAmount)
		}
		if d.ShareType != nil {
			s := string(*d.ShareType)
			resp.ShareType = &s
		}
		return resp
	case *entity.SubscriptionDetail:
		return &DetailResponse{
			Amount:             floatPtr(d.Amount),
			PlanName:           d.PlanName,
			ReminderDaysBefore: &d.ReminderDaysBefore,
		}
	case *entity.InstallmentDetail:
		startMonth := d.StartMonth.Format("2006-01")
		interestType := string(d.InterestType)
		resp := &DetailResponse{
			PrincipalAmount: floatPtr(d.PrincipalAmount),
			MonthlyPayment:  floatPtr(d.MonthlyPayment),
			StartMonth:      &startMonth,
			TotalMonths:     &d.TotalMonths,
			InterestType:    &interestType,
		}
		if d.InterestValue != nil {
			resp.InterestValue = floatPtr(*d.InterestValue)
		}
		return resp
	default:
		return nil
	}
}

func floatPtr(d decimal.Decimal) *float64 {
	f := d.InexactFloat64()
	return &f
}
