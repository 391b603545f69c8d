package adapter

import (
	"context"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// StoreSnapshot carries the full contents of every persisted table. It is
// the unit of work for backup export and restore import.
type StoreSnapshot struct {
	Profiles            []*entity.Profile
	Categories          []*entity.Category
	PaymentMethods      []*entity.PaymentMethod
	Expenditures        []*entity.Expenditure
	RegularDetails      []*entity.RegularDetail
	SubscriptionDetails []*entity.SubscriptionDetail
	InstallmentDetails  []*entity.InstallmentDetail
	PaymentHistory      []*entity.PaymentRecord
	StatusHistory       []*entity.StatusEntry
	Photos              []*entity.Photo
}

// SnapshotRepository defines whole-store export and destructive import.
type SnapshotRepository interface {
	// ReadAll loads every row of every table into a snapshot.
	ReadAll(ctx context.Context) (*StoreSnapshot, error)

	// ReplaceAll deletes all existing rows and inserts the snapshot's rows
	// inside a single transaction. Deletes run child-first so foreign keys
	// are never violated; inserts run parent-first. Any failure rolls the
	// whole transaction back, leaving prior data untouched.
	//
	// progress, when non-nil, is called with coarse percentages as the
	// transaction advances. It must not be relied on for correctness.
	ReplaceAll(ctx context.Context, snapshot *StoreSnapshot, progress func(percent int)) error
}
