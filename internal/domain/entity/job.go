// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"
)

// JobKind distinguishes backup from restore jobs.
type JobKind string

const (
	JobKindBackup  JobKind = "backup"
	JobKindRestore JobKind = "restore"
)

// JobStatus is the lifecycle state of a backup or restore job.
// Completed and failed are terminal and absorbing.
type JobStatus string

const (
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// IsTerminal reports whether the status is completed or failed.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Job tracks one asynchronous backup or restore operation. Jobs are
// process-lifetime records owned by the job registry; they are never
// written to the relational store and do not survive a restart.
type Job struct {
	ID          string
	Kind        JobKind
	Status      JobStatus
	Progress    int // 0-100, monotonically non-decreasing
	CreatedAt   time.Time
	DownloadURL string // Set when a backup completes
	Error       string // Set when a job fails
}
