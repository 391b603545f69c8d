package backup

import (
	"context"
	"sync"
	"time"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// JobRegistry tracks the jobs of one job kind (will be implemented in-memory
// or in Redis). Progress is monotonic: updates that would lower it are
// dropped. Completed and failed are absorbing; later updates to a terminal
// job are ignored.
type JobRegistry interface {
	// Create registers a new job in the processing state.
	Create(ctx context.Context, job *entity.Job) error

	// Get returns a job by ID, or nil when unknown.
	Get(ctx context.Context, id string) (*entity.Job, error)

	// SetProgress raises a job's progress. Lower values and updates to
	// terminal jobs are dropped silently.
	SetProgress(ctx context.Context, id string, progress int) error

	// Complete marks a job completed with progress 100. downloadURL may be
	// empty for jobs that produce no artifact.
	Complete(ctx context.Context, id string, downloadURL string) error

	// Fail marks a job failed with an error message.
	Fail(ctx context.Context, id string, message string) error
}

// InMemoryJobRegistry is a process-local JobRegistry. Jobs do not survive a
// restart, which matches their advisory nature: the underlying work either
// committed or rolled back regardless of what the registry remembers.
type InMemoryJobRegistry struct {
	mu   sync.RWMutex
	jobs map[string]*entity.Job
}

// NewInMemoryJobRegistry creates a new in-memory job registry.
func NewInMemoryJobRegistry() *InMemoryJobRegistry {
	return &InMemoryJobRegistry{
		jobs: make(map[string]*entity.Job),
	}
}

// Create registers a new job.
func (r *InMemoryJobRegistry) Create(_ context.Context, job *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *job
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.jobs[stored.ID] = &stored
	return nil
}

// Get returns a copy of the job, or nil when unknown.
func (r *InMemoryJobRegistry) Get(_ context.Context, id string) (*entity.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	copied := *job
	return &copied, nil
}

// SetProgress raises a job's progress.
func (r *InMemoryJobRegistry) SetProgress(_ context.Context, id string, progress int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok || job.Status.IsTerminal() {
		return nil
	}
	if progress > 100 {
		progress = 100
	}
	if progress > job.Progress {
		job.Progress = progress
	}
	return nil
}

// Complete marks a job completed.
func (r *InMemoryJobRegistry) Complete(_ context.Context, id string, downloadURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok || job.Status.IsTerminal() {
		return nil
	}
	job.Status = entity.JobStatusCompleted
	job.Progress = 100
	job.DownloadURL = downloadURL
	return nil
}

// Fail marks a job failed.
func (r *InMemoryJobRegistry) Fail(_ context.Context, id string, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok || job.Status.IsTerminal() {
		return nil
	}
	job.Status = entity.JobStatusFailed
	job.Error = message
	return nil
}
