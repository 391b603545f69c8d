package backup

import (
	"context"
	"testing"
	"time"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

func newProcessingJob(id string) *entity.Job {
	return &entity.Job{
		ID:        id,
		Kind:      entity.JobKindBackup,
		Status:    entity.JobStatusProcessing,
		CreatedAt: time.Now().UTC(),
	}
}

func TestInMemoryJobRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("Get returns nil for unknown job", func(t *testing.T) {
		registry := NewInMemoryJobRegistry()
		job, err := registry.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job != nil {
			t.Errorf("expected nil, got %+v", job)
		}
	})

	t.Run("Create then Get round-trips the job", func(t *testing.T) {
		registry := NewInMemoryJobRegistry()
		if err := registry.Create(ctx, newProcessingJob("job-1")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		job, err := registry.Get(ctx, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job == nil {
			t.Fatal("expected job to exist")
		}
		if job.Status != entity.JobStatusProcessing {
			t.Errorf("expected processing, got %s", job.Status)
		}
		if job.Progress != 0 {
			t.Errorf("expected progress 0, got %d", job.Progress)
		}
	})

	t.Run("progress is monotonic", func(t *testing.T) {
		registry := NewInMemoryJobRegistry()
		_ = registry.Create(ctx, newProcessingJob("job-1"))

		_ = registry.SetProgress(ctx, "job-1", 40)
		_ = registry.SetProgress(ctx, "job-1", 20)

		job, _ := registry.Get(ctx, "job-1")
		if job.Progress != 40 {
			t.Errorf("expected progress to stay at 40, got %d", job.Progress)
		}

		_ = registry.SetProgress(ctx, "job-1", 150)
		job, _ = registry.Get(ctx, "job-1")
		if job.Progress != 100 {
			t.Errorf("expected progress clamped to 100, got %d", job.Progress)
		}
	})

	t.Run("Complete sets progress 100 and the download URL", func(t *testing.T) {
		registry := NewInMemoryJobRegistry()
		_ = registry.Create(ctx, newProcessingJob("job-1"))
		_ = registry.SetProgress(ctx, "job-1", 60)

		_ = registry.Complete(ctx, "job-1", "/api/v1/downloads/backup.json")

		job, _ := registry.Get(ctx, "job-1")
		if job.Status != entity.JobStatusCompleted {
			t.Errorf("expected completed, got %s", job.Status)
		}
		if job.Progress != 100 {
			t.Errorf("expected progress 100, got %d", job.Progress)
		}
		if job.DownloadURL != "/api/v1/downloads/backup.json" {
			t.Errorf("unexpected download URL %q", job.DownloadURL)
		}
	})

	t.Run("terminal states absorb later updates", func(t *testing.T) {
		registry := NewInMemoryJobRegistry()
		_ = registry.Create(ctx, newProcessingJob("job-1"))
		_ = registry.Fail(ctx, "job-1", "disk full")

		_ = registry.SetProgress(ctx, "job-1", 90)
		_ = registry.Complete(ctx, "job-1", "/late")

		job, _ := registry.Get(ctx, "job-1")
		if job.Status != entity.JobStatusFailed {
			t.Errorf("expected failed to be absorbing, got %s", job.Status)
		}
		if job.Error != "disk full" {
			t.Errorf("expected error message preserved, got %q", job.Error)
		}
		if job.DownloadURL != "" {
			t.Errorf("expected no download URL on a failed job, got %q", job.DownloadURL)
		}
	})

	t.Run("Get returns a copy", func(t *testing.T) {
		registry := NewInMemoryJobRegistry()
		_ = registry.Create(ctx, newProcessingJob("job-1"))

		job, _ := registry.Get(ctx, "job-1")
		job.Progress = 99

		again, _ := registry.Get(ctx, "job-1")
		if again.Progress != 0 {
			t.Errorf("expected stored job untouched, got progress %d", again.Progress)
		}
	})
}
