package backup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// StartBackupOutput represents the output of starting a backup job.
type StartBackupOutput struct {
	JobID string
}

// StartBackupUseCase exports the whole store into a downloadable JSON
// artifact. The export runs in the background; callers poll the job for
// progress and the download URL.
type StartBackupUseCase struct {
	snapshotRepo  adapter.SnapshotRepository
	artifactStore adapter.ArtifactStore
	registry      JobRegistry
}

// NewStartBackupUseCase creates a new StartBackupUseCase instance.
func NewStartBackupUseCase(
	snapshotRepo adapter.SnapshotRepository,
	artifactStore adapter.ArtifactStore,
	registry JobRegistry,
) *StartBackupUseCase {
	return &StartBackupUseCase{
		snapshotRepo:  snapshotRepo,
		artifactStore: artifactStore,
		registry:      registry,
	}
}

// Execute registers a backup job and starts the export in the background.
func (uc *StartBackupUseCase) Execute(ctx context.Context) (*StartBackupOutput, error) {
	jobID := uuid.New().String()
	job := &entity.Job{
		ID:        jobID,
		Kind:      entity.JobKindBackup,
		Status:    entity.JobStatusProcessing,
		Progress:  0,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.registry.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to register backup job: %w", err)
	}

	// Detached from the request context: the export must outlive the
	// 202 response.
	go uc.performBackup(context.Background(), jobID)

	return &StartBackupOutput{JobID: jobID}, nil
}

// performBackup runs the export in the background and records the outcome
// on the job.
func (uc *StartBackupUseCase) performBackup(ctx context.Context, jobID string) {
	logger := slog.Default().With("jobID", jobID, "kind", "backup")
	logger.Info("Starting backup export")

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Backup panicked", "panic", r)
			_ = uc.registry.Fail(ctx, jobID, fmt.Sprintf("backup panicked: %v", r))
		}
	}()

	fail := func(stage string, err error) {
		logger.Error("Backup failed", "stage", stage, "error", err.Error())
		_ = uc.registry.Fail(ctx, jobID, err.Error())
	}

	_ = uc.registry.SetProgress(ctx, jobID, 10)

	snapshot, err := uc.snapshotRepo.ReadAll(ctx)
	if err != nil {
		fail("read", err)
		return
	}
	_ = uc.registry.SetProgress(ctx, jobID, 60)

	createdAt := time.Now().UTC()
	raw, err := EncodeSnapshot(snapshot, createdAt)
	if err != nil {
		fail("encode", err)
		return
	}
	_ = uc.registry.SetProgress(ctx, jobID, 80)

	filename := backupFilename(createdAt)
	downloadURL, err := uc.artifactStore.Put(ctx, filename, raw)
	if err != nil {
		fail("store", err)
		return
	}
	if err := uc.registry.Complete(ctx, jobID, downloadURL); err != nil {
		logger.Error("Failed to mark backup job completed", "error", err.Error())
		return
	}
	logger.Info("Backup export completed", "filename", filename, "bytes", len(raw))
}

// backupFilename derives the artifact name from the export timestamp.
func backupFilename(t time.Time) string {
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(t.Format(time.RFC3339))
	return "backup-" + stamp + ".json"
}
