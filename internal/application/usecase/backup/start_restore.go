package backup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
)

// StartRestoreInput represents the input for starting a restore job.
type StartRestoreInput struct {
	// Data is the raw uploaded backup document.
	Data []byte
}

// StartRestoreOutput represents the output of starting a restore job.
type StartRestoreOutput struct {
	JobID string
}

// StartRestoreUseCase replaces the whole store with the contents of an
// uploaded backup document. The upload is parked as a temporary artifact,
// the replacement runs in the background inside one transaction, and the
// artifact is discarded once the restore commits. A failed restore leaves
// the prior data untouched.
type StartRestoreUseCase struct {
	snapshotRepo  adapter.SnapshotRepository
	artifactStore adapter.ArtifactStore
	registry      JobRegistry
}

// NewStartRestoreUseCase creates a new StartRestoreUseCase instance.
func NewStartRestoreUseCase(
	snapshotRepo adapter.SnapshotRepository,
	artifactStore adapter.ArtifactStore,
	registry JobRegistry,
) *StartRestoreUseCase {
	return &StartRestoreUseCase{
		snapshotRepo:  snapshotRepo,
		artifactStore: artifactStore,
		registry:      registry,
	}
}

// Execute registers a restore job and starts the import in the background.
func (uc *StartRestoreUseCase) Execute(ctx context.Context, input StartRestoreInput) (*StartRestoreOutput, error) {
	if len(input.Data) == 0 {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeBackupFileRequired,
			"a backup file is required",
			domainerror.ErrBackupFileRequired,
		)
	}

	jobID := uuid.New().String()

	tempName := "restore-upload-" + jobID + ".json"
	if _, err := uc.artifactStore.Put(ctx, tempName, input.Data); err != nil {
		return nil, fmt.Errorf("failed to store uploaded backup: %w", err)
	}

	job := &entity.Job{
		ID:        jobID,
		Kind:      entity.JobKindRestore,
		Status:    entity.JobStatusProcessing,
		Progress:  0,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.registry.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to register restore job: %w", err)
	}

	go uc.performRestore(context.Background(), jobID, tempName)

	return &StartRestoreOutput{JobID: jobID}, nil
}

// performRestore runs the import in the background and records the outcome
// on the job. The temporary artifact is removed only after a successful
// commit so a failed restore can be retried from it.
func (uc *StartRestoreUseCase) performRestore(ctx context.Context, jobID, tempName string) {
	logger := slog.Default().With("jobID", jobID, "kind", "restore")
	logger.Info("Starting restore import")

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Restore panicked", "panic", r)
			_ = uc.registry.Fail(ctx, jobID, fmt.Sprintf("restore panicked: %v", r))
		}
	}()

	fail := func(stage string, err error) {
		logger.Error("Restore failed", "stage", stage, "error", err.Error())
		_ = uc.registry.Fail(ctx, jobID, err.Error())
	}

	_ = uc.registry.SetProgress(ctx, jobID, 10)

	raw, err := uc.artifactStore.Get(ctx, tempName)
	if err != nil {
		fail("read", err)
		return
	}

	snapshot, err := DecodeSnapshot(raw)
	if err != nil {
		fail("decode", err)
		return
	}
	_ = uc.registry.SetProgress(ctx, jobID, 20)

	// The repository reports coarse percentages as the transaction's
	// delete and insert phases advance.
	err = uc.snapshotRepo.ReplaceAll(ctx, snapshot, func(percent int) {
		_ = uc.registry.SetProgress(ctx, jobID, percent)
	})
	if err != nil {
		fail("replace", err)
		return
	}
	if err := uc.registry.Complete(ctx, jobID, ""); err != nil {
		logger.Error("Failed to mark restore job completed", "error", err.Error())
	}

	if err := uc.artifactStore.Delete(ctx, tempName); err != nil {
		logger.Warn("Failed to remove temporary restore artifact", "artifact", tempName, "error", err.Error())
	}

	logger.Info("Restore import completed")
}
