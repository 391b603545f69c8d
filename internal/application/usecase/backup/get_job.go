package backup

import (
	"context"
	"fmt"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
)

// GetJobInput represents the input for polling a job.
type GetJobInput struct {
	JobID string
}

// GetJobOutput represents the current state of a job.
type GetJobOutput struct {
	Job *entity.Job
}

// GetJobUseCase answers poll requests for backup or restore jobs. One
// instance is wired per registry, so backup and restore job IDs live in
// separate namespaces.
type GetJobUseCase struct {
	registry JobRegistry
}

// NewGetJobUseCase creates a new GetJobUseCase instance.
func NewGetJobUseCase(registry JobRegistry) *GetJobUseCase {
	return &GetJobUseCase{registry: registry}
}

// Execute fetches the job's current state.
func (uc *GetJobUseCase) Execute(ctx context.Context, input GetJobInput) (*GetJobOutput, error) {
	job, err := uc.registry.Get(ctx, input.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up job: %w", err)
	}
	if job == nil {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeJobNotFound,
			"job not found",
			domainerror.ErrJobNotFound,
		)
	}
	return &GetJobOutput{Job: job}, nil
}
