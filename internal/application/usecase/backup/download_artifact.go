package backup

import (
	"context"
	"strings"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
)

// DownloadArtifactInput represents the input for fetching a backup artifact.
type DownloadArtifactInput struct {
	Filename string
}

// DownloadArtifactOutput represents a fetched artifact.
type DownloadArtifactOutput struct {
	Filename string
	Data     []byte
}

// DownloadArtifactUseCase serves previously exported backup files.
type DownloadArtifactUseCase struct {
	artifactStore adapter.ArtifactStore
}

// NewDownloadArtifactUseCase creates a new DownloadArtifactUseCase instance.
func NewDownloadArtifactUseCase(artifactStore adapter.ArtifactStore) *DownloadArtifactUseCase {
	return &DownloadArtifactUseCase{artifactStore: artifactStore}
}

// Execute fetches an artifact by filename. Names with path separators are
// rejected so a request can never escape the artifact store.
func (uc *DownloadArtifactUseCase) Execute(ctx context.Context, input DownloadArtifactInput) (*DownloadArtifactOutput, error) {
	if input.Filename == "" || strings.ContainsAny(input.Filename, "/\\") || strings.Contains(input.Filename, "..") {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeArtifactNotFound,
			"file not found",
			domainerror.ErrArtifactNotFound,
		)
	}

	data, err := uc.artifactStore.Get(ctx, input.Filename)
	if err != nil {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeArtifactNotFound,
			"file not found",
			domainerror.ErrArtifactNotFound,
		)
	}

	return &DownloadArtifactOutput{
		Filename: input.Filename,
		Data:     data,
	}, nil
}
