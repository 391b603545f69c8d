package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/backup"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
	"github.com/0Hoxy/fixedExpenses/internal/integration/entrypoint/dto"
)

// maxBackupUploadBytes bounds the size of an uploaded restore file.
const maxBackupUploadBytes = 50 << 20

// BackupController handles backup, restore and download endpoints.
type BackupController struct {
	startBackupUseCase  *backup.StartBackupUseCase
	startRestoreUseCase *backup.StartRestoreUseCase
	backupJobUseCase    *backup.GetJobUseCase
	restoreJobUseCase   *backup.GetJobUseCase
	downloadUseCase     *backup.DownloadArtifactUseCase
}

// NewBackupController creates a new backup controller instance. Backup and
// restore jobs are polled through separate use cases since their IDs live in
// separate namespaces.
func NewBackupController(
	startBackupUseCase *backup.StartBackupUseCase,
	startRestoreUseCase *backup.StartRestoreUseCase,
	backupJobUseCase *backup.GetJobUseCase,
	restoreJobUseCase *backup.GetJobUseCase,
	downloadUseCase *backup.DownloadArtifactUseCase,
) *BackupController {
	return &BackupController{
		startBackupUseCase:  startBackupUseCase,
		startRestoreUseCase: startRestoreUseCase,
		backupJobUseCase:    backupJobUseCase,
		restoreJobUseCase:   restoreJobUseCase,
		downloadUseCase:     downloadUseCase,
	}
}

// StartBackup handles POST /backups requests. The export runs in the
// background; the response carries the job ID to poll.
func (c *BackupController) StartBackup(ctx *gin.Context) {
	output, err := c.startBackupUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.NewSuccessResponse(dto.JobAcceptedResponse{
		JobID: output.JobID,
	}))
}

// GetBackupJob handles GET /backups/:jobId requests.
func (c *BackupController) GetBackupJob(ctx *gin.Context) {
	c.getJob(ctx, c.backupJobUseCase)
}

// StartRestore handles POST /restores requests. The upload arrives as the
// multipart field "backupFile".
func (c *BackupController) StartRestore(ctx *gin.Context) {
	file, err := ctx.FormFile("backupFile")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			string(domainerror.ErrCodeBackupFileRequired),
			"backupFile is required",
		))
		return
	}
	if file.Size > maxBackupUploadBytes {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			string(domainerror.ErrCodeMalformedBackup),
			"backup file is too large",
		))
		return
	}

	opened, err := file.Open()
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}
	defer opened.Close()

	data, err := io.ReadAll(opened)
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	output, err := c.startRestoreUseCase.Execute(ctx.Request.Context(), backup.StartRestoreInput{
		Data: data,
	})
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.NewSuccessResponse(dto.JobAcceptedResponse{
		JobID: output.JobID,
	}))
}

// GetRestoreJob handles GET /restores/:jobId requests.
func (c *BackupController) GetRestoreJob(ctx *gin.Context) {
	c.getJob(ctx, c.restoreJobUseCase)
}

// Download handles GET /downloads/:filename requests.
func (c *BackupController) Download(ctx *gin.Context) {
	output, err := c.downloadUseCase.Execute(ctx.Request.Context(), backup.DownloadArtifactInput{
		Filename: ctx.Param("filename"),
	})
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+output.Filename)
	ctx.Data(http.StatusOK, "application/json", output.Data)
}

func (c *BackupController) getJob(ctx *gin.Context, useCase *backup.GetJobUseCase) {
	output, err := useCase.Execute(ctx.Request.Context(), backup.GetJobInput{
		JobID: ctx.Param("jobId"),
	})
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToJobStatusResponse(output.Job)))
}

// handleBackupError maps backup errors to HTTP responses.
func (c *BackupController) handleBackupError(ctx *gin.Context, err error) {
	var backupErr *domainerror.BackupError
	if errors.As(err, &backupErr) {
		ctx.JSON(statusCodeForBackupError(backupErr.Code), dto.NewErrorResponse(
			string(backupErr.Code),
			backupErr.Message,
		))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		string(domainerror.ErrCodeBackupInternalError),
		"An internal error occurred",
	))
}

// statusCodeForBackupError maps backup error codes to HTTP status codes.
func statusCodeForBackupError(code domainerror.BackupErrorCode) int {
	switch code {
	case domainerror.ErrCodeJobNotFound, domainerror.ErrCodeArtifactNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMalformedBackup, domainerror.ErrCodeBackupFileRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
