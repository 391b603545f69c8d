package dto

import (
	"time"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// JobAcceptedResponse is returned when a backup or restore job is submitted.
type JobAcceptedResponse struct {
	JobID string `json:"jobId"`
}

// JobStatusResponse represents the polled state of a job.
type JobStatusResponse struct {
	JobID       string    `json:"jobId"`
	Kind        string    `json:"kind"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"createdAt"`
	DownloadURL string    `json:"downloadUrl,omitempty"`
	Error       string    `json:"error,omitempty"`
}

// ToJobStatusResponse converts a Job entity to a response DTO.
func ToJobStatusResponse(job *entity.Job) JobStatusResponse {
	return JobStatusResponse{
		JobID:       job.ID,
		Kind:        string(job.Kind),
		Status:      string(job.Status),
		Progress:    job.Progress,
		CreatedAt:   job.CreatedAt,
		DownloadURL: job.DownloadURL,
		Error:       job.Error,
	}
}
