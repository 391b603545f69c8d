// Package jobs provides a Redis-backed job registry for deployments that run
// more than one API instance.
package jobs

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/backup"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
)

// jobTTL bounds how long a finished or abandoned job stays queryable.
const jobTTL = 24 * time.Hour

// RedisJobRegistry stores jobs as Redis hashes under a kind-specific prefix,
// so backup and restore IDs live in separate namespaces. Each job has a
// single writer (the worker goroutine that owns it), so plain read-modify-
// write is sufficient for the monotonic progress rule.
type RedisJobRegistry struct {
	client *redis.Client
	prefix string
}

// NewRedisJobRegistry creates a registry for one job kind.
func NewRedisJobRegistry(client *redis.Client, kind entity.JobKind) backup.JobRegistry {
	return &RedisJobRegistry{
		client: client,
		prefix: "jobs:" + string(kind) + ":",
	}
}

func (r *RedisJobRegistry) key(id string) string {
	return r.prefix + id
}

// Create registers a new job in the processing state.
func (r *RedisJobRegistry) Create(ctx context.Context, job *entity.Job) error {
	createdAt := job.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	fields := map[string]interface{}{
		"kind":         string(job.Kind),
		"status":       string(job.Status),
		"progress":     job.Progress,
		"created_at":   createdAt.Format(time.RFC3339Nano),
		"download_url": job.DownloadURL,
		"error":        job.Error,
	}
	if err := r.client.HSet(ctx, r.key(job.ID), fields).Err(); err != nil {
		return err
	}
	return r.client.Expire(ctx, r.key(job.ID), jobTTL).Err()
}

// Get returns a job by ID, or nil when unknown.
func (r *RedisJobRegistry) Get(ctx context.Context, id string) (*entity.Job, error) {
	fields, err := r.client.HGetAll(ctx, r.key(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	progress, _ := strconv.Atoi(fields["progress"])
	createdAt, _ := time.Parse(time.RFC3339Nano, fields["created_at"])
	return &entity.Job{
		ID:          id,
		Kind:        entity.JobKind(fields["kind"]),
		Status:      entity.JobStatus(fields["status"]),
		Progress:    progress,
		CreatedAt:   createdAt,
		DownloadURL: fields["download_url"],
		Error:       fields["error"],
	}, nil
}

// SetProgress raises a job's progress. Lower values and updates to terminal
// jobs are dropped silently.
func (r *RedisJobRegistry) SetProgress(ctx context.Context, id string, progress int) error {
	job, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if job == nil || job.Status.IsTerminal() {
		return nil
	}
	if progress > 100 {
		progress = 100
	}
	if progress <= job.Progress {
		return nil
	}
	return r.client.HSet(ctx, r.key(id), "progress", progress).Err()
}

// Complete marks a job completed with progress 100.
func (r *RedisJobRegistry) Complete(ctx context.Context, id string, downloadURL string) error {
	job, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if job == nil || job.Status.IsTerminal() {
		return nil
	}
	return r.client.HSet(ctx, r.key(id), map[string]interface{}{
		"status":       string(entity.JobStatusCompleted),
		"progress":     100,
		"download_url": downloadURL,
	}).Err()
}

// Fail marks a job failed with an error message.
func (r *RedisJobRegistry) Fail(ctx context.Context, id string, message string) error {
	job, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if job == nil || job.Status.IsTerminal() {
		return nil
	}
	return r.client.HSet(ctx, r.key(id), map[string]interface{}{
		"status": string(entity.JobStatusFailed),
		"error":  message,
	}).Err()
}
