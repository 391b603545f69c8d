// Package storage provides artifact stores for backup files.
package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// downloadPathPrefix is the URL path under which stored artifacts are served.
const downloadPathPrefix = "/api/v1/downloads/"

// LocalArtifactStore keeps artifacts as plain files under a base directory.
type LocalArtifactStore struct {
	baseDir string
}

// NewLocalArtifactStore creates a store rooted at baseDir, creating the
// directory when needed.
func NewLocalArtifactStore(baseDir string) (*LocalArtifactStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &LocalArtifactStore{baseDir: baseDir}, nil
}

// Put stores data under name and returns the download path.
func (s *LocalArtifactStore) Put(_ context.Context, name string, data []byte) (string, error) {
	if err := os.WriteFile(filepath.Join(s.baseDir, name), data, 0o644); err != nil {
		return "", err
	}
	return downloadPathPrefix + name, nil
}

// Get fetches a previously stored artifact by name.
func (s *LocalArtifactStore) Get(_ context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.baseDir, name))
}

// Delete removes an artifact. Deleting a missing artifact is not an error.
func (s *LocalArtifactStore) Delete(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(s.baseDir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
