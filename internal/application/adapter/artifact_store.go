package adapter

import "context"

// ArtifactStore persists backup artifacts (exported JSON documents and
// uploaded restore files) outside the database.
type ArtifactStore interface {
	// Put stores data under name and returns a URL or path from which the
	// artifact can be fetched later.
	Put(ctx context.Context, name string, data []byte) (string, error)

	// Get fetches a previously stored artifact by name.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes an artifact. Deleting a missing artifact is not an error.
	Delete(ctx context.Context, name string) error
}
