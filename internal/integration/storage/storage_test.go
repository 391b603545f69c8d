package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestLocalArtifactStore(t *testing.T) {
	ctx := context.Background()

	t.Run("put then get round trip", func(t *testing.T) {
		store, err := NewLocalArtifactStore(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}

		url, err := store.Put(ctx, "backup-test.json", []byte(`{"version":"1.0"}`))
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if url != "/api/v1/downloads/backup-test.json" {
			t.Errorf("unexpected download path: %q", url)
		}

		data, err := store.Get(ctx, "backup-test.json")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(data) != `{"version":"1.0"}` {
			t.Errorf("unexpected content: %s", data)
		}
	})

	t.Run("get missing artifact fails", func(t *testing.T) {
		store, err := NewLocalArtifactStore(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}

		if _, err := store.Get(ctx, "nope.json"); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})

	t.Run("delete removes the artifact", func(t *testing.T) {
		store, err := NewLocalArtifactStore(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}

		if _, err := store.Put(ctx, "gone.json", []byte("x")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := store.Delete(ctx, "gone.json"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := store.Get(ctx, "gone.json"); err == nil {
			t.Error("expected the artifact to be gone")
		}
	})

	t.Run("deleting a missing artifact is not an error", func(t *testing.T) {
		store, err := NewLocalArtifactStore(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}

		if err := store.Delete(ctx, "never-existed.json"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})
}

type fakeS3Client struct {
	objects map[string][]byte
}

func (f *fakeS3Client) PutObject(_ context.Context, input *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*input.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3Client) GetObject(_ context.Context, input *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*input.Key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3Client) DeleteObject(_ context.Context, input *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *input.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3ArtifactStore(t *testing.T) {
	ctx := context.Background()

	newStore := func() (*S3ArtifactStore, *fakeS3Client) {
		client := &fakeS3Client{objects: make(map[string][]byte)}
		return &S3ArtifactStore{client: client, bucket: "backups", prefix: "artifacts"}, client
	}

	t.Run("put prefixes the key and returns the download path", func(t *testing.T) {
		store, client := newStore()

		url, err := store.Put(ctx, "backup.json", []byte("payload"))
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if url != "/api/v1/downloads/backup.json" {
			t.Errorf("unexpected download path: %q", url)
		}
		if _, ok := client.objects["artifacts/backup.json"]; !ok {
			t.Errorf("expected prefixed key, stored keys: %v", keysOf(client.objects))
		}
	})

	t.Run("get round trip", func(t *testing.T) {
		store, _ := newStore()

		if _, err := store.Put(ctx, "backup.json", []byte("payload")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		data, err := store.Get(ctx, "backup.json")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(data) != "payload" {
			t.Errorf("unexpected content: %s", data)
		}
	})

	t.Run("delete removes the object", func(t *testing.T) {
		store, client := newStore()

		if _, err := store.Put(ctx, "backup.json", []byte("payload")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := store.Delete(ctx, "backup.json"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if len(client.objects) != 0 {
			t.Errorf("expected empty bucket, got %v", keysOf(client.objects))
		}
	})
}

func keysOf(m map[string][]byte) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return strings.Join(keys, ",")
}
