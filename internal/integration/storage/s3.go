package storage

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3Client is an interface for testability.
type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Config holds S3-compatible storage configuration.
type S3Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	KeyPrefix string
}

// S3ArtifactStore stores artifacts in an S3-compatible bucket. Downloads are
// still served through the API, so Put returns the API download path rather
// than a bucket URL.
type S3ArtifactStore struct {
	client s3Client
	bucket string
	prefix string
}

// NewS3ArtifactStore creates a store backed by the configured bucket.
func NewS3ArtifactStore(cfg S3Config) *S3ArtifactStore {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return &S3ArtifactStore{
		client: s3.New(opts),
		bucket: cfg.Bucket,
		prefix: cfg.KeyPrefix,
	}
}

func (s *S3ArtifactStore) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

// Put stores data under name and returns the download path.
func (s *S3ArtifactStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(name)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", err
	}
	return downloadPathPrefix + name, nil
}

// Get fetches a previously stored artifact by name.
func (s *S3ArtifactStore) Get(ctx context.Context, name string) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return nil, err
	}
	defer result.Body.Close()
	return io.ReadAll(result.Body)
}

// Delete removes an artifact. Deleting a missing artifact is not an error.
func (s *S3ArtifactStore) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	var notFound *types.NoSuchKey
	if err != nil && errors.As(err, &notFound) {
		return nil
	}
	return err
}
