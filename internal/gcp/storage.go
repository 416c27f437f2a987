package gcp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GetEnv is a helper to read an environment variable or return a default value.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ClientOptions builds the Google API client options shared by all GCP
// clients. When SERVICE_ACCOUNT_KEY is set it points at a service account key
// file; otherwise application default credentials apply.
func ClientOptions() []option.ClientOption {
	if keyFile := GetEnv("SERVICE_ACCOUNT_KEY", ""); keyFile != "" {
		return []option.ClientOption{option.WithCredentialsFile(keyFile)}
	}
	return nil
}

// BucketStore wraps a single GCS bucket with the byte-oriented operations the
// intake flows need. A second upload under the same object name silently
// overwrites the first.
type BucketStore struct {
	client *storage.Client
	bucket string
}

// NewBucketStore creates a storage client scoped to the given bucket.
func NewBucketStore(ctx context.Context, bucket string) (*BucketStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name must be provided to create a bucket store")
	}

	client, err := storage.NewClient(ctx, ClientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &BucketStore{client: client, bucket: bucket}, nil
}

// Upload writes data to the named object with the given content type.
func (s *BucketStore) Upload(ctx context.Context, objectName string, data []byte, contentType string) error {
	writer := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write to GCS object %s: %w", objectName, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize GCS write for %s: %w", objectName, err)
	}
	return nil
}

// Download reads back the full contents of the named object.
func (s *BucketStore) Download(ctx context.Context, objectName string) ([]byte, error) {
	reader, err := s.client.Bucket(s.bucket).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open GCS object %s: %w", objectName, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read GCS object %s: %w", objectName, err)
	}
	return data, nil
}

// PublicURL returns the canonical public URL for an object in the bucket.
func (s *BucketStore) PublicURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName)
}

// Close releases the underlying storage client.
func (s *BucketStore) Close() error {
	return s.client.Close()
}
