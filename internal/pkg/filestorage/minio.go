package filestorage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/oalia/scholarsite/internal/pkg/logger"
)

// MinioStorage implements ObjectStorage against a MinIO/S3 compatible server.
type MinioStorage struct {
	client    *minio.Client
	endpoint  string
	publicURL string
	useSSL    bool
}

// MinioConfig holds the connection settings for the object store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	// PublicURL overrides the endpoint when building object URLs, for
	// deployments where the store sits behind a CDN or reverse proxy.
	PublicURL string
	Buckets   []string
}

// NewMinioStorage connects to the object store and ensures the configured
// buckets exist.
func NewMinioStorage(cfg MinioConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		logger.Error().Err(err).Str("endpoint", cfg.Endpoint).Msg("Failed to initialize object storage client")
		return nil, fmt.Errorf("init object storage client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, bucket := range cfg.Buckets {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
			}
			logger.Info().Str("bucket", bucket).Msg("Storage bucket created")
		}
	}

	return &MinioStorage{
		client:    client,
		endpoint:  cfg.Endpoint,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		useSSL:    cfg.UseSSL,
	}, nil
}

// Upload stores an object under the given bucket and key.
func (m *MinioStorage) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.Error().Err(err).Str("bucket", bucket).Str("key", key).Msg("Failed to upload object")
		return fmt.Errorf("put object: %w", err)
	}
	logger.Info().Str("bucket", bucket).Str("key", key).Int64("size", size).Msg("Object uploaded")
	return nil
}

// PublicURL builds the durable URL under which an uploaded object is served.
func (m *MinioStorage) PublicURL(bucket, key string) string {
	if m.publicURL != "" {
		return m.publicURL + "/" + bucket + "/" + key
	}
	scheme := "http"
	if m.useSSL {
		scheme = "https"
	}
	return scheme + "://" + m.endpoint + "/" + bucket + "/" + key
}

// Remove deletes the given objects. Missing objects are not an error.
func (m *MinioStorage) Remove(ctx context.Context, bucket string, keys ...string) error {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := m.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
			logger.Error().Err(err).Str("bucket", bucket).Str("key", key).Msg("Failed to remove object")
			return fmt.Errorf("remove object %s: %w", key, err)
		}
	}
	return nil
}
