package media

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/rohits-web03/myspace/internal/config"
)

// MinioStore keeps images in a self-hosted MinIO bucket.
type MinioStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
	now     func() time.Time
}

// NewMinioStore connects and creates the bucket when it is missing.
func NewMinioStore(ctx context.Context, cfg config.MediaConfig, log *slog.Logger) (*MinioStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("MEDIA_ENDPOINT is required for the minio media driver")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.BucketName, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.BucketName, err)
		}
		log.Info("Created media bucket", "bucket", cfg.BucketName)
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = client.EndpointURL().String() + "/" + cfg.BucketName
	}

	return &MinioStore{client: client, bucket: cfg.BucketName, baseURL: baseURL, now: time.Now}, nil
}

func (s *MinioStore) Upload(ctx context.Context, data []byte, contentType string) (Uploaded, error) {
	key := objectKey(s.now(), extensionFor(contentType))

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return Uploaded{}, fmt.Errorf("put object %s: %w", key, err)
	}
	return Uploaded{URL: publicURL(s.baseURL, key), ID: key}, nil
}

func (s *MinioStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	err := s.client.RemoveObject(ctx, s.bucket, id, minio.RemoveObjectOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return fmt.Errorf("remove object %s: %w", id, err)
	}
	return nil
}
