package media

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rohits-web03/myspace/internal/config"
)

// objectAPI is the part of the S3 client the store needs.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// R2Store keeps images in a Cloudflare R2 bucket through the S3 API. Any
// S3 compatible endpoint works when MEDIA_ENDPOINT is set.
type R2Store struct {
	client  objectAPI
	bucket  string
	baseURL string
	now     func() time.Time
}

// NewR2Store initializes the client using static credentials and custom endpoint.
func NewR2Store(cfg config.MediaConfig, log *slog.Logger) (*R2Store, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		if cfg.AccountID == "" {
			return nil, fmt.Errorf("R2_ACCOUNT_ID or MEDIA_ENDPOINT is required")
		}
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	}

	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = endpoint + "/" + cfg.BucketName
	}

	log.Info("Successfully initialized R2 client", "bucket", cfg.BucketName)
	return newR2Store(client, cfg.BucketName, baseURL), nil
}

func newR2Store(client objectAPI, bucket, baseURL string) *R2Store {
	return &R2Store{client: client, bucket: bucket, baseURL: baseURL, now: time.Now}
}

func (s *R2Store) Upload(ctx context.Context, data []byte, contentType string) (Uploaded, error) {
	key := objectKey(s.now(), extensionFor(contentType))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return Uploaded{}, fmt.Errorf("put object %s: %w", key, err)
	}
	return Uploaded{URL: publicURL(s.baseURL, key), ID: key}, nil
}

// Delete succeeds for keys that no longer exist; S3 DeleteObject is
// idempotent.
func (s *R2Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", id, err)
	}
	return nil
}
