package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/hirely-api/internal/config"
)

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type S3Storage struct {
	client    *s3.Client
	bucket    string
	region    string
	endpoint  string
	publicURL string
}

func NewS3(cfg *config.Config) *S3Storage {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	}

	// MinIO, R2 and friends
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Storage{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		region:    cfg.S3Region,
		endpoint:  cfg.S3Endpoint,
		publicURL: cfg.S3PublicURL,
	}
}

func (s *S3Storage) Upload(
	ctx context.Context,
	key string,
	contentType string,
	body []byte,
) (string, error) {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}

	return s.URL(key), nil
}

func (s *S3Storage) URL(key string) string {
	return ObjectURL(s.publicURL, s.endpoint, s.bucket, s.region, key)
}

// ObjectURL prefers S3_PUBLIC_URL, then a custom endpoint, then AWS
// virtual-hosted style.
func ObjectURL(publicURL, endpoint, bucket, region, key string) string {
	switch {
	case publicURL != "":
		return strings.TrimRight(publicURL, "/") + "/" + key
	case endpoint != "":
		return strings.TrimRight(endpoint, "/") + "/" + bucket + "/" + key
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
	}
}

func ProfileImageKey(userID uint) string {
	return fmt.Sprintf("profiles/%d/%s.webp", userID, uuid.NewString())
}
