// Package storage uploads event images to an object store so that the event
// payload submitted to the API carries a durable URL instead of a device
// path.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"evento/pkg/utils"
)

// Config holds configuration for the image uploader
type Config struct {
	Provider        string // "s3" or "noop"
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string // base URL the bucket is served from
}

// Uploader resolves local image references into durable URLs
type Uploader interface {
	Resolve(ctx context.Context, imageRef, eventID string) (string, error)
}

// NewUploader creates an uploader from config. Provider "s3" uploads to AWS
// S3; "noop" or unknown passes image references through untouched.
func NewUploader(cfg Config) (Uploader, error) {
	switch cfg.Provider {
	case "s3":
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("storage: s3 provider requires a bucket")
		}
		awsCfg := aws.Config{
			Region: cfg.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretAccessKey,
					"",
				),
			),
		}
		return &s3Uploader{
			client:  s3.NewFromConfig(awsCfg),
			bucket:  cfg.Bucket,
			baseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		}, nil
	case "noop", "":
		return &noopUploader{}, nil
	default:
		utils.Log("unknown storage provider %q, using noop", cfg.Provider)
		return &noopUploader{}, nil
	}
}

// IsLocal reports whether imageRef points at the local filesystem rather
// than an already durable URL.
func IsLocal(imageRef string) bool {
	if strings.HasPrefix(imageRef, "http://") || strings.HasPrefix(imageRef, "https://") {
		return false
	}
	return imageRef != ""
}

type s3Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// Resolve uploads the file behind imageRef and returns its public URL.
// References that are already remote URLs pass through unchanged.
func (u *s3Uploader) Resolve(ctx context.Context, imageRef, eventID string) (string, error) {
	if !IsLocal(imageRef) {
		return imageRef, nil
	}

	path := strings.TrimPrefix(imageRef, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image %s: %w", path, err)
	}

	ext := filepath.Ext(path)
	key := fmt.Sprintf("events/%s-%s%s", eventID, uuid.NewString(), ext)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading image to s3: %w", err)
	}

	url := u.baseURL + "/" + key
	utils.Log("uploaded image %s as %s", path, url)
	return url, nil
}

type noopUploader struct{}

func (n *noopUploader) Resolve(ctx context.Context, imageRef, eventID string) (string, error) {
	return imageRef, nil
}
