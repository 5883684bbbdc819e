package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// BlobStorage stores rendered documents and uploaded assets
type BlobStorage interface {
	Upload(ctx context.Context, key string, contentType string, data []byte) error
	GetPublicURL(key string) string
}

type s3Storage struct {
	uploader *s3manager.Uploader
	bucket   string
	region   string
}

// NewS3Storage creates an S3-backed blob storage
func NewS3Storage(region, bucket string) (BlobStorage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &s3Storage{
		uploader: s3manager.NewUploader(sess),
		bucket:   bucket,
		region:   region,
	}, nil
}

func (s *s3Storage) Upload(ctx context.Context, key string, contentType string, data []byte) error {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

func (s *s3Storage) GetPublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// nullStorage discards uploads. Used when S3 is not configured so
// document rendering still works in local development.
type nullStorage struct{}

// NewNullStorage creates a storage that drops all uploads
func NewNullStorage() BlobStorage {
	return nullStorage{}
}

func (nullStorage) Upload(ctx context.Context, key string, contentType string, data []byte) error {
	return nil
}

func (nullStorage) GetPublicURL(key string) string {
	return ""
}
