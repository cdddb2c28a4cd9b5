package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// S3ServiceImpl implements domain.FileStore over an S3 bucket
type S3ServiceImpl struct {
	uploader *manager.Uploader
	bucket   string
	region   string
}

// NewS3Service creates a new S3 file store
func NewS3Service(ctx context.Context, bucket, region string) (domain.FileStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3ServiceImpl{
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		region:   region,
	}, nil
}

// Upload implements domain.FileStore. Object keys are prefixed with a uuid
// so repeated uploads of the same filename never collide.
func (s *S3ServiceImpl) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := uuid.NewString() + path.Ext(filename)

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
