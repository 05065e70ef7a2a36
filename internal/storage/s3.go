package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sahayognepal/charity-backend/config"
)

// S3Storage stores objects in an S3-compatible bucket (AWS S3, MinIO, Supabase storage gateway).
type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Storage(cfg *config.Config) (*S3Storage, error) {
	if cfg.StorageBucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.StorageAccessKey == "" || cfg.StorageSecretKey == "" {
		return nil, errors.New("storage credentials are required")
	}

	region := cfg.StorageRegion
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.StorageEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.StorageEndpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.StoragePublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.StorageBucket, region)
	}

	return &S3Storage{
		client:    client,
		bucket:    cfg.StorageBucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	if err := ValidateImage(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	key := objectKey(folder, file.Filename)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentType:   aws.String(contentTypeFor(file.Filename)),
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return s.publicURL + "/" + key, nil
}

func (s *S3Storage) Delete(ctx context.Context, publicURL string) error {
	key := strings.TrimPrefix(publicURL, s.publicURL+"/")
	if key == "" || key == publicURL {
		return fmt.Errorf("URL %q does not belong to this bucket", publicURL)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
