package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/visa-assistant/internal/config"
	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3API is the subset of *s3.Client used by S3Storage.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage keeps files in an S3-compatible bucket.
type S3Storage struct {
	client  s3API
	bucket  string
	baseURL string
	names   namer
	logger  *logger.Logger
}

// NewS3Storage connects to the bucket described by cfg. Static credentials
// are used when both keys are set, otherwise the default AWS chain applies.
// A custom endpoint (MinIO, localstack) switches to path-style addressing.
func NewS3Storage(ctx context.Context, cfg config.S3, log *logger.Logger) (*S3Storage, error) {
	if cfg.Region == "" || cfg.Bucket == "" {
		return nil, errors.New("s3 region and bucket are required")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Storage(client, cfg, log), nil
}

func newS3Storage(client s3API, cfg config.S3, log *logger.Logger) *S3Storage {
	return &S3Storage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: s3PublicURL(cfg),
		names:   defaultNamer(),
		logger:  log,
	}
}

// s3PublicURL picks the URL prefix of public objects: the configured one,
// the custom endpoint in path style, or the virtual-hosted AWS address.
func s3PublicURL(cfg config.S3) string {
	switch {
	case cfg.PublicURL != "":
		return strings.TrimRight(cfg.PublicURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

func (s *S3Storage) Store(ctx context.Context, dir string, img models.ImageUpload) (string, error) {
	if len(img.Content) == 0 {
		return "", ErrEmptyFile
	}

	key, err := objectPath(s.names, dir, img.Extension)
	if err != nil {
		return "", err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(img.Content),
		ContentLength: aws.Int64(int64(len(img.Content))),
	}
	if img.ContentType != "" {
		input.ContentType = aws.String(img.ContentType)
	}

	if _, err = s.client.PutObject(ctx, input); err != nil {
		s.logger.Err(err).Str("func", "*S3Storage.Store").Str("key", key).Msg("error putting object")
		return "", fmt.Errorf("%w: %w", ErrStoringFile, err)
	}

	return publicURL(s.baseURL, key), nil
}

func (s *S3Storage) Exists(ctx context.Context, key string) (bool, error) {
	if err := checkPath(key); err != nil {
		return false, err
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}

	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return false, nil
	}
	return false, err
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	if err := checkPath(key); err != nil {
		return err
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeletingFile, err)
	}
	return nil
}

func (s *S3Storage) PathFromURL(raw string) (string, bool) {
	return pathFromURL(s.baseURL, raw)
}
