package integration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

var ErrStorageDisabled = errors.New("object storage is disabled")

// AvatarStorage keeps profile pictures in an object store.
type AvatarStorage interface {
	Upload(ctx context.Context, key string, content io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PresignedURL(ctx context.Context, key string) (string, error)
}

type minioAvatarStorage struct {
	client *minio.Client
	bucket string
	region string
	expiry time.Duration
	logger zerolog.Logger

	ensureMu      sync.Mutex
	bucketEnsured bool
}

func NewMinIOAvatarStorage(cfg config.StorageConfig, logger zerolog.Logger) (AvatarStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = time.Hour
	}

	storage := &minioAvatarStorage{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		expiry: expiry,
		logger: logger,
	}

	// A store that is not up yet is retried on the first upload.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := storage.ensureBucket(ctx); err != nil {
		logger.Warn().Err(err).
			Str("endpoint", cfg.Endpoint).
			Str("bucket", cfg.Bucket).
			Msg("MinIO not ready during startup")
	}

	logger.Info().
		Str("endpoint", cfg.Endpoint).
		Str("bucket", cfg.Bucket).
		Bool("ssl", cfg.UseSSL).
		Msg("Connected to MinIO")

	return storage, nil
}

func (s *minioAvatarStorage) ensureBucket(ctx context.Context) error {
	s.ensureMu.Lock()
	defer s.ensureMu.Unlock()
	if s.bucketEnsured {
		return nil
	}

	backoff := 500 * time.Millisecond
	for {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err == nil && !exists {
			err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
			if err == nil {
				s.logger.Info().Str("bucket", s.bucket).Msg("Created new bucket")
			}
		}
		if err == nil {
			s.bucketEnsured = true
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("minio not ready: %w", err)
		case <-time.After(backoff):
		}
		backoff = nextBackoff(backoff)
	}
}

const maxBucketBackoff = 8 * time.Second

func nextBackoff(d time.Duration) time.Duration {
	if d *= 2; d > maxBucketBackoff {
		return maxBucketBackoff
	}
	return d
}

func (s *minioAvatarStorage) Upload(ctx context.Context, key string, content io.Reader, size int64, contentType string) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}

	s.logger.Debug().
		Str("key", key).
		Int64("size", info.Size).
		Msg("Avatar uploaded")

	return nil
}

func (s *minioAvatarStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (s *minioAvatarStorage) PresignedURL(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign object: %w", err)
	}
	return u.String(), nil
}

type disabledAvatarStorage struct{}

func NewDisabledAvatarStorage() AvatarStorage {
	return disabledAvatarStorage{}
}

func (disabledAvatarStorage) Upload(context.Context, string, io.Reader, int64, string) error {
	return ErrStorageDisabled
}

func (disabledAvatarStorage) Delete(context.Context, string) error {
	return ErrStorageDisabled
}

func (disabledAvatarStorage) PresignedURL(context.Context, string) (string, error) {
	return "", ErrStorageDisabled
}
