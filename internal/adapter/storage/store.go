// Package storage implements the audit image store on an S3-compatible
// object store (MinIO in development).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/heartmarshall/safety-audits/internal/config"
)

// Store writes objects into a single bucket and builds their public URLs.
type Store struct {
	client       *minio.Client
	bucket       string
	region       string
	publicBase   string
	cacheControl string
}

// New creates a Store from StorageConfig. No network call is made.
func New(cfg config.StorageConfig) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		u := client.EndpointURL()
		base = u.Scheme + "://" + u.Host
	}

	return &Store{
		client:       client,
		bucket:       cfg.Bucket,
		region:       cfg.Region,
		publicBase:   base,
		cacheControl: cfg.CacheControl,
	}, nil
}

// Bucket returns the configured bucket name.
func (s *Store) Bucket() string { return s.bucket }

// Put uploads data under path. Existing objects are overwritten by the
// backend; callers generate unique paths.
func (s *Store) Put(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: s.cacheControl,
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", path, err)
	}
	return nil
}

// Remove deletes the object at path.
func (s *Store) Remove(ctx context.Context, path string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", path, err)
	}
	return nil
}

// PublicURL returns the URL under which path is served.
func (s *Store) PublicURL(path string) string {
	return s.publicBase + "/" + s.bucket + "/" + strings.TrimLeft(path, "/")
}

// EnsureBucket creates the bucket when it does not exist yet.
// Reports whether it was created.
func (s *Store) EnsureBucket(ctx context.Context) (bool, error) {
	err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
	if err == nil {
		return true, nil
	}

	exists, existsErr := s.client.BucketExists(ctx, s.bucket)
	if existsErr == nil && exists {
		return false, nil
	}
	return false, fmt.Errorf("make bucket %s: %w", s.bucket, err)
}

// Ping checks that the bucket is reachable.
func (s *Store) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}
