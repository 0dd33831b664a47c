// Package upload turns inline data-URI images into stored JPEG objects.
package upload

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/safety-audits/internal/domain"
)

const contentTypeJPEG = "image/jpeg"

// objectStore is the subset of the blob backend the uploader needs.
type objectStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) error
	Remove(ctx context.Context, path string) error
	PublicURL(path string) string
}

// Service uploads images and returns their public URLs.
type Service struct {
	log   *slog.Logger
	store objectStore
	now   func() time.Time
}

// NewService creates a new upload service.
func NewService(log *slog.Logger, store objectStore) *Service {
	return &Service{
		log:   log.With("service", "upload"),
		store: store,
		now:   time.Now,
	}
}

// Upload decodes a data URI and stores it at
// {folder}/{baseName}-{unixMillis}.jpg. Store errors are returned unchanged.
func (s *Service) Upload(ctx context.Context, dataURI, folder, baseName string) (string, error) {
	data, err := domain.DecodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	path := ObjectPath(folder, baseName, s.now())
	if err := s.store.Put(ctx, path, data, contentTypeJPEG); err != nil {
		return "", err
	}

	s.log.DebugContext(ctx, "image uploaded", slog.String("path", path), slog.Int("bytes", len(data)))
	return s.store.PublicURL(path), nil
}

// Delete removes a previously uploaded image given its public URL.
// URLs not produced by this store are ignored.
func (s *Service) Delete(ctx context.Context, publicURL string) error {
	prefix := s.store.PublicURL("")
	if !strings.HasPrefix(publicURL, prefix) {
		return nil
	}
	return s.store.Remove(ctx, strings.TrimPrefix(publicURL, prefix))
}

// ObjectPath builds the storage key for an image taken at t.
func ObjectPath(folder, baseName string, t time.Time) string {
	return fmt.Sprintf("%s/%s-%d.jpg", folder, baseName, t.UnixMilli())
}
