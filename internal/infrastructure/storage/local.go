package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"revu/internal/domain/media"
	"revu/internal/shared/logger"
)

// LocalBlobStore keeps image blobs on the local filesystem under a media
// directory. Stored names are prefixed with a random UUID so uploads with
// the same filename never collide.
type LocalBlobStore struct {
	mediaDir string
	logger   logger.Interface
}

func NewLocalBlobStore(mediaDir string, logger logger.Interface) (*LocalBlobStore, error) {
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &LocalBlobStore{mediaDir: mediaDir, logger: logger}, nil
}

// Save writes the blob and returns the path to store on the record.
func (s *LocalBlobStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	stored := uuid.NewString() + "_" + filepath.Base(name)
	path := filepath.Join(s.mediaDir, stored)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Errorw("failed to write blob", "path", path, "error", err)
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	s.logger.Debugw("blob stored", "path", path, "bytes", len(data))
	return path, nil
}

// Delete removes a stored blob. A missing file is not an error; the record
// pointing at it is already gone or never existed.
func (s *LocalBlobStore) Delete(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		s.logger.Errorw("failed to delete blob", "path", path, "error", err)
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	s.logger.Debugw("blob deleted", "path", path)
	return nil
}

var _ media.BlobStore = (*LocalBlobStore)(nil)
