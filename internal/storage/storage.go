package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kiri-yossy/bezihuri/internal/config"
)

// Storage abstracts where uploaded item images live.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	GetURL(ctx context.Context, path string) (string, error)
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

func NewStorage(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
