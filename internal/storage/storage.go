package storage

import (
	"context"
	"fmt"
	"io"
)

// Logical blob areas. Paths handed to a Storage are always
// "<area>/<generated name>"; generated names never contain separators.
const (
	AreaUserFiles     = "user-files"
	AreaProfileImages = "profile-images"
)

// Storage abstracts the blob store under the metadata ledger.
type Storage interface {
	// Save stores a blob at the given path, creating parents as needed.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get opens a blob for reading.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, path string) error

	// Exists reports whether a blob is present.
	Exists(ctx context.Context, path string) (bool, error)

	// GetSize returns the size of a blob in bytes.
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for S3
	Region    string // for S3
	AccessKey string // for S3
	SecretKey string // for S3
	Endpoint  string // for S3-compatible providers
}

// NewStorage creates a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
