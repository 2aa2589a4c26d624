package storage

import (
	"context"
	"io"
)

// Storage is the interface for resume file storage.
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file
	GetURL(ctx context.Context, path string) (string, error)

	// GetSize returns the size of a file in bytes
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config holds storage configuration.
type Config struct {
	BasePath string // root directory for stored files
	BaseURL  string // public URL base
}

// NewStorage creates a storage instance. Only the local-disk backend is
// supported; the interface leaves room for object stores.
func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
