package domain

import (
	"context"
	"io"
)

// BlobReader retrieves dataset objects from object storage.
type BlobReader interface {
	// Get returns the object body at path. The caller closes the reader.
	// Returns ErrNotFound when the object does not exist.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists reports whether an object exists at path without fetching it.
	Exists(ctx context.Context, path string) (bool, error)
}
