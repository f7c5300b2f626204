// Package dataset loads the BBL statistics CSV files into an immutable
// in-memory store at process startup. Nothing in this package mutates the
// store after Load returns.
package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// Source yields raw dataset files by file name.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// FileSource reads dataset files from a local directory.
type FileSource struct {
	Dir string
}

// Open opens the named file under the source directory.
func (s FileSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", name, err)
	}
	return f, nil
}

// BlobSource reads dataset files from object storage under a key prefix.
type BlobSource struct {
	Reader domain.BlobReader
	Prefix string
}

// Open fetches the named object from the blob store.
func (s BlobSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)
	rc, err := s.Reader.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("dataset: fetch %s: %w", key, err)
	}
	return rc, nil
}

// Check verifies the named objects exist so a misconfigured bucket or
// prefix fails startup with a clear error rather than a mid-load fetch
// failure.
func (s BlobSource) Check(ctx context.Context, names ...string) error {
	for _, name := range names {
		key := s.key(name)
		ok, err := s.Reader.Exists(ctx, key)
		if err != nil {
			return fmt.Errorf("dataset: check %s: %w", key, err)
		}
		if !ok {
			return fmt.Errorf("dataset: check %s: %w", key, domain.ErrNotFound)
		}
	}
	return nil
}

func (s BlobSource) key(name string) string {
	if s.Prefix == "" {
		return name
	}
	return path.Join(s.Prefix, name)
}
