package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload writes a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Delete removes a file. A missing file is an error: callers that
	// sequence record deletes behind file deletes need the failure surfaced.
	Delete(ctx context.Context, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)

	// URL resolves a stored path to a public URL
	URL(path string) string
}
