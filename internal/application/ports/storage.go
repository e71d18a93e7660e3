package ports

import (
	"context"
	"io"
)

// FileStore persists uploaded submission artifacts and returns an opaque
// reference (a path or URL) that is stored as the submission value.
type FileStore interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}
