// Package storage persists milestone submission files.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
)

// ObjectName builds a collision-free object name that keeps the upload's
// base name for readability.
func ObjectName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "file"
	}
	return uuid.NewString() + "-" + base
}

// LocalStore writes files under dir and returns a URL path under urlPrefix.
type LocalStore struct {
	dir       string
	urlPrefix string
}

// NewLocalStore creates dir if needed.
func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (s *LocalStore) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	obj := ObjectName(name)
	f, err := os.Create(filepath.Join(s.dir, obj))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return s.urlPrefix + "/" + obj, nil
}

// Dir is the directory served for uploaded files.
func (s *LocalStore) Dir() string { return s.dir }

var _ ports.FileStore = (*LocalStore)(nil)
