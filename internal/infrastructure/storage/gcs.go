package storage

import (
	"context"
	"io"

	"cloud.google.com/go/storage"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
)

// GCSStore writes files to a Google Cloud Storage bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore uses application default credentials.
func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

func (s *GCSStore) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	obj := "submissions/" + ObjectName(name)
	w := s.client.Bucket(s.bucket).Object(obj).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return "https://storage.googleapis.com/" + s.bucket + "/" + obj, nil
}

func (s *GCSStore) Close() error { return s.client.Close() }

var _ ports.FileStore = (*GCSStore)(nil)
