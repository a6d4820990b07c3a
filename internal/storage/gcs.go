package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

const gcsPublicHost = "https://storage.googleapis.com/"

// GCSStore keeps images in a Google Cloud Storage bucket and references them by public URL.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore creates a store on an existing client and bucket.
func NewGCSStore(client *storage.Client, bucket string) *GCSStore {
	return &GCSStore{client: client, bucket: bucket}
}

func (s *GCSStore) Save(ctx context.Context, key string, r io.Reader) (string, error) {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("upload to gcs: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close gcs writer: %w", err)
	}
	return s.URL(key), nil
}

func (s *GCSStore) Delete(ctx context.Context, ref string) error {
	key, ok := strings.CutPrefix(ref, s.URL(""))
	if !ok || key == "" {
		return ErrInvalidReference
	}
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("delete gcs object: %w", err)
	}
	return nil
}

// URL is the public address of key in the bucket.
func (s *GCSStore) URL(key string) string {
	return gcsPublicHost + s.bucket + "/" + key
}
