package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore keeps images on the local filesystem below root. References look
// like "<prefix>/<key>" so they can be served from a static directory.
type LocalStore struct {
	root   string
	prefix string
}

// NewLocalStore creates a filesystem store rooted at root.
func NewLocalStore(root, prefix string) *LocalStore {
	return &LocalStore{root: root, prefix: strings.Trim(prefix, "/")}
}

func (s *LocalStore) Save(ctx context.Context, key string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	full, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("close image: %w", err)
	}
	return path.Join(s.prefix, key), nil
}

func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := ref
	if s.prefix != "" {
		var ok bool
		key, ok = strings.CutPrefix(ref, s.prefix+"/")
		if !ok {
			return ErrInvalidReference
		}
	}
	full, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// resolve maps key to a path and refuses anything that escapes root.
func (s *LocalStore) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || clean != "/"+key {
		return "", ErrInvalidReference
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}
