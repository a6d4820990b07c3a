// Package storage persists uploaded images and hands back the reference stored on the owning record.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"regexp"
	"strings"
)

// MaxImageSize is the largest accepted upload.
const MaxImageSize = 16 << 20

// ErrInvalidReference is returned when asked to delete something the store does not own.
var ErrInvalidReference = errors.New("image reference not owned by this store")

var allowedExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {},
}

// ImageStore saves and removes image objects.
type ImageStore interface {
	// Save writes r under key and returns the reference to persist.
	Save(ctx context.Context, key string, r io.Reader) (string, error)
	// Delete removes a previously returned reference. Missing objects are not an error.
	Delete(ctx context.Context, ref string) error
}

// AllowedImage reports whether filename carries an accepted image extension.
func AllowedImage(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(path.Ext(filename))]
	return ok
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SafeFilename reduces an uploaded filename to a plain ASCII base name.
func SafeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	if name == "" {
		return "image"
	}
	return name
}
