package storage

import (
	"context"
	"errors"
	"path"
	"strings"
)

var ErrInvalidKey = errors.New("invalid storage key")

// FileStorage stores blobs under a key and returns the public URL.
type FileStorage interface {
	Save(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// cleanKey rejects absolute keys and keys escaping the storage root.
func cleanKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
