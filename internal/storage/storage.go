// Package storage keeps uploaded files on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/localnerve/innohub/internal/models"
)

var (
	// ErrInvalidKey is returned for keys that were not produced by Save
	ErrInvalidKey = errors.New("invalid storage key")
	// ErrNotFound is returned when no file exists for a key
	ErrNotFound = errors.New("stored file not found")
)

var keyPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}(\.[a-z0-9]{1,8})?$`)
var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// FileStore stores blobs under Root, one file per key
type FileStore struct {
	Root string
}

// NewFileStore creates the root directory when missing
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", root, err)
	}
	return &FileStore{Root: root}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.Root, key), nil
}

// Save copies r into a new file and returns its key and size.
// ext is kept on the key when it is a short lower-case extension such as ".pdf".
func (s *FileStore) Save(r io.Reader, ext string) (string, int64, error) {
	key := models.NewID()
	if extPattern.MatchString(ext) {
		key += ext
	}

	tmp, err := os.CreateTemp(s.Root, ".upload-*")
	if err != nil {
		return "", 0, err
	}
	defer os.Remove(tmp.Name())

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return "", 0, err
	}
	if err := tmp.Close(); err != nil {
		return "", 0, err
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.Root, key)); err != nil {
		return "", 0, err
	}
	return key, size, nil
}

// Open returns the stored file for reading
func (s *FileStore) Open(key string) (*os.File, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return f, err
}

// Remove deletes the stored file; a missing file is not an error
func (s *FileStore) Remove(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
