package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes uploaded files to a local directory. Records keep only the
// resulting path, never the bytes themselves.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed and returns a store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save persists a multipart upload under a fresh name and returns its path
// and the declared content type.
func (s *Store) Save(fh *multipart.FileHeader) (path, contentType string, err error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(fh.Filename)
	path = filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("create %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, fh.Header.Get("Content-Type"), nil
}
