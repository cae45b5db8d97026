package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// FileStore persists uploaded files under a single directory and hands
// back the public path they will be served from.
type FileStore struct {
	dir       string
	publicURL string
}

// NewFileStore creates the upload directory if needed. publicURL is the
// URL prefix the directory is served under (e.g. "/uploads").
func NewFileStore(dir, publicURL string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileStore{dir: dir, publicURL: publicURL}, nil
}

// Dir returns the on-disk upload directory.
func (fs *FileStore) Dir() string {
	return fs.dir
}

// Save writes the uploaded file to disk under a collision-free name
// (nanosecond timestamp plus the original extension) and returns the
// public path. A nil file header is a no-op and returns nil.
func (fs *FileStore) Save(file *multipart.FileHeader) (*string, error) {
	if file == nil {
		return nil, nil
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))

	dst, err := os.Create(filepath.Join(fs.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	publicPath := fs.publicURL + "/" + name
	return &publicPath, nil
}
