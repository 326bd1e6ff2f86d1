package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage is the blob store the content entities keep their images and
// files in: write, read back, remove, and resolve a public URL. Object
// names are slash-separated keys like "projects/main/app.png".
type Storage interface {
	Save(ctx context.Context, name string, r io.Reader, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Remove(ctx context.Context, name string) error
	URL(name string) string
}

// DiskStorage keeps objects under a base directory on the local filesystem
// and serves them under a public URL prefix.
type DiskStorage struct {
	baseDir   string
	urlPrefix string
}

func NewDiskStorage(baseDir, urlPrefix string) (*DiskStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media base dir %s: %w", baseDir, err)
	}
	return &DiskStorage{baseDir: baseDir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (s *DiskStorage) path(name string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(name))
}

func (s *DiskStorage) Save(ctx context.Context, name string, r io.Reader, contentType string) error {
	full := s.path(name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := os.Create(full)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return err
	}
	return f.Close()
}

func (s *DiskStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(s.path(name))
}

func (s *DiskStorage) Remove(ctx context.Context, name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *DiskStorage) URL(name string) string {
	return s.urlPrefix + "/" + name
}
