// internal/app/system/filestore/local.go
package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local stores files under a base directory and serves them from a base
// URL. Paths are always slash-separated and relative to the root.
type Local struct {
	root    string
	baseURL string
}

// NewLocal returns a Local store rooted at dir. baseURL is the public
// prefix returned by URL, e.g. "http://localhost:8080/uploads".
func NewLocal(dir, baseURL string) (*Local, error) {
	if dir == "" {
		return nil, fmt.Errorf("filestore: root directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: creating root: %w", err)
	}
	return &Local{root: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) fullPath(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("filestore: invalid path %q", path)
	}
	return filepath.Join(l.root, clean), nil
}

// Put writes the file, creating parent directories as needed.
func (l *Local) Put(ctx context.Context, path string, r io.Reader, _ *PutOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := l.fullPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("filestore: creating directory: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("filestore: creating file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("filestore: writing file: %w", err)
	}
	return nil
}

// Delete removes the file. A missing file is not an error.
func (l *Local) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := l.fullPath(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("filestore: removing file: %w", err)
	}
	return nil
}

// URL returns the public URL for a stored path.
func (l *Local) URL(path string) string {
	return l.baseURL + "/" + strings.TrimLeft(path, "/")
}
