package seedstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath is where the seed is persisted when no path is configured.
const DefaultPath = "/data/seed.txt"

// FileBackend keeps the seed in a single file. Writes go through a temp file
// in the same directory followed by a rename, so readers never observe a
// partially written seed.
type FileBackend struct {
	path string
}

// NewFileBackend returns a backend rooted at path, or DefaultPath if empty.
func NewFileBackend(path string) *FileBackend {
	if path == "" {
		path = DefaultPath
	}
	return &FileBackend{path: path}
}

// Path returns the file location.
func (b *FileBackend) Path() string { return b.path }

// Read returns the file contents, or ErrNotFound when it does not exist.
func (b *FileBackend) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}
	return data, nil
}

// Write replaces the file atomically: temp file, fsync, rename. Mode 0600.
func (b *FileBackend) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}

	tmp, err := os.CreateTemp(dir, ".seed-*")
	if err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return errors.Join(ErrWriteFailed, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Join(ErrWriteFailed, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Join(ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

// Check reports whether the parent directory exists and is a directory.
func (b *FileBackend) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(filepath.Dir(b.path))
	if err != nil {
		return errors.Join(ErrReadFailed, err)
	}
	if !info.IsDir() {
		return errors.Join(ErrReadFailed, &fs.PathError{Op: "stat", Path: filepath.Dir(b.path), Err: fs.ErrInvalid})
	}
	return nil
}
