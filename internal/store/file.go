package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// File is a Backend storing each collection as <dir>/<key>.json.
type File struct {
	dir string
}

// NewFile creates the data directory if needed and returns a file backend
// rooted there.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("storage error creating data directory: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get reads the stored value for key. A missing file means the key has never
// been written.
func (f *File) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage error reading %s: %w", f.path(key), err)
	}
	return data, true, nil
}

// Put atomically replaces the stored value for key: write to a temp file,
// then rename over the target.
func (f *File) Put(key string, value []byte) error {
	path := f.path(key)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, value, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// Delete removes the stored value for key. A missing file is not an error.
func (f *File) Delete(key string) error {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage error removing %s: %w", f.path(key), err)
	}
	return nil
}

// Quarantine sets a corrupt file aside as <key>.json.corrupt so the data is
// kept for inspection while the collection restarts empty.
func (f *File) Quarantine(key string) {
	path := f.path(key)
	_ = os.Rename(path, path+".corrupt")
}
