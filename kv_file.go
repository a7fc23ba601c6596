package premiumo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileKV stores each key as a file in a directory. Keys map directly to file
// names, so callers must use path-safe keys (the storage keys are).
type FileKV struct {
	dir string
}

// NewFileKV returns a KV rooted at dir. The directory is created on the
// first write, not here, so a read-only run never touches the disk.
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileKV) Get(key string) (string, bool) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (f *FileKV) Set(key, value string) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("could not create storage directory %q: %w", f.dir, err)
	}
	if err := os.WriteFile(f.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", f.path(key), err)
	}
	return nil
}

func (f *FileKV) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not remove %q: %w", f.path(key), err)
	}
	return nil
}

var _ KV = (*FileKV)(nil)
