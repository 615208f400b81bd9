package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileStore keeps one JSON file per key inside a data directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// backed by it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("storage: mkdir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Get reads the file for key. A missing file means the key was never set.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes the value for key. The write replaces the whole value, there
// is no partial update.
func (s *FileStore) Set(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	return nil
}

// LastSaved returns the modification time of the file backing key, or a
// zero time if the key has never been written. Used by the management
// view to show when the collection was last persisted.
func (s *FileStore) LastSaved(key string) time.Time {
	info, err := os.Stat(s.path(key))
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
