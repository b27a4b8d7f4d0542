package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore keeps one JSON file per collection under a data directory
// (users.json, tasks.json, submissions.json). Saves go through a temp
// file and rename so a crash mid-write never leaves a half-written
// collection behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) Load(_ context.Context, collection string) ([]byte, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path(collection), err)
	}
	return data, nil
}

func (s *FileStore) Save(_ context.Context, collection string, data []byte) error {
	path := s.path(collection)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

func (s *FileStore) Quarantine(_ context.Context, collection string) error {
	path := s.path(collection)
	quarantined := fmt.Sprintf("%s.corrupt.%s", path, uuid.New().String())
	if err := os.Rename(path, quarantined); err != nil {
		return fmt.Errorf("quarantine %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
