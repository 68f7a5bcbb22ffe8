package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type fileStore struct {
	dir string
}

// NewFileStore creates a store keeping one JSON file per slot under dir. The
// directory is created if it does not exist.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

func (s *fileStore) Read(ctx context.Context, slot string, dest interface{}) (bool, error) {
	data, err := os.ReadFile(s.path(slot))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read slot %s: %w", slot, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("slot %s: %w: %v", slot, ErrCorrupt, err)
	}
	return true, nil
}

func (s *fileStore) Write(ctx context.Context, slot string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serialize slot %s: %w", slot, err)
	}
	// Write through a temp file and rename so a crash mid-write cannot leave
	// a truncated slot behind.
	tmp, err := os.CreateTemp(s.dir, slot+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	if err := os.Rename(tmp.Name(), s.path(slot)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	return nil
}
