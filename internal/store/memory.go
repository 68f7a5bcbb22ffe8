package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

type memoryStore struct {
	mu    sync.Mutex
	slots map[string][]byte
}

// NewMemoryStore creates a store that keeps slots in process memory. It is
// the explicit stand-in for a missing durable medium and backs tests.
func NewMemoryStore() Store {
	return &memoryStore{slots: make(map[string][]byte)}
}

func (s *memoryStore) Read(ctx context.Context, slot string, dest interface{}) (bool, error) {
	s.mu.Lock()
	data, ok := s.slots[slot]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("slot %s: %w: %v", slot, ErrCorrupt, err)
	}
	return true, nil
}

func (s *memoryStore) Write(ctx context.Context, slot string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serialize slot %s: %w", slot, err)
	}
	s.mu.Lock()
	s.slots[slot] = data
	s.mu.Unlock()
	return nil
}
