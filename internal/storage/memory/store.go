// Package memory provides an in-memory slot store, used as the test backend.
package memory

import (
	"context"
	"sync"

	"github.com/entnt/dentalcare-server/internal/model"
)

var _ model.SlotStore = (*Store)(nil)

// Store keeps slot values in a map. Values are copied on the way in and out
// so callers cannot alias the stored bytes.
type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{slots: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.slots[key] = stored
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}

func (s *Store) Close() error {
	return nil
}
