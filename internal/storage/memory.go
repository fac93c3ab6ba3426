package storage

import (
	"context"
	"sync"
)

// MemoryStore implements Store with an in-process map.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[Key][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[Key][]byte)}
}

// Get returns a copy of the stored document.
func (s *MemoryStore) Get(_ context.Context, key Key) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.docs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Set stores a copy of value under key.
func (s *MemoryStore) Set(_ context.Context, key Key, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
