package memory

import (
	"context"
	"sync"

	"igusafarm/internal/app/ports"
)

// Store keeps snapshots in process memory. Everything is lost on restart.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewStore() *Store {
	return &Store{
		snapshots: make(map[string][]byte),
	}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.snapshots[key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Put(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[key] = append([]byte(nil), payload...)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, key)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshots)
}
