package storage

import (
	"context"
	"strconv"
	"sync"

	"weather-dashboard/internal/domain/model"
)

// MemoryStore keeps values in process memory. Values are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ KeyValueStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Health(_ context.Context) model.ComponentHealthStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"driver": s.Driver(),
			"keys":   strconv.Itoa(len(s.values)),
		},
	}
}

func (s *MemoryStore) Driver() string {
	return "memory"
}
