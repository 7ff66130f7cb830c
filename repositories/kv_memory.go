package repositories

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryKVStore is an in-process IKVStore with the same JSON round-trip and
// last-write-wins behavior as the GORM store. Used by tests and when the
// app runs without a database.
type MemoryKVStore struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

// NewMemoryKVStore creates an empty MemoryKVStore.
func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{data: make(map[string]map[string]string)}
}

func (s *MemoryKVStore) Get(_ context.Context, profileID, key string, dest any) bool {
	s.mu.RLock()
	raw, ok := s.data[profileID][key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

func (s *MemoryKVStore) Set(_ context.Context, profileID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[profileID] == nil {
		s.data[profileID] = make(map[string]string)
	}
	s.data[profileID][key] = string(raw)
	return nil
}

func (s *MemoryKVStore) Remove(_ context.Context, profileID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data[profileID], key)
	return nil
}

var _ IKVStore = (*MemoryKVStore)(nil)
