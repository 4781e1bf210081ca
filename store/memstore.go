package store

import (
	"encoding/json"
	"sync"
)

// MemStore is an in-memory Store, used in tests and for throwaway runs.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Load(key string, dest interface{}) error {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (s *MemStore) Save(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}
