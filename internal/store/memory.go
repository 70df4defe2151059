package store

import (
	"encoding/json"
	"sync"
)

// MemoryStore keeps collections as marshaled JSON so loads hand out copies,
// same isolation as the database-backed store. Used by tests and ephemeral
// runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(collection string, out any) error {
	s.mu.RLock()
	raw, ok := s.data[collection]
	s.mu.RUnlock()
	if !ok {
		raw = []byte("[]")
	}
	return json.Unmarshal(raw, out)
}

func (s *MemoryStore) Save(collection string, records any) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[collection] = raw
	s.mu.Unlock()
	return nil
}
