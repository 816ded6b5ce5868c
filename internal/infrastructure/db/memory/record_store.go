// Package memory provides an in-process RecordStore used by tests and local
// development. It mirrors the durable backends' semantics: wholesale
// overwrite per key, copies in and out, no cross-key coordination.
package memory

import (
	"context"
	"sync"
)

type RecordStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewRecordStore() *RecordStore {
	return &RecordStore{data: make(map[string][]byte)}
}

func (s *RecordStore) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (s *RecordStore) Write(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = stored
	return nil
}
