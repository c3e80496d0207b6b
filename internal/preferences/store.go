// Package preferences persists small per-session preference blobs such as
// the world clock city selection and the active countdown. Losing a blob
// is never fatal: readers fall back to defaults.
package preferences

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by a Store when no value is stored for a key.
var ErrNotFound = errors.New("preference not found")

// Store holds opaque preference blobs per session. Concurrent writes to
// the same key are last-write-wins.
type Store interface {
	Get(ctx context.Context, session, key string) ([]byte, error)
	Put(ctx context.Context, session, key string, value []byte) error
	Delete(ctx context.Context, session, key string) error
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func memoryKey(session, key string) string {
	return session + "\x00" + key
}

func (m *MemoryStore) Get(_ context.Context, session, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[memoryKey(session, key)]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) Put(_ context.Context, session, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[memoryKey(session, key)] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, session, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, memoryKey(session, key))
	return nil
}
