package store

import (
	"context"
	"sync"
)

// Store is a pluggable persistence layer for string values.
// The in-memory default suits CLI tools and tests; file, redis or SQL backends keep the token
// across restarts or processes.
type Store interface {
	// Get returns the value stored under key and whether it was found.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key; removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

type MemoryStoreOption func(*memoryStore)

// WithValue seeds the memory store with a value
func WithValue(key, value string) MemoryStoreOption {
	return func(m *memoryStore) {
		m.values[key] = value
	}
}

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func (m *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// snapshot returns a copy of all values
func (m *memoryStore) snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ret := make(map[string]string, len(m.values))
	for k, v := range m.values {
		ret[k] = v
	}
	return ret
}

func NewMemoryStore(options ...MemoryStoreOption) Store {
	ret := &memoryStore{values: map[string]string{}}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
