// Package memory implements the storage interface using in-memory data
// structures. This is designed for --no-db mode and for tests, where
// collections live only for the duration of the process.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/storage"
)

// MemoryStore implements the storage.Store interface using a map.
type MemoryStore struct {
	mu     sync.RWMutex // Protects values and closed
	values map[string][]byte
	closed bool
}

// Verify MemoryStore implements storage.Store at compile time
var _ storage.Store = (*MemoryStore)(nil)

// New creates a new in-memory storage backend.
func New() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Read returns a copy of the value at key, or (nil, nil) when absent.
func (m *MemoryStore) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, storage.ErrClosed
	}
	data, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	// Copy so callers cannot mutate the stored value in place.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write replaces the value at key.
func (m *MemoryStore) Write(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return storage.ErrClosed
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.values[key] = stored
	return nil
}

// Keys returns all keys with the given prefix, sorted.
func (m *MemoryStore) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, storage.ErrClosed
	}
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Delete removes the value at key.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return storage.ErrClosed
	}
	delete(m.values, key)
	return nil
}

// Close marks the store closed.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
