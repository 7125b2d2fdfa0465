// Package storage defines the interface for collection storage backends.
//
// A backend is a durable key space: each key holds the serialized JSON
// array for one whole collection. Backends know nothing about record
// shapes or domain rules; those live in the repo layer.
package storage

import (
	"context"
	"errors"
)

// Sentinel errors shared by all backends.
var (
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store is closed")
)

// Store reads and writes whole collections by key.
type Store interface {
	// Read returns the raw value at key, or (nil, nil) if the key is
	// absent. Callers treat unparseable values as "no data".
	Read(ctx context.Context, key string) ([]byte, error)

	// Write replaces the value at key atomically from the caller's
	// point of view.
	Write(ctx context.Context, key string, data []byte) error

	// Keys returns all keys with the given prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Delete removes the value at key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases the backend. Further calls return ErrClosed.
	Close() error
}
