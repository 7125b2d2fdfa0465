// Package repo provides typed repositories over named collections.
//
// A repository reads the full collection, mutates the relevant record and
// writes the full collection back. Every read/mutate/write cycle holds a
// per-collection mutex, so two callers in the same process cannot lose
// each other's writes.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/storage"
)

// Sentinel errors returned by repositories.
var (
	// ErrNotFound is returned by GetByID and Update when no record with
	// the given id exists. Update leaves the collection untouched.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is returned by Save when a record with the same id
	// already exists in the collection.
	ErrDuplicateID = errors.New("duplicate record id")
)

// Record is anything a collection can hold.
type Record interface {
	RecordID() string
}

// lockTable hands out one mutex per collection key.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*sync.Mutex)}
}

func (lt *lockTable) forKey(key string) *sync.Mutex {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	l, ok := lt.locks[key]
	if !ok {
		l = &sync.Mutex{}
		lt.locks[key] = l
	}
	return l
}

// Collection is the generic CRUD surface over one named collection.
// Insertion order is preserved; every operation is a linear scan.
type Collection[T Record] struct {
	store storage.Store
	key   string
	lock  *sync.Mutex
}

func newCollection[T Record](store storage.Store, locks *lockTable, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key, lock: locks.forKey(key)}
}

// Key returns the storage key the collection persists under.
func (c *Collection[T]) Key() string { return c.key }

// load deserializes the whole collection. Absent or unparseable data is
// treated as an empty collection, never as an error.
func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	data, err := c.store.Read(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c.key, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		// Corrupt data reads as "no data".
		return nil, nil
	}
	return records, nil
}

// persist serializes and writes the whole collection back.
func (c *Collection[T]) persist(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", c.key, err)
	}
	if err := c.store.Write(ctx, c.key, data); err != nil {
		return fmt.Errorf("persisting %s: %w", c.key, err)
	}
	return nil
}

// GetAll returns every record in insertion order.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.load(ctx)
}

// GetByID returns the record with the given id, or ErrNotFound.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	records, err := c.GetAll(ctx)
	if err != nil {
		return zero, err
	}
	for _, r := range records {
		if r.RecordID() == id {
			return r, nil
		}
	}
	return zero, fmt.Errorf("%s %q: %w", c.key, id, ErrNotFound)
}

// Save appends the record to the collection and persists it. Saving an
// id that already exists is rejected rather than silently duplicated.
func (c *Collection[T]) Save(ctx context.Context, record T) (T, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return record, err
	}
	for _, r := range records {
		if r.RecordID() == record.RecordID() {
			return record, fmt.Errorf("%s %q: %w", c.key, record.RecordID(), ErrDuplicateID)
		}
	}
	if err := c.persist(ctx, append(records, record)); err != nil {
		return record, err
	}
	return record, nil
}

// Update replaces the record whose id matches and persists the
// collection. When no record matches, the persisted collection is left
// byte-identical and ErrNotFound is returned so callers can branch.
func (c *Collection[T]) Update(ctx context.Context, record T) (T, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return record, err
	}
	for i, r := range records {
		if r.RecordID() == record.RecordID() {
			records[i] = record
			if err := c.persist(ctx, records); err != nil {
				return record, err
			}
			return record, nil
		}
	}
	return record, fmt.Errorf("%s %q: %w", c.key, record.RecordID(), ErrNotFound)
}
