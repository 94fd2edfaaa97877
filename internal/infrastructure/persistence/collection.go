package persistence

import (
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// record is the contract every stored entity satisfies through BaseEntity
type record[T any] interface {
	*T
	RecordID() uuid.UUID
	EnsureID()
	Stamp()
	Touch()
}

// Collection provides typed access to one store document holding a slice of
// records. All reads return copies; callers never alias the stored slice.
type Collection[T any, PT record[T]] struct {
	store *Store
	key   string
}

// NewCollection binds a typed collection to a store key
func NewCollection[T any, PT record[T]](store *Store, key string) *Collection[T, PT] {
	return &Collection[T, PT]{store: store, key: key}
}

// GetAll returns every record in insertion order
func (c *Collection[T, PT]) GetAll() ([]T, error) {
	var items []T
	if err := c.store.read(c.key, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// FindByID returns the record with the given ID, or shared.ErrNotFound
func (c *Collection[T, PT]) FindByID(id uuid.UUID) (*T, error) {
	items, err := c.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if PT(&items[i]).RecordID() == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll returns every record matching pred, in insertion order
func (c *Collection[T, PT]) FindAll(pred func(*T) bool) ([]T, error) {
	items, err := c.GetAll()
	if err != nil {
		return nil, err
	}
	matched := []T{}
	for i := range items {
		if pred(&items[i]) {
			matched = append(matched, items[i])
		}
	}
	return matched, nil
}

// FindFirst returns the first record matching pred, or shared.ErrNotFound
func (c *Collection[T, PT]) FindFirst(pred func(*T) bool) (*T, error) {
	items, err := c.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if pred(&items[i]) {
			item := items[i]
			return &item, nil
		}
	}
	return nil, shared.ErrNotFound
}

// Count returns the number of stored records
func (c *Collection[T, PT]) Count() (int, error) {
	items, err := c.GetAll()
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Add appends item to the collection, assigning an ID and timestamps if
// absent, and rewrites the document.
func (c *Collection[T, PT]) Add(item PT) error {
	item.EnsureID()
	item.Stamp()

	var items []T
	return c.store.mutate(c.key, &items, func() (any, error) {
		items = append(items, *item)
		return items, nil
	})
}

// Update replaces the stored record with the same ID, refreshing its update
// timestamp. Returns shared.ErrNotFound if no record matches.
func (c *Collection[T, PT]) Update(item PT) error {
	item.Touch()

	var items []T
	return c.store.mutate(c.key, &items, func() (any, error) {
		for i := range items {
			if PT(&items[i]).RecordID() == item.RecordID() {
				items[i] = *item
				return items, nil
			}
		}
		return nil, shared.ErrNotFound
	})
}

// Delete removes the record with the given ID, reporting whether a record
// was removed. A missing ID is not an error.
func (c *Collection[T, PT]) Delete(id uuid.UUID) (bool, error) {
	removed := false

	var items []T
	err := c.store.mutate(c.key, &items, func() (any, error) {
		for i := range items {
			if PT(&items[i]).RecordID() == id {
				items = append(items[:i], items[i+1:]...)
				removed = true
				break
			}
		}
		return items, nil
	})
	if err != nil {
		return false, err
	}

	return removed, nil
}

// Replace swaps the whole collection for items in one write
func (c *Collection[T, PT]) Replace(items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.store.write(c.key, items)
}
