package persistence

// Slot holds a single optional record under its own store key, used for
// singleton documents such as site settings.
type Slot[T any] struct {
	store *Store
	key   string
}

// NewSlot binds a typed slot to a store key
func NewSlot[T any](store *Store, key string) *Slot[T] {
	return &Slot[T]{store: store, key: key}
}

// Get returns the stored record, or nil when the slot is empty
func (s *Slot[T]) Get() (*T, error) {
	var value *T
	if err := s.store.read(s.key, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// Set replaces the slot's content
func (s *Slot[T]) Set(value *T) error {
	return s.store.write(s.key, value)
}

// Clear empties the slot
func (s *Slot[T]) Clear() error {
	return s.store.write(s.key, nil)
}
