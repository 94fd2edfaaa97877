package property

import (
	"context"

	"github.com/google/uuid"
)

// ApartmentRepository defines the interface for apartment persistence
type ApartmentRepository interface {
	// FindByID finds an apartment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Apartment, error)

	// FindAll returns all apartments in insertion order
	FindAll(ctx context.Context) ([]Apartment, error)

	// Add appends a new apartment, assigning an ID if absent
	Add(ctx context.Context, apartment *Apartment) error

	// Update replaces the stored apartment with the same ID
	Update(ctx context.Context, apartment *Apartment) error

	// Delete removes an apartment, reporting whether a record was removed
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
