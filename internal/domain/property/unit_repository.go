package property

import (
	"context"

	"github.com/google/uuid"
)

// UnitRepository defines the interface for unit persistence
type UnitRepository interface {
	// FindByID finds a unit by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Unit, error)

	// FindAll returns all units in insertion order
	FindAll(ctx context.Context) ([]Unit, error)

	// FindByApartment returns all units belonging to an apartment
	FindByApartment(ctx context.Context, apartmentID uuid.UUID) ([]Unit, error)

	// FindByStatus returns all units with the given status
	FindByStatus(ctx context.Context, status UnitStatus) ([]Unit, error)

	// ExistsByNumber checks whether a unit number is already used within an apartment
	ExistsByNumber(ctx context.Context, apartmentID uuid.UUID, unitNumber string) (bool, error)

	// Add appends a new unit, assigning an ID if absent
	Add(ctx context.Context, unit *Unit) error

	// Update replaces the stored unit with the same ID
	Update(ctx context.Context, unit *Unit) error

	// Delete removes a unit, reporting whether a record was removed
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
