package tenancy

import (
	"context"

	"github.com/google/uuid"
)

// TenantRepository defines the interface for tenant persistence
type TenantRepository interface {
	// FindByID finds a tenant by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)

	// FindAll returns all tenants in insertion order
	FindAll(ctx context.Context) ([]Tenant, error)

	// FindByUnit returns all tenants assigned to a unit
	FindByUnit(ctx context.Context, unitID uuid.UUID) ([]Tenant, error)

	// FindByApartment returns all tenants living in an apartment
	FindByApartment(ctx context.Context, apartmentID uuid.UUID) ([]Tenant, error)

	// FindByEmail finds a tenant by email (case-sensitive exact match)
	FindByEmail(ctx context.Context, email string) (*Tenant, error)

	// Add appends a new tenant, assigning an ID if absent
	Add(ctx context.Context, tenant *Tenant) error

	// Update replaces the stored tenant with the same ID
	Update(ctx context.Context, tenant *Tenant) error

	// Delete removes a tenant, reporting whether a record was removed
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
