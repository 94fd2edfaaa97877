package persistence

import (
	"context"

	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/google/uuid"
)

// StoreTenantRepository implements tenancy.TenantRepository
type StoreTenantRepository struct {
	coll *Collection[tenancy.Tenant, *tenancy.Tenant]
}

// NewStoreTenantRepository creates a tenant repository over the store
func NewStoreTenantRepository(store *Store) *StoreTenantRepository {
	return &StoreTenantRepository{
		coll: NewCollection[tenancy.Tenant](store, keyTenants),
	}
}

// FindByID finds a tenant by its ID
func (r *StoreTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Tenant, error) {
	return r.coll.FindByID(id)
}

// FindAll returns all tenants in insertion order
func (r *StoreTenantRepository) FindAll(ctx context.Context) ([]tenancy.Tenant, error) {
	return r.coll.GetAll()
}

// FindByUnit returns all tenants leasing a unit
func (r *StoreTenantRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]tenancy.Tenant, error) {
	return r.coll.FindAll(func(t *tenancy.Tenant) bool {
		return t.UnitID == unitID
	})
}

// FindByApartment returns all tenants in an apartment
func (r *StoreTenantRepository) FindByApartment(ctx context.Context, apartmentID uuid.UUID) ([]tenancy.Tenant, error) {
	return r.coll.FindAll(func(t *tenancy.Tenant) bool {
		return t.ApartmentID == apartmentID
	})
}

// FindByEmail finds a tenant by exact email match
func (r *StoreTenantRepository) FindByEmail(ctx context.Context, email string) (*tenancy.Tenant, error) {
	return r.coll.FindFirst(func(t *tenancy.Tenant) bool {
		return t.Email == email
	})
}

// Add appends a new tenant
func (r *StoreTenantRepository) Add(ctx context.Context, tenant *tenancy.Tenant) error {
	return r.coll.Add(tenant)
}

// Update replaces the stored tenant with the same ID
func (r *StoreTenantRepository) Update(ctx context.Context, tenant *tenancy.Tenant) error {
	return r.coll.Update(tenant)
}

// Delete removes a tenant, reporting whether a record was removed
func (r *StoreTenantRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.coll.Delete(id)
}
