package persistence

import (
	"context"

	"github.com/dovepeak/backend/internal/domain/maintenance"
	"github.com/google/uuid"
)

// StoreMaintenanceRepository implements maintenance.RequestRepository
type StoreMaintenanceRepository struct {
	coll *Collection[maintenance.Request, *maintenance.Request]
}

// NewStoreMaintenanceRepository creates a maintenance repository over the store
func NewStoreMaintenanceRepository(store *Store) *StoreMaintenanceRepository {
	return &StoreMaintenanceRepository{
		coll: NewCollection[maintenance.Request](store, keyMaintenance),
	}
}

// FindByID finds a request by its ID
func (r *StoreMaintenanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.Request, error) {
	return r.coll.FindByID(id)
}

// FindAll returns all requests in insertion order
func (r *StoreMaintenanceRepository) FindAll(ctx context.Context) ([]maintenance.Request, error) {
	return r.coll.GetAll()
}

// FindByTenant returns all requests raised by a tenant
func (r *StoreMaintenanceRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]maintenance.Request, error) {
	return r.coll.FindAll(func(req *maintenance.Request) bool {
		return req.TenantID == tenantID
	})
}

// FindByApartment returns all requests for units in an apartment
func (r *StoreMaintenanceRepository) FindByApartment(ctx context.Context, apartmentID uuid.UUID) ([]maintenance.Request, error) {
	return r.coll.FindAll(func(req *maintenance.Request) bool {
		return req.ApartmentID == apartmentID
	})
}

// FindByStatus returns all requests with the given status
func (r *StoreMaintenanceRepository) FindByStatus(ctx context.Context, status maintenance.Status) ([]maintenance.Request, error) {
	return r.coll.FindAll(func(req *maintenance.Request) bool {
		return req.Status == status
	})
}

// Add appends a new request
func (r *StoreMaintenanceRepository) Add(ctx context.Context, request *maintenance.Request) error {
	return r.coll.Add(request)
}

// Update replaces the stored request with the same ID
func (r *StoreMaintenanceRepository) Update(ctx context.Context, request *maintenance.Request) error {
	return r.coll.Update(request)
}

// Delete removes a request, reporting whether a record was removed
func (r *StoreMaintenanceRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.coll.Delete(id)
}
