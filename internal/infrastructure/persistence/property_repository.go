package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/dovepeak/backend/internal/domain/property"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Store keys, one JSON document each
const (
	keyApartments    = "apartments"
	keyUnits         = "units"
	keyTenants       = "tenants"
	keyPayments      = "payments"
	keyMaintenance   = "maintenance"
	keyNotifications = "notifications"
	keyAdmins        = "admin_users"
	keyManagers      = "property_managers"
	keyTenantUsers   = "tenant_users"
	keyAuditLogs     = "audit_logs"
	keySettings      = "system_settings"
)

// StoreApartmentRepository implements property.ApartmentRepository
type StoreApartmentRepository struct {
	coll *Collection[property.Apartment, *property.Apartment]
}

// NewStoreApartmentRepository creates an apartment repository over the store
func NewStoreApartmentRepository(store *Store) *StoreApartmentRepository {
	return &StoreApartmentRepository{
		coll: NewCollection[property.Apartment](store, keyApartments),
	}
}

// FindByID finds an apartment by its ID
func (r *StoreApartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Apartment, error) {
	return r.coll.FindByID(id)
}

// FindAll returns all apartments in insertion order
func (r *StoreApartmentRepository) FindAll(ctx context.Context) ([]property.Apartment, error) {
	return r.coll.GetAll()
}

// Add appends a new apartment
func (r *StoreApartmentRepository) Add(ctx context.Context, apartment *property.Apartment) error {
	return r.coll.Add(apartment)
}

// Update replaces the stored apartment with the same ID
func (r *StoreApartmentRepository) Update(ctx context.Context, apartment *property.Apartment) error {
	return r.coll.Update(apartment)
}

// Delete removes an apartment, reporting whether a record was removed
func (r *StoreApartmentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.coll.Delete(id)
}

// StoreUnitRepository implements property.UnitRepository
type StoreUnitRepository struct {
	coll *Collection[property.Unit, *property.Unit]
}

// NewStoreUnitRepository creates a unit repository over the store
func NewStoreUnitRepository(store *Store) *StoreUnitRepository {
	return &StoreUnitRepository{
		coll: NewCollection[property.Unit](store, keyUnits),
	}
}

// FindByID finds a unit by its ID
func (r *StoreUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Unit, error) {
	return r.coll.FindByID(id)
}

// FindAll returns all units in insertion order
func (r *StoreUnitRepository) FindAll(ctx context.Context) ([]property.Unit, error) {
	return r.coll.GetAll()
}

// FindByApartment returns all units belonging to an apartment
func (r *StoreUnitRepository) FindByApartment(ctx context.Context, apartmentID uuid.UUID) ([]property.Unit, error) {
	return r.coll.FindAll(func(u *property.Unit) bool {
		return u.ApartmentID == apartmentID
	})
}

// FindByStatus returns all units with the given status
func (r *StoreUnitRepository) FindByStatus(ctx context.Context, status property.UnitStatus) ([]property.Unit, error) {
	return r.coll.FindAll(func(u *property.Unit) bool {
		return u.Status == status
	})
}

// ExistsByNumber reports whether an apartment already has a unit with the
// given number. Comparison is case-insensitive; unit numbers are stored
// uppercased.
func (r *StoreUnitRepository) ExistsByNumber(ctx context.Context, apartmentID uuid.UUID, unitNumber string) (bool, error) {
	number := strings.ToUpper(unitNumber)
	_, err := r.coll.FindFirst(func(u *property.Unit) bool {
		return u.ApartmentID == apartmentID && u.UnitNumber == number
	})
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Add appends a new unit
func (r *StoreUnitRepository) Add(ctx context.Context, unit *property.Unit) error {
	return r.coll.Add(unit)
}

// Update replaces the stored unit with the same ID
func (r *StoreUnitRepository) Update(ctx context.Context, unit *property.Unit) error {
	return r.coll.Update(unit)
}

// Delete removes a unit, reporting whether a record was removed
func (r *StoreUnitRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.coll.Delete(id)
}
