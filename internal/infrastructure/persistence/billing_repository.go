package persistence

import (
	"context"

	"github.com/dovepeak/backend/internal/domain/billing"
	"github.com/google/uuid"
)

// StorePaymentRepository implements billing.PaymentRepository
type StorePaymentRepository struct {
	coll *Collection[billing.Payment, *billing.Payment]
}

// NewStorePaymentRepository creates a payment repository over the store
func NewStorePaymentRepository(store *Store) *StorePaymentRepository {
	return &StorePaymentRepository{
		coll: NewCollection[billing.Payment](store, keyPayments),
	}
}

// FindByID finds a payment by its ID
func (r *StorePaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	return r.coll.FindByID(id)
}

// FindAll returns all payments in insertion order
func (r *StorePaymentRepository) FindAll(ctx context.Context) ([]billing.Payment, error) {
	return r.coll.GetAll()
}

// FindByTenant returns all payments owed by a tenant
func (r *StorePaymentRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]billing.Payment, error) {
	return r.coll.FindAll(func(p *billing.Payment) bool {
		return p.TenantID == tenantID
	})
}

// FindByApartment returns all payments for units in an apartment
func (r *StorePaymentRepository) FindByApartment(ctx context.Context, apartmentID uuid.UUID) ([]billing.Payment, error) {
	return r.coll.FindAll(func(p *billing.Payment) bool {
		return p.ApartmentID == apartmentID
	})
}

// FindByStatus returns all payments with the given status
func (r *StorePaymentRepository) FindByStatus(ctx context.Context, status billing.PaymentStatus) ([]billing.Payment, error) {
	return r.coll.FindAll(func(p *billing.Payment) bool {
		return p.Status == status
	})
}

// Add appends a new payment
func (r *StorePaymentRepository) Add(ctx context.Context, payment *billing.Payment) error {
	return r.coll.Add(payment)
}

// Update replaces the stored payment with the same ID
func (r *StorePaymentRepository) Update(ctx context.Context, payment *billing.Payment) error {
	return r.coll.Update(payment)
}

// Delete removes a payment, reporting whether a record was removed
func (r *StorePaymentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.coll.Delete(id)
}
