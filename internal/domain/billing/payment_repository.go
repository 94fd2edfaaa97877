package billing

import (
	"context"

	"github.com/google/uuid"
)

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByID finds a payment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindAll returns all payments in insertion order
	FindAll(ctx context.Context) ([]Payment, error)

	// FindByTenant returns all payments owed by a tenant
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]Payment, error)

	// FindByApartment returns all payments for units in an apartment
	FindByApartment(ctx context.Context, apartmentID uuid.UUID) ([]Payment, error)

	// FindByStatus returns all payments with the given status
	FindByStatus(ctx context.Context, status PaymentStatus) ([]Payment, error)

	// Add appends a new payment, assigning an ID if absent
	Add(ctx context.Context, payment *Payment) error

	// Update replaces the stored payment with the same ID
	Update(ctx context.Context, payment *Payment) error

	// Delete removes a payment, reporting whether a record was removed
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
