package maintenance

import (
	"context"

	"github.com/google/uuid"
)

// RequestRepository defines the interface for maintenance request persistence
type RequestRepository interface {
	// FindByID finds a request by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)

	// FindAll returns all requests in insertion order
	FindAll(ctx context.Context) ([]Request, error)

	// FindByTenant returns all requests raised by a tenant
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]Request, error)

	// FindByApartment returns all requests for units in an apartment
	FindByApartment(ctx context.Context, apartmentID uuid.UUID) ([]Request, error)

	// FindByStatus returns all requests with the given status
	FindByStatus(ctx context.Context, status Status) ([]Request, error)

	// Add appends a new request, assigning an ID if absent
	Add(ctx context.Context, request *Request) error

	// Update replaces the stored request with the same ID
	Update(ctx context.Context, request *Request) error

	// Delete removes a request, reporting whether a record was removed
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
