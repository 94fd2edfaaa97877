package property

import (
	"context"

	"github.com/dovepeak/backend/internal/domain/property"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ApartmentService handles apartment-related business operations
type ApartmentService struct {
	apartmentRepo property.ApartmentRepository
	unitRepo      property.UnitRepository
}

// NewApartmentService creates a new ApartmentService
func NewApartmentService(apartmentRepo property.ApartmentRepository, unitRepo property.UnitRepository) *ApartmentService {
	return &ApartmentService{
		apartmentRepo: apartmentRepo,
		unitRepo:      unitRepo,
	}
}

// Create creates a new apartment
func (s *ApartmentService) Create(ctx context.Context, req CreateApartmentRequest) (*ApartmentResponse, error) {
	apartment, err := property.NewApartment(req.Name, req.Address, req.TotalUnits)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		apartment.SetDescription(req.Description)
	}

	if err := s.apartmentRepo.Add(ctx, apartment); err != nil {
		return nil, err
	}

	response := ToApartmentResponse(apartment)
	return &response, nil
}

// GetByID retrieves an apartment by ID
func (s *ApartmentService) GetByID(ctx context.Context, id uuid.UUID) (*ApartmentResponse, error) {
	apartment, err := s.apartmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToApartmentResponse(apartment)
	return &response, nil
}

// List retrieves all apartments
func (s *ApartmentService) List(ctx context.Context) ([]ApartmentResponse, error) {
	apartments, err := s.apartmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return ToApartmentResponses(apartments), nil
}

// Update updates an apartment
func (s *ApartmentService) Update(ctx context.Context, id uuid.UUID, req UpdateApartmentRequest) (*ApartmentResponse, error) {
	apartment, err := s.apartmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := apartment.Name
	if req.Name != nil {
		name = *req.Name
	}
	address := apartment.Address
	if req.Address != nil {
		address = *req.Address
	}
	totalUnits := apartment.TotalUnits
	if req.TotalUnits != nil {
		totalUnits = *req.TotalUnits
	}

	if err := apartment.Update(name, address, totalUnits); err != nil {
		return nil, err
	}
	if req.Description != nil {
		apartment.SetDescription(*req.Description)
	}

	if err := s.apartmentRepo.Update(ctx, apartment); err != nil {
		return nil, err
	}

	response := ToApartmentResponse(apartment)
	return &response, nil
}

// Delete removes an apartment. An apartment that still has units cannot be
// deleted; units must be removed or reassigned first.
func (s *ApartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.apartmentRepo.FindByID(ctx, id); err != nil {
		return err
	}

	units, err := s.unitRepo.FindByApartment(ctx, id)
	if err != nil {
		return err
	}
	if len(units) > 0 {
		return shared.NewDomainError("HAS_DEPENDENTS", "Apartment still has units; delete them first")
	}

	removed, err := s.apartmentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return shared.ErrNotFound
	}

	return nil
}
