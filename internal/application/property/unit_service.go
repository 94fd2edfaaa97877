package property

import (
	"context"

	"github.com/dovepeak/backend/internal/domain/property"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitService handles unit-related business operations
type UnitService struct {
	apartmentRepo property.ApartmentRepository
	unitRepo      property.UnitRepository
	tenantRepo    tenancy.TenantRepository
}

// NewUnitService creates a new UnitService
func NewUnitService(apartmentRepo property.ApartmentRepository, unitRepo property.UnitRepository, tenantRepo tenancy.TenantRepository) *UnitService {
	return &UnitService{
		apartmentRepo: apartmentRepo,
		unitRepo:      unitRepo,
		tenantRepo:    tenantRepo,
	}
}

// Create creates a new unit under an existing apartment
func (s *UnitService) Create(ctx context.Context, req CreateUnitRequest) (*UnitResponse, error) {
	if _, err := s.apartmentRepo.FindByID(ctx, req.ApartmentID); err != nil {
		return nil, shared.NewDomainError("INVALID_APARTMENT", "Apartment does not exist")
	}

	exists, err := s.unitRepo.ExistsByNumber(ctx, req.ApartmentID, req.UnitNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Unit number already exists in this apartment")
	}

	deposit := req.Deposit
	if deposit.IsZero() {
		deposit = decimal.Zero
	}

	unit, err := property.NewUnit(req.ApartmentID, req.UnitNumber, property.UnitType(req.Type), req.Size, req.RentAmount, deposit)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		unit.SetDescription(req.Description)
	}
	if len(req.Amenities) > 0 {
		unit.SetAmenities(req.Amenities)
	}

	if err := s.unitRepo.Add(ctx, unit); err != nil {
		return nil, err
	}

	response := ToUnitResponse(unit)
	return &response, nil
}

// GetByID retrieves a unit by ID
func (s *UnitService) GetByID(ctx context.Context, id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToUnitResponse(unit)
	return &response, nil
}

// List retrieves all units, optionally filtered by apartment or status
func (s *UnitService) List(ctx context.Context, apartmentID *uuid.UUID, status string) ([]UnitResponse, error) {
	var (
		units []property.Unit
		err   error
	)

	switch {
	case apartmentID != nil:
		units, err = s.unitRepo.FindByApartment(ctx, *apartmentID)
	case status != "":
		units, err = s.unitRepo.FindByStatus(ctx, property.UnitStatus(status))
	default:
		units, err = s.unitRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	// Both filters requested: narrow the apartment listing by status
	if apartmentID != nil && status != "" {
		filtered := units[:0]
		for _, u := range units {
			if u.Status == property.UnitStatus(status) {
				filtered = append(filtered, u)
			}
		}
		units = filtered
	}

	return ToUnitResponses(units), nil
}

// Update updates a unit
func (s *UnitService) Update(ctx context.Context, id uuid.UUID, req UpdateUnitRequest) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unitNumber := unit.UnitNumber
	if req.UnitNumber != nil {
		unitNumber = *req.UnitNumber
	}
	unitType := unit.Type
	if req.Type != nil {
		unitType = property.UnitType(*req.Type)
	}
	size := unit.Size
	if req.Size != nil {
		size = *req.Size
	}
	rentAmount := unit.RentAmount
	if req.RentAmount != nil {
		rentAmount = *req.RentAmount
	}
	deposit := unit.Deposit
	if req.Deposit != nil {
		deposit = *req.Deposit
	}

	if req.UnitNumber != nil && *req.UnitNumber != unit.UnitNumber {
		exists, err := s.unitRepo.ExistsByNumber(ctx, unit.ApartmentID, *req.UnitNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Unit number already exists in this apartment")
		}
	}

	if err := unit.Update(unitNumber, unitType, size, rentAmount, deposit); err != nil {
		return nil, err
	}
	if req.Status != nil {
		if err := unit.SetStatus(property.UnitStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		unit.SetDescription(*req.Description)
	}
	if req.Amenities != nil {
		unit.SetAmenities(req.Amenities)
	}

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, err
	}

	response := ToUnitResponse(unit)
	return &response, nil
}

// Delete removes a unit. A unit with tenants cannot be deleted.
func (s *UnitService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.unitRepo.FindByID(ctx, id); err != nil {
		return err
	}

	tenants, err := s.tenantRepo.FindByUnit(ctx, id)
	if err != nil {
		return err
	}
	if len(tenants) > 0 {
		return shared.NewDomainError("HAS_DEPENDENTS", "Unit still has tenants; remove them first")
	}

	removed, err := s.unitRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return shared.ErrNotFound
	}

	return nil
}
