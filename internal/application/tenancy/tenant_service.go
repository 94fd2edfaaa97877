package tenancy

import (
	"context"
	"errors"

	"github.com/dovepeak/backend/internal/domain/property"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/google/uuid"
)

// TenantService handles tenant-related business operations
type TenantService struct {
	tenantRepo tenancy.TenantRepository
	unitRepo   property.UnitRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo tenancy.TenantRepository, unitRepo property.UnitRepository) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		unitRepo:   unitRepo,
	}
}

// Create registers a tenant on a vacant unit. The tenant inherits the
// unit's apartment reference, and the unit becomes occupied.
func (s *TenantService) Create(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, req.UnitID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit does not exist")
	}
	if !unit.IsVacant() {
		return nil, shared.NewDomainError("UNIT_NOT_VACANT", "Unit is not available for lease")
	}

	existing, err := s.tenantRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A tenant with this email already exists")
	}

	tenant, err := tenancy.NewTenant(unit.ID, unit.ApartmentID, req.FirstName, req.LastName,
		req.Email, req.Phone, req.IDNumber, req.LeaseStart, req.LeaseEnd, req.RentAmount, req.Deposit)
	if err != nil {
		return nil, err
	}

	if req.EmergencyName != "" || req.EmergencyPhone != "" {
		tenant.SetEmergencyContact(req.EmergencyName, req.EmergencyPhone, req.EmergencyRelship)
	}

	if err := s.tenantRepo.Add(ctx, tenant); err != nil {
		return nil, err
	}

	if err := unit.SetStatus(property.UnitStatusOccupied); err != nil {
		return nil, err
	}
	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, err
	}

	response := ToTenantResponse(tenant)
	return &response, nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToTenantResponse(tenant)
	return &response, nil
}

// List retrieves all tenants, optionally filtered by apartment
func (s *TenantService) List(ctx context.Context, apartmentID *uuid.UUID) ([]TenantResponse, error) {
	var (
		tenants []tenancy.Tenant
		err     error
	)

	if apartmentID != nil {
		tenants, err = s.tenantRepo.FindByApartment(ctx, *apartmentID)
	} else {
		tenants, err = s.tenantRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return ToTenantResponses(tenants), nil
}

// Update updates a tenant's contact, lease, and status details
func (s *TenantService) Update(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil || req.Phone != nil {
		email := tenant.Email
		if req.Email != nil {
			email = *req.Email
		}
		phone := tenant.Phone
		if req.Phone != nil {
			phone = *req.Phone
		}
		if err := tenant.UpdateContact(email, phone); err != nil {
			return nil, err
		}
	}
	if req.RentAmount != nil {
		if err := tenant.SetRent(*req.RentAmount); err != nil {
			return nil, err
		}
	}
	if req.LeaseEnd != nil {
		if err := tenant.RenewLease(*req.LeaseEnd); err != nil {
			return nil, err
		}
	}
	if req.ContractDocument != nil {
		tenant.SetContractDocument(*req.ContractDocument)
	}
	if req.EmergencyName != nil || req.EmergencyPhone != nil || req.EmergencyRelship != nil {
		name := tenant.EmergencyContact.Name
		if req.EmergencyName != nil {
			name = *req.EmergencyName
		}
		phone := tenant.EmergencyContact.Phone
		if req.EmergencyPhone != nil {
			phone = *req.EmergencyPhone
		}
		relationship := tenant.EmergencyContact.Relationship
		if req.EmergencyRelship != nil {
			relationship = *req.EmergencyRelship
		}
		tenant.SetEmergencyContact(name, phone, relationship)
	}
	if req.Status != nil {
		if err := s.changeStatus(ctx, tenant, tenancy.TenantStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}

	response := ToTenantResponse(tenant)
	return &response, nil
}

// changeStatus updates a tenant's status and frees the unit when the
// tenancy ends.
func (s *TenantService) changeStatus(ctx context.Context, tenant *tenancy.Tenant, status tenancy.TenantStatus) error {
	wasActive := tenant.IsActive()

	if err := tenant.SetStatus(status); err != nil {
		return err
	}

	if wasActive && !tenant.IsActive() {
		unit, err := s.unitRepo.FindByID(ctx, tenant.UnitID)
		if err == nil && unit.IsOccupied() {
			if err := unit.SetStatus(property.UnitStatusVacant); err != nil {
				return err
			}
			if err := s.unitRepo.Update(ctx, unit); err != nil {
				return err
			}
		}
	}

	return nil
}

// Delete removes a tenant record and frees their unit
func (s *TenantService) Delete(ctx context.Context, id uuid.UUID) error {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	removed, err := s.tenantRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return shared.ErrNotFound
	}

	unit, err := s.unitRepo.FindByID(ctx, tenant.UnitID)
	if err == nil && unit.IsOccupied() {
		if err := unit.SetStatus(property.UnitStatusVacant); err != nil {
			return err
		}
		if err := s.unitRepo.Update(ctx, unit); err != nil {
			return err
		}
	}

	return nil
}
