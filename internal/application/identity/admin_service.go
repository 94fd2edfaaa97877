package identity

import (
	"context"
	"errors"

	"github.com/dovepeak/backend/internal/domain/identity"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/google/uuid"
)

// AdminService manages property-manager and tenant-account records,
// site settings, and the audit trail.
type AdminService struct {
	managerRepo  identity.ManagerRepository
	accountRepo  identity.TenantAccountRepository
	tenantRepo   tenancy.TenantRepository
	settingsRepo identity.SettingsRepository
	auditRepo    identity.AuditLogRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(
	managerRepo identity.ManagerRepository,
	accountRepo identity.TenantAccountRepository,
	tenantRepo tenancy.TenantRepository,
	settingsRepo identity.SettingsRepository,
	auditRepo identity.AuditLogRepository,
) *AdminService {
	return &AdminService{
		managerRepo:  managerRepo,
		accountRepo:  accountRepo,
		tenantRepo:   tenantRepo,
		settingsRepo: settingsRepo,
		auditRepo:    auditRepo,
	}
}

// CreateManager registers a property manager
func (s *AdminService) CreateManager(ctx context.Context, req CreateManagerRequest) (*ManagerResponse, error) {
	existing, err := s.managerRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A manager with this email already exists")
	}

	manager, err := identity.NewPropertyManager(req.Email, req.FirstName, req.LastName, req.Phone, req.Password, identity.ManagerRole(req.Role))
	if err != nil {
		return nil, err
	}
	if req.Company != "" {
		manager.Company = req.Company
	}

	if err := s.managerRepo.Add(ctx, manager); err != nil {
		return nil, err
	}

	response := ToManagerResponse(manager)
	return &response, nil
}

// GetManager retrieves a property manager by ID
func (s *AdminService) GetManager(ctx context.Context, id uuid.UUID) (*ManagerResponse, error) {
	manager, err := s.managerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToManagerResponse(manager)
	return &response, nil
}

// ListManagers retrieves all property managers
func (s *AdminService) ListManagers(ctx context.Context) ([]ManagerResponse, error) {
	managers, err := s.managerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return ToManagerResponses(managers), nil
}

// UpdateManager updates a manager's permissions, portfolio, or status
func (s *AdminService) UpdateManager(ctx context.Context, id uuid.UUID, req UpdateManagerRequest) (*ManagerResponse, error) {
	manager, err := s.managerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Permissions != nil {
		manager.SetPermissions(req.Permissions)
	}
	if req.ManagedProperties != nil {
		manager.ManagedProperties = req.ManagedProperties
		manager.Touch()
	}
	if req.IsActive != nil {
		if *req.IsActive {
			manager.Activate()
		} else {
			manager.Deactivate()
		}
	}

	if err := s.managerRepo.Update(ctx, manager); err != nil {
		return nil, err
	}

	response := ToManagerResponse(manager)
	return &response, nil
}

// DeleteManager removes a property manager
func (s *AdminService) DeleteManager(ctx context.Context, id uuid.UUID) error {
	removed, err := s.managerRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return shared.ErrNotFound
	}
	return nil
}

// CreateTenantAccount enables portal access for an existing tenant
func (s *AdminService) CreateTenantAccount(ctx context.Context, req CreateTenantAccountRequest) (*TenantAccountResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, req.TenantID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant does not exist")
	}

	existing, err := s.accountRepo.FindByTenant(ctx, req.TenantID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Tenant already has a portal account")
	}

	account, err := identity.NewTenantAccount(tenant, req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Add(ctx, account); err != nil {
		return nil, err
	}

	response := ToTenantAccountResponse(account)
	return &response, nil
}

// GetTenantAccount retrieves a tenant portal account by ID
func (s *AdminService) GetTenantAccount(ctx context.Context, id uuid.UUID) (*TenantAccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToTenantAccountResponse(account)
	return &response, nil
}

// ListTenantAccounts retrieves all tenant portal accounts
func (s *AdminService) ListTenantAccounts(ctx context.Context) ([]TenantAccountResponse, error) {
	accounts, err := s.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]TenantAccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToTenantAccountResponse(&accounts[i])
	}
	return responses, nil
}

// DeleteTenantAccount removes a tenant's portal access
func (s *AdminService) DeleteTenantAccount(ctx context.Context, id uuid.UUID) error {
	removed, err := s.accountRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return shared.ErrNotFound
	}
	return nil
}

// GetSettings returns the site-wide settings
func (s *AdminService) GetSettings(ctx context.Context) (*identity.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettings replaces the site-wide settings
func (s *AdminService) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*identity.Settings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	current.SiteName = req.SiteName
	current.SiteDescription = req.SiteDescription
	current.Currency = req.Currency
	current.Timezone = req.Timezone
	current.MaintenanceMode = req.MaintenanceMode
	current.RegistrationEnabled = req.RegistrationEnabled
	current.Email = req.Email
	current.SMS = req.SMS
	current.Payment = req.Payment

	if err := current.Validate(); err != nil {
		return nil, err
	}

	if err := s.settingsRepo.Save(ctx, current); err != nil {
		return nil, err
	}

	return current, nil
}

// ListAuditLogs retrieves audit entries, optionally filtered by user
func (s *AdminService) ListAuditLogs(ctx context.Context, userID *uuid.UUID) ([]AuditLogResponse, error) {
	var (
		entries []identity.AuditLog
		err     error
	)

	if userID != nil {
		entries, err = s.auditRepo.FindByUser(ctx, *userID)
	} else {
		entries, err = s.auditRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return ToAuditLogResponses(entries), nil
}
