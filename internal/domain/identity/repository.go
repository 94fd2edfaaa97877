package identity

import (
	"context"

	"github.com/google/uuid"
)

// AdminRepository defines the interface for system-admin persistence
type AdminRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SystemAdmin, error)
	FindByEmail(ctx context.Context, email string) (*SystemAdmin, error)
	FindAll(ctx context.Context) ([]SystemAdmin, error)
	Add(ctx context.Context, admin *SystemAdmin) error
	Update(ctx context.Context, admin *SystemAdmin) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ManagerRepository defines the interface for property-manager persistence
type ManagerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyManager, error)
	FindByEmail(ctx context.Context, email string) (*PropertyManager, error)
	FindAll(ctx context.Context) ([]PropertyManager, error)
	Add(ctx context.Context, manager *PropertyManager) error
	Update(ctx context.Context, manager *PropertyManager) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// TenantAccountRepository defines the interface for tenant portal login persistence
type TenantAccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TenantAccount, error)
	FindByEmail(ctx context.Context, email string) (*TenantAccount, error)
	FindByTenant(ctx context.Context, tenantID uuid.UUID) (*TenantAccount, error)
	FindAll(ctx context.Context) ([]TenantAccount, error)
	Add(ctx context.Context, account *TenantAccount) error
	Update(ctx context.Context, account *TenantAccount) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// AuditLogRepository defines the interface for audit trail persistence
type AuditLogRepository interface {
	FindAll(ctx context.Context) ([]AuditLog, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]AuditLog, error)
	FindByAction(ctx context.Context, action string) ([]AuditLog, error)
	Add(ctx context.Context, entry *AuditLog) error
}

// SettingsRepository holds the single site-wide settings record
type SettingsRepository interface {
	// Get returns the stored settings, or defaults when none are saved
	Get(ctx context.Context) (*Settings, error)

	// Save replaces the stored settings
	Save(ctx context.Context, settings *Settings) error
}
