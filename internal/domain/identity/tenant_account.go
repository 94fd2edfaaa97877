package identity

import (
	"strings"
	"time"

	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/google/uuid"
)

// TenantAccount represents a tenant's portal login, linked to a tenancy record
type TenantAccount struct {
	shared.BaseEntity
	TenantID     uuid.UUID  `json:"tenantId"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Phone        string     `json:"phone"`
	UnitID       uuid.UUID  `json:"unitId"`
	ApartmentID  uuid.UUID  `json:"apartmentId"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	PasswordHash string     `json:"passwordHash"`
}

// NewTenantAccount creates a portal login for an existing tenant
func NewTenantAccount(tenant *tenancy.Tenant, password string) (*TenantAccount, error) {
	if tenant == nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Account must reference a tenant")
	}
	if strings.TrimSpace(tenant.Email) == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Tenant has no email address")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &TenantAccount{
		BaseEntity:   shared.NewBaseEntity(),
		TenantID:     tenant.ID,
		Email:        tenant.Email,
		FirstName:    tenant.FirstName,
		LastName:     tenant.LastName,
		Phone:        tenant.Phone,
		UnitID:       tenant.UnitID,
		ApartmentID:  tenant.ApartmentID,
		IsActive:     true,
		PasswordHash: hash,
	}, nil
}

// FullName returns the tenant's display name
func (t *TenantAccount) FullName() string {
	return t.FirstName + " " + t.LastName
}

// RecordLogin stamps the last successful login time
func (t *TenantAccount) RecordLogin(at time.Time) {
	t.LastLogin = &at
	t.Touch()
}

// ChangePassword replaces the stored password hash
func (t *TenantAccount) ChangePassword(password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	t.PasswordHash = hash
	t.Touch()

	return nil
}

// Deactivate disables portal access without deleting the account
func (t *TenantAccount) Deactivate() {
	t.IsActive = false
	t.Touch()
}

// Activate re-enables a deactivated account
func (t *TenantAccount) Activate() {
	t.IsActive = true
	t.Touch()
}
