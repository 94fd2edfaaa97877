package identity

import (
	"strings"
	"time"

	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
)

// AdminRole represents the privilege level of a system administrator
type AdminRole string

const (
	AdminRoleSuper AdminRole = "super-admin"
	AdminRoleAdmin AdminRole = "admin"
)

// SystemAdmin represents a back-office administrator account
type SystemAdmin struct {
	shared.BaseEntity
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Role         AdminRole  `json:"role"`
	Permissions  []string   `json:"permissions"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	PasswordHash string     `json:"passwordHash"`
}

// NewSystemAdmin creates a new active administrator with a hashed password
func NewSystemAdmin(email, firstName, lastName, password string, role AdminRole, permissions []string) (*SystemAdmin, error) {
	if err := tenancy.ValidateEmail(email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Admin name cannot be empty")
	}
	if err := validateAdminRole(role); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &SystemAdmin{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		Permissions:  permissions,
		IsActive:     true,
		PasswordHash: hash,
	}, nil
}

// FullName returns the admin's display name
func (a *SystemAdmin) FullName() string {
	return a.FirstName + " " + a.LastName
}

// RecordLogin stamps the last successful login time
func (a *SystemAdmin) RecordLogin(at time.Time) {
	a.LastLogin = &at
	a.Touch()
}

// ChangePassword replaces the stored password hash
func (a *SystemAdmin) ChangePassword(password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	a.PasswordHash = hash
	a.Touch()

	return nil
}

// Deactivate disables the account without deleting it
func (a *SystemAdmin) Deactivate() {
	a.IsActive = false
	a.Touch()
}

// Activate re-enables a deactivated account
func (a *SystemAdmin) Activate() {
	a.IsActive = true
	a.Touch()
}

// HasPermission reports whether the admin carries the named permission.
// Super admins and the "all" permission grant everything.
func (a *SystemAdmin) HasPermission(permission string) bool {
	if a.Role == AdminRoleSuper {
		return true
	}
	for _, p := range a.Permissions {
		if p == permission || p == "all" {
			return true
		}
	}
	return false
}

func validateAdminRole(role AdminRole) error {
	switch role {
	case AdminRoleSuper, AdminRoleAdmin:
		return nil
	default:
		return shared.NewDomainError("INVALID_ROLE", "Admin role must be 'super-admin' or 'admin'")
	}
}
