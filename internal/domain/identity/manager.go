package identity

import (
	"strings"
	"time"

	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/google/uuid"
)

// ManagerRole represents the function a property manager performs
type ManagerRole string

const (
	ManagerRoleOwner      ManagerRole = "owner"
	ManagerRoleManager    ManagerRole = "manager"
	ManagerRoleCaretaker  ManagerRole = "caretaker"
	ManagerRoleAccountant ManagerRole = "accountant"
)

// PropertyManager represents a staff account responsible for one or more apartments
type PropertyManager struct {
	shared.BaseEntity
	Email             string      `json:"email"`
	FirstName         string      `json:"firstName"`
	LastName          string      `json:"lastName"`
	Phone             string      `json:"phone"`
	Company           string      `json:"company,omitempty"`
	Role              ManagerRole `json:"role"`
	Permissions       []string    `json:"permissions"`
	ManagedProperties []uuid.UUID `json:"managedProperties"`
	IsActive          bool        `json:"isActive"`
	LastLogin         *time.Time  `json:"lastLogin,omitempty"`
	PasswordHash      string      `json:"passwordHash"`
}

// NewPropertyManager creates a new active property manager with a hashed password
func NewPropertyManager(email, firstName, lastName, phone, password string, role ManagerRole) (*PropertyManager, error) {
	if err := tenancy.ValidateEmail(email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Manager name cannot be empty")
	}
	if strings.TrimSpace(phone) == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Manager phone cannot be empty")
	}
	if err := validateManagerRole(role); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &PropertyManager{
		BaseEntity:        shared.NewBaseEntity(),
		Email:             email,
		FirstName:         firstName,
		LastName:          lastName,
		Phone:             phone,
		Role:              role,
		Permissions:       []string{},
		ManagedProperties: []uuid.UUID{},
		IsActive:          true,
		PasswordHash:      hash,
	}, nil
}

// FullName returns the manager's display name
func (m *PropertyManager) FullName() string {
	return m.FirstName + " " + m.LastName
}

// RecordLogin stamps the last successful login time
func (m *PropertyManager) RecordLogin(at time.Time) {
	m.LastLogin = &at
	m.Touch()
}

// ChangePassword replaces the stored password hash
func (m *PropertyManager) ChangePassword(password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	m.PasswordHash = hash
	m.Touch()

	return nil
}

// SetPermissions replaces the manager's permission list
func (m *PropertyManager) SetPermissions(permissions []string) {
	m.Permissions = permissions
	m.Touch()
}

// AssignProperty adds an apartment to the manager's portfolio
func (m *PropertyManager) AssignProperty(apartmentID uuid.UUID) {
	for _, id := range m.ManagedProperties {
		if id == apartmentID {
			return
		}
	}
	m.ManagedProperties = append(m.ManagedProperties, apartmentID)
	m.Touch()
}

// UnassignProperty removes an apartment from the manager's portfolio
func (m *PropertyManager) UnassignProperty(apartmentID uuid.UUID) {
	for i, id := range m.ManagedProperties {
		if id == apartmentID {
			m.ManagedProperties = append(m.ManagedProperties[:i], m.ManagedProperties[i+1:]...)
			m.Touch()
			return
		}
	}
}

// Manages reports whether the manager is responsible for the apartment
func (m *PropertyManager) Manages(apartmentID uuid.UUID) bool {
	for _, id := range m.ManagedProperties {
		if id == apartmentID {
			return true
		}
	}
	return false
}

// Deactivate disables the account without deleting it
func (m *PropertyManager) Deactivate() {
	m.IsActive = false
	m.Touch()
}

// Activate re-enables a deactivated account
func (m *PropertyManager) Activate() {
	m.IsActive = true
	m.Touch()
}

func validateManagerRole(role ManagerRole) error {
	switch role {
	case ManagerRoleOwner, ManagerRoleManager, ManagerRoleCaretaker, ManagerRoleAccountant:
		return nil
	default:
		return shared.NewDomainError("INVALID_ROLE", "Manager role must be 'owner', 'manager', 'caretaker', or 'accountant'")
	}
}
