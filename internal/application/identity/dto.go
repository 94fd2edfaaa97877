package identity

import (
	"time"

	"github.com/dovepeak/backend/internal/domain/identity"
	"github.com/dovepeak/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// LoginRequest represents a login attempt against any realm
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// RefreshRequest represents a token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LoginResponse carries the token pair and the authenticated profile
type LoginResponse struct {
	Tokens *auth.TokenPair `json:"tokens"`
	User   UserProfile     `json:"user"`
}

// UserProfile is the common profile shape across realms
type UserProfile struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Realm     string     `json:"realm"`
	Role      string     `json:"role,omitempty"`
	TenantID  *uuid.UUID `json:"tenant_id,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// ChangePasswordRequest represents a password change for the current user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=128"`
}

// CreateManagerRequest represents registering a property manager
type CreateManagerRequest struct {
	Email     string `json:"email" binding:"required,email,max=200"`
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	Phone     string `json:"phone" binding:"required,max=50"`
	Company   string `json:"company" binding:"max=200"`
	Role      string `json:"role" binding:"required,oneof=owner manager caretaker accountant"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
}

// UpdateManagerRequest represents updating a property manager
type UpdateManagerRequest struct {
	Permissions       []string    `json:"permissions"`
	ManagedProperties []uuid.UUID `json:"managed_properties"`
	IsActive          *bool       `json:"is_active"`
}

// ManagerResponse represents a property manager in API responses
type ManagerResponse struct {
	ID                uuid.UUID   `json:"id"`
	Email             string      `json:"email"`
	FirstName         string      `json:"first_name"`
	LastName          string      `json:"last_name"`
	Phone             string      `json:"phone"`
	Company           string      `json:"company,omitempty"`
	Role              string      `json:"role"`
	Permissions       []string    `json:"permissions"`
	ManagedProperties []uuid.UUID `json:"managed_properties"`
	IsActive          bool        `json:"is_active"`
	LastLogin         *time.Time  `json:"last_login,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// ToManagerResponse converts a domain manager to a response DTO
func ToManagerResponse(m *identity.PropertyManager) ManagerResponse {
	return ManagerResponse{
		ID:                m.ID,
		Email:             m.Email,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Phone:             m.Phone,
		Company:           m.Company,
		Role:              string(m.Role),
		Permissions:       m.Permissions,
		ManagedProperties: m.ManagedProperties,
		IsActive:          m.IsActive,
		LastLogin:         m.LastLogin,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ToManagerResponses converts a slice of domain managers
func ToManagerResponses(managers []identity.PropertyManager) []ManagerResponse {
	responses := make([]ManagerResponse, len(managers))
	for i := range managers {
		responses[i] = ToManagerResponse(&managers[i])
	}
	return responses
}

// CreateTenantAccountRequest represents enabling portal access for a tenant
type CreateTenantAccountRequest struct {
	TenantID uuid.UUID `json:"tenant_id" binding:"required"`
	Password string    `json:"password" binding:"required,min=8,max=128"`
}

// TenantAccountResponse represents a tenant portal login in API responses
type TenantAccountResponse struct {
	ID          uuid.UUID  `json:"id"`
	TenantID    uuid.UUID  `json:"tenant_id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	UnitID      uuid.UUID  `json:"unit_id"`
	ApartmentID uuid.UUID  `json:"apartment_id"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToTenantAccountResponse converts a domain tenant account to a response DTO
func ToTenantAccountResponse(a *identity.TenantAccount) TenantAccountResponse {
	return TenantAccountResponse{
		ID:          a.ID,
		TenantID:    a.TenantID,
		Email:       a.Email,
		FullName:    a.FullName(),
		UnitID:      a.UnitID,
		ApartmentID: a.ApartmentID,
		IsActive:    a.IsActive,
		LastLogin:   a.LastLogin,
		CreatedAt:   a.CreatedAt,
	}
}

// UpdateSettingsRequest replaces the site-wide settings
type UpdateSettingsRequest struct {
	SiteName            string                   `json:"site_name" binding:"required,min=1,max=200"`
	SiteDescription     string                   `json:"site_description" binding:"max=500"`
	Currency            string                   `json:"currency" binding:"required,min=1,max=10"`
	Timezone            string                   `json:"timezone" binding:"max=100"`
	MaintenanceMode     bool                     `json:"maintenance_mode"`
	RegistrationEnabled bool                     `json:"registration_enabled"`
	Email               identity.EmailSettings   `json:"email"`
	SMS                 identity.SMSSettings     `json:"sms"`
	Payment             identity.PaymentSettings `json:"payment"`
}

// AuditLogResponse represents an audit entry in API responses
type AuditLogResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	UserType   string    `json:"user_type"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id,omitempty"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// ToAuditLogResponses converts a slice of domain audit entries
func ToAuditLogResponses(entries []identity.AuditLog) []AuditLogResponse {
	responses := make([]AuditLogResponse, len(entries))
	for i, e := range entries {
		responses[i] = AuditLogResponse{
			ID:         e.ID,
			UserID:     e.UserID,
			UserType:   string(e.UserType),
			Action:     e.Action,
			Resource:   e.Resource,
			ResourceID: e.ResourceID,
			Details:    e.Details,
			Timestamp:  e.Timestamp,
		}
	}
	return responses
}
