package tenancy

import (
	"time"

	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTenantRequest represents a request to register a tenant on a unit
type CreateTenantRequest struct {
	UnitID           uuid.UUID       `json:"unit_id" binding:"required"`
	FirstName        string          `json:"first_name" binding:"required,min=1,max=100"`
	LastName         string          `json:"last_name" binding:"required,min=1,max=100"`
	Email            string          `json:"email" binding:"required,email,max=200"`
	Phone            string          `json:"phone" binding:"required,max=50"`
	IDNumber         string          `json:"id_number" binding:"max=50"`
	LeaseStart       time.Time       `json:"lease_start" binding:"required"`
	LeaseEnd         time.Time       `json:"lease_end" binding:"required"`
	RentAmount       decimal.Decimal `json:"rent_amount" binding:"required"`
	Deposit          decimal.Decimal `json:"deposit"`
	EmergencyName    string          `json:"emergency_name" binding:"max=100"`
	EmergencyPhone   string          `json:"emergency_phone" binding:"max=50"`
	EmergencyRelship string          `json:"emergency_relationship" binding:"max=50"`
}

// UpdateTenantRequest represents a request to update a tenant's details
type UpdateTenantRequest struct {
	Email            *string          `json:"email" binding:"omitempty,email,max=200"`
	Phone            *string          `json:"phone" binding:"omitempty,max=50"`
	RentAmount       *decimal.Decimal `json:"rent_amount"`
	LeaseEnd         *time.Time       `json:"lease_end"`
	Status           *string          `json:"status" binding:"omitempty,oneof=active inactive terminated"`
	ContractDocument *string          `json:"contract_document"`
	EmergencyName    *string          `json:"emergency_name" binding:"omitempty,max=100"`
	EmergencyPhone   *string          `json:"emergency_phone" binding:"omitempty,max=50"`
	EmergencyRelship *string          `json:"emergency_relationship" binding:"omitempty,max=50"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID               uuid.UUID       `json:"id"`
	UnitID           uuid.UUID       `json:"unit_id"`
	ApartmentID      uuid.UUID       `json:"apartment_id"`
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	FullName         string          `json:"full_name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	IDNumber         string          `json:"id_number"`
	EmergencyName    string          `json:"emergency_name"`
	EmergencyPhone   string          `json:"emergency_phone"`
	EmergencyRelship string          `json:"emergency_relationship"`
	LeaseStart       time.Time       `json:"lease_start"`
	LeaseEnd         time.Time       `json:"lease_end"`
	RentAmount       decimal.Decimal `json:"rent_amount"`
	Deposit          decimal.Decimal `json:"deposit"`
	ContractDocument string          `json:"contract_document"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToTenantResponse converts a domain tenant to a response DTO
func ToTenantResponse(t *tenancy.Tenant) TenantResponse {
	return TenantResponse{
		ID:               t.ID,
		UnitID:           t.UnitID,
		ApartmentID:      t.ApartmentID,
		FirstName:        t.FirstName,
		LastName:         t.LastName,
		FullName:         t.FullName(),
		Email:            t.Email,
		Phone:            t.Phone,
		IDNumber:         t.IDNumber,
		EmergencyName:    t.EmergencyContact.Name,
		EmergencyPhone:   t.EmergencyContact.Phone,
		EmergencyRelship: t.EmergencyContact.Relationship,
		LeaseStart:       t.LeaseStart,
		LeaseEnd:         t.LeaseEnd,
		RentAmount:       t.RentAmount,
		Deposit:          t.Deposit,
		ContractDocument: t.ContractDocument,
		Status:           string(t.Status),
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// ToTenantResponses converts a slice of domain tenants
func ToTenantResponses(tenants []tenancy.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = ToTenantResponse(&tenants[i])
	}
	return responses
}
