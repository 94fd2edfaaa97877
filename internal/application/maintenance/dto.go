package maintenance

import (
	"time"

	"github.com/dovepeak/backend/internal/domain/maintenance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateRequestRequest represents a tenant raising a maintenance request
type CreateRequestRequest struct {
	TenantID    uuid.UUID `json:"tenant_id" binding:"required"`
	Title       string    `json:"title" binding:"required,min=1,max=200"`
	Description string    `json:"description" binding:"max=2000"`
	Category    string    `json:"category" binding:"required,oneof=plumbing electrical hvac appliance structural other"`
	Priority    string    `json:"priority" binding:"required,oneof=low medium high urgent"`
}

// AssignRequestRequest represents assigning a request to a worker
type AssignRequestRequest struct {
	AssignedTo    string           `json:"assigned_to" binding:"required,min=1,max=100"`
	EstimatedCost *decimal.Decimal `json:"estimated_cost"`
}

// CompleteRequestRequest represents closing a request as done
type CompleteRequestRequest struct {
	CompletedDate time.Time        `json:"completed_date" binding:"required"`
	ActualCost    *decimal.Decimal `json:"actual_cost"`
	Notes         string           `json:"notes" binding:"max=2000"`
}

// UpdateRequestRequest represents updating a request's priority or notes
type UpdateRequestRequest struct {
	Priority *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Notes    *string `json:"notes" binding:"omitempty,max=2000"`
}

// RequestResponse represents a maintenance request in API responses
type RequestResponse struct {
	ID            uuid.UUID        `json:"id"`
	TenantID      uuid.UUID        `json:"tenant_id"`
	UnitID        uuid.UUID        `json:"unit_id"`
	ApartmentID   uuid.UUID        `json:"apartment_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Priority      string           `json:"priority"`
	Status        string           `json:"status"`
	AssignedTo    string           `json:"assigned_to,omitempty"`
	EstimatedCost *decimal.Decimal `json:"estimated_cost,omitempty"`
	ActualCost    *decimal.Decimal `json:"actual_cost,omitempty"`
	CompletedDate *time.Time       `json:"completed_date,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ToRequestResponse converts a domain request to a response DTO
func ToRequestResponse(r *maintenance.Request) RequestResponse {
	return RequestResponse{
		ID:            r.ID,
		TenantID:      r.TenantID,
		UnitID:        r.UnitID,
		ApartmentID:   r.ApartmentID,
		Title:         r.Title,
		Description:   r.Description,
		Category:      string(r.Category),
		Priority:      string(r.Priority),
		Status:        string(r.Status),
		AssignedTo:    r.AssignedTo,
		EstimatedCost: r.EstimatedCost,
		ActualCost:    r.ActualCost,
		CompletedDate: r.CompletedDate,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ToRequestResponses converts a slice of domain requests
func ToRequestResponses(requests []maintenance.Request) []RequestResponse {
	responses := make([]RequestResponse, len(requests))
	for i := range requests {
		responses[i] = ToRequestResponse(&requests[i])
	}
	return responses
}
