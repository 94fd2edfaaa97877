package maintenance

import (
	"strings"
	"time"

	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category represents the kind of work a request covers
type Category string

const (
	CategoryPlumbing   Category = "plumbing"
	CategoryElectrical Category = "electrical"
	CategoryHVAC       Category = "hvac"
	CategoryAppliance  Category = "appliance"
	CategoryStructural Category = "structural"
	CategoryOther      Category = "other"
)

// Priority represents how urgently a request needs attention
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Status represents the lifecycle state of a request
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Request represents a maintenance request raised by a tenant for a unit
type Request struct {
	shared.BaseEntity
	TenantID      uuid.UUID        `json:"tenantId"`
	UnitID        uuid.UUID        `json:"unitId"`
	ApartmentID   uuid.UUID        `json:"apartmentId"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Category      Category         `json:"category"`
	Priority      Priority         `json:"priority"`
	Status        Status           `json:"status"`
	AssignedTo    string           `json:"assignedTo,omitempty"`
	EstimatedCost *decimal.Decimal `json:"estimatedCost,omitempty"`
	ActualCost    *decimal.Decimal `json:"actualCost,omitempty"`
	CompletedDate *time.Time       `json:"completedDate,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// NewRequest creates a new pending maintenance request
func NewRequest(tenantID, unitID, apartmentID uuid.UUID, title, description string, category Category, priority Priority) (*Request, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Request must reference a tenant")
	}
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Request must reference a unit")
	}
	if apartmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_APARTMENT", "Request must reference an apartment")
	}
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Request title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Request title cannot exceed 200 characters")
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	if err := validatePriority(priority); err != nil {
		return nil, err
	}

	return &Request{
		BaseEntity:  shared.NewBaseEntity(),
		TenantID:    tenantID,
		UnitID:      unitID,
		ApartmentID: apartmentID,
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
		Status:      StatusPending,
	}, nil
}

// Assign hands the request to a named worker and estimates the cost
func (r *Request) Assign(assignedTo string, estimatedCost *decimal.Decimal) error {
	if r.IsClosed() {
		return shared.NewDomainError("INVALID_STATE", "Cannot assign a closed request")
	}
	if strings.TrimSpace(assignedTo) == "" {
		return shared.NewDomainError("INVALID_ASSIGNEE", "Assignee cannot be empty")
	}
	if estimatedCost != nil && estimatedCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Estimated cost cannot be negative")
	}

	r.AssignedTo = assignedTo
	r.EstimatedCost = estimatedCost
	r.Touch()

	return nil
}

// Start moves the request into progress
func (r *Request) Start() error {
	if r.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending requests can be started")
	}

	r.Status = StatusInProgress
	r.Touch()

	return nil
}

// Complete closes the request with the actual cost of the work
func (r *Request) Complete(completedDate time.Time, actualCost *decimal.Decimal) error {
	if r.IsClosed() {
		return shared.NewDomainError("INVALID_STATE", "Request is already closed")
	}
	if actualCost != nil && actualCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Actual cost cannot be negative")
	}

	r.Status = StatusCompleted
	r.CompletedDate = &completedDate
	r.ActualCost = actualCost
	r.Touch()

	return nil
}

// Cancel withdraws the request
func (r *Request) Cancel() error {
	if r.IsClosed() {
		return shared.NewDomainError("INVALID_STATE", "Request is already closed")
	}

	r.Status = StatusCancelled
	r.Touch()

	return nil
}

// SetPriority changes the request's priority
func (r *Request) SetPriority(priority Priority) error {
	if err := validatePriority(priority); err != nil {
		return err
	}

	r.Priority = priority
	r.Touch()

	return nil
}

// SetNotes sets free-form notes on the request
func (r *Request) SetNotes(notes string) {
	r.Notes = notes
	r.Touch()
}

// IsClosed returns true once the request is completed or cancelled
func (r *Request) IsClosed() bool {
	return r.Status == StatusCompleted || r.Status == StatusCancelled
}

// IsActive returns true while the request still needs work
func (r *Request) IsActive() bool {
	return !r.IsClosed()
}

func validateCategory(category Category) error {
	switch category {
	case CategoryPlumbing, CategoryElectrical, CategoryHVAC, CategoryAppliance, CategoryStructural, CategoryOther:
		return nil
	default:
		return shared.NewDomainError("INVALID_CATEGORY", "Invalid maintenance category")
	}
}

func validatePriority(priority Priority) error {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return shared.NewDomainError("INVALID_PRIORITY", "Priority must be 'low', 'medium', 'high', or 'urgent'")
	}
}
