package identity

import (
	"time"

	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserType tags an audit entry with the kind of actor that performed it
type UserType string

const (
	UserTypeAdmin   UserType = "admin"
	UserTypeManager UserType = "manager"
	UserTypeTenant  UserType = "tenant"
	UserTypeSystem  UserType = "system"
)

// AuditLog records a single action performed against a resource
type AuditLog struct {
	shared.BaseEntity
	UserID     uuid.UUID `json:"userId"`
	UserType   UserType  `json:"userType"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resourceId,omitempty"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewAuditLog creates a new audit entry stamped with the current time
func NewAuditLog(userID uuid.UUID, userType UserType, action, resource, resourceID, details string) *AuditLog {
	return &AuditLog{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		UserType:   userType,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    details,
		Timestamp:  time.Now(),
	}
}
