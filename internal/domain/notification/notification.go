package notification

import (
	"strings"
	"time"

	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Type represents what a notification is about
type Type string

const (
	TypeRentDue     Type = "rent-due"
	TypeMaintenance Type = "maintenance"
	TypeLeaseExpiry Type = "lease-expiry"
	TypeGeneral     Type = "general"
)

// Method represents the delivery channel
type Method string

const (
	MethodEmail Method = "email"
	MethodSMS   Method = "sms"
	MethodBoth  Method = "both"
)

// Status represents the delivery state of a notification
type Status string

const (
	StatusDraft  Status = "draft"
	StatusSent   Status = "sent"
	StatusFailed Status = "failed"
)

// Notification represents a message addressed to one or more tenants.
// It is stored as a draft and transitions to sent or failed on dispatch.
type Notification struct {
	shared.BaseEntity
	Type          Type        `json:"type"`
	Title         string      `json:"title"`
	Message       string      `json:"message"`
	Recipients    []uuid.UUID `json:"recipients"`
	Method        Method      `json:"method"`
	Status        Status      `json:"status"`
	ScheduledDate *time.Time  `json:"scheduledDate,omitempty"`
	SentDate      *time.Time  `json:"sentDate,omitempty"`
}

// NewNotification creates a new draft notification
func NewNotification(notifType Type, title, message string, recipients []uuid.UUID, method Method) (*Notification, error) {
	if err := validateType(notifType); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}
	if strings.TrimSpace(message) == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Notification message cannot be empty")
	}
	if len(recipients) == 0 {
		return nil, shared.NewDomainError("INVALID_RECIPIENTS", "Notification needs at least one recipient")
	}
	if err := validateMethod(method); err != nil {
		return nil, err
	}

	return &Notification{
		BaseEntity: shared.NewBaseEntity(),
		Type:       notifType,
		Title:      title,
		Message:    message,
		Recipients: recipients,
		Method:     method,
		Status:     StatusDraft,
	}, nil
}

// Schedule sets a future dispatch date on a draft
func (n *Notification) Schedule(at time.Time) error {
	if n.Status != StatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft notifications can be scheduled")
	}

	n.ScheduledDate = &at
	n.Touch()

	return nil
}

// MarkSent records a successful dispatch
func (n *Notification) MarkSent(at time.Time) error {
	if n.Status == StatusSent {
		return shared.NewDomainError("INVALID_STATE", "Notification has already been sent")
	}

	n.Status = StatusSent
	n.SentDate = &at
	n.Touch()

	return nil
}

// MarkFailed records a failed dispatch; the draft may be retried
func (n *Notification) MarkFailed() {
	n.Status = StatusFailed
	n.Touch()
}

// IsDraft returns true while the notification has not been dispatched
func (n *Notification) IsDraft() bool {
	return n.Status == StatusDraft
}

// UsesEmail reports whether dispatch includes the email channel
func (n *Notification) UsesEmail() bool {
	return n.Method == MethodEmail || n.Method == MethodBoth
}

// UsesSMS reports whether dispatch includes the SMS channel
func (n *Notification) UsesSMS() bool {
	return n.Method == MethodSMS || n.Method == MethodBoth
}

func validateType(t Type) error {
	switch t {
	case TypeRentDue, TypeMaintenance, TypeLeaseExpiry, TypeGeneral:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Invalid notification type")
	}
}

func validateMethod(m Method) error {
	switch m {
	case MethodEmail, MethodSMS, MethodBoth:
		return nil
	default:
		return shared.NewDomainError("INVALID_METHOD", "Notification method must be 'email', 'sms', or 'both'")
	}
}
