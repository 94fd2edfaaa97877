package notification

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for notification persistence
type Repository interface {
	// FindByID finds a notification by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)

	// FindAll returns all notifications in insertion order
	FindAll(ctx context.Context) ([]Notification, error)

	// FindByRecipient returns all notifications addressed to a tenant
	FindByRecipient(ctx context.Context, tenantID uuid.UUID) ([]Notification, error)

	// Add appends a new notification, assigning an ID if absent
	Add(ctx context.Context, n *Notification) error

	// Update replaces the stored notification with the same ID
	Update(ctx context.Context, n *Notification) error

	// Delete removes a notification, reporting whether a record was removed
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
