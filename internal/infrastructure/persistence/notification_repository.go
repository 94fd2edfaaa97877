package persistence

import (
	"context"

	"github.com/dovepeak/backend/internal/domain/notification"
	"github.com/google/uuid"
)

// StoreNotificationRepository implements notification.Repository
type StoreNotificationRepository struct {
	coll *Collection[notification.Notification, *notification.Notification]
}

// NewStoreNotificationRepository creates a notification repository over the store
func NewStoreNotificationRepository(store *Store) *StoreNotificationRepository {
	return &StoreNotificationRepository{
		coll: NewCollection[notification.Notification](store, keyNotifications),
	}
}

// FindByID finds a notification by its ID
func (r *StoreNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	return r.coll.FindByID(id)
}

// FindAll returns all notifications in insertion order
func (r *StoreNotificationRepository) FindAll(ctx context.Context) ([]notification.Notification, error) {
	return r.coll.GetAll()
}

// FindByRecipient returns all notifications addressed to a tenant
func (r *StoreNotificationRepository) FindByRecipient(ctx context.Context, tenantID uuid.UUID) ([]notification.Notification, error) {
	return r.coll.FindAll(func(n *notification.Notification) bool {
		for _, recipient := range n.Recipients {
			if recipient == tenantID {
				return true
			}
		}
		return false
	})
}

// Add appends a new notification
func (r *StoreNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return r.coll.Add(n)
}

// Update replaces the stored notification with the same ID
func (r *StoreNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return r.coll.Update(n)
}

// Delete removes a notification, reporting whether a record was removed
func (r *StoreNotificationRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.coll.Delete(id)
}
