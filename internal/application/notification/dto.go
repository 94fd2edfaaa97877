package notification

import (
	"time"

	"github.com/dovepeak/backend/internal/domain/notification"
	"github.com/google/uuid"
)

// CreateNotificationRequest represents drafting a notification
type CreateNotificationRequest struct {
	Type          string      `json:"type" binding:"required,oneof=rent-due maintenance lease-expiry general"`
	Title         string      `json:"title" binding:"required,min=1,max=200"`
	Message       string      `json:"message" binding:"required,min=1,max=5000"`
	Recipients    []uuid.UUID `json:"recipients" binding:"required,min=1"`
	Method        string      `json:"method" binding:"required,oneof=email sms both"`
	ScheduledDate *time.Time  `json:"scheduled_date"`
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID            uuid.UUID   `json:"id"`
	Type          string      `json:"type"`
	Title         string      `json:"title"`
	Message       string      `json:"message"`
	Recipients    []uuid.UUID `json:"recipients"`
	Method        string      `json:"method"`
	Status        string      `json:"status"`
	ScheduledDate *time.Time  `json:"scheduled_date,omitempty"`
	SentDate      *time.Time  `json:"sent_date,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// SendResult summarizes a dispatch attempt
type SendResult struct {
	Notification NotificationResponse `json:"notification"`
	Delivered    int                  `json:"delivered"`
	Failed       int                  `json:"failed"`
}

// ToNotificationResponse converts a domain notification to a response DTO
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		Type:          string(n.Type),
		Title:         n.Title,
		Message:       n.Message,
		Recipients:    n.Recipients,
		Method:        string(n.Method),
		Status:        string(n.Status),
		ScheduledDate: n.ScheduledDate,
		SentDate:      n.SentDate,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

// ToNotificationResponses converts a slice of domain notifications
func ToNotificationResponses(notifications []notification.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = ToNotificationResponse(&notifications[i])
	}
	return responses
}
