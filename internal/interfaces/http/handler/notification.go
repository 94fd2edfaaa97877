package handler

import (
	notificationapp "github.com/dovepeak/backend/internal/application/notification"
	"github.com/dovepeak/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// NotificationHandler handles notification API endpoints
type NotificationHandler struct {
	BaseHandler
	notificationService *notificationapp.Service
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *notificationapp.Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// Create drafts a notification addressed to one or more tenants
func (h *NotificationHandler) Create(c *gin.Context) {
	var req notificationapp.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	notification, err := h.notificationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, notification)
}

// GetByID retrieves a notification by ID
func (h *NotificationHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid notification ID")
		return
	}

	notification, err := h.notificationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, notification)
}

// List retrieves notifications, optionally filtered by recipient
func (h *NotificationHandler) List(c *gin.Context) {
	recipientID, err := optionalUUIDQuery(c, "recipient_id")
	if err != nil {
		h.BadRequest(c, "Invalid recipient_id filter")
		return
	}

	notifications, err := h.notificationService.List(c.Request.Context(), recipientID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, notifications, dto.Meta{Total: len(notifications)})
}

// Send dispatches a notification to its recipients
func (h *NotificationHandler) Send(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid notification ID")
		return
	}

	result, err := h.notificationService.Send(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a notification record
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid notification ID")
		return
	}

	if err := h.notificationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
