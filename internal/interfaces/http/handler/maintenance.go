package handler

import (
	maintenanceapp "github.com/dovepeak/backend/internal/application/maintenance"
	"github.com/dovepeak/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// MaintenanceHandler handles maintenance request API endpoints
type MaintenanceHandler struct {
	BaseHandler
	requestService *maintenanceapp.RequestService
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(requestService *maintenanceapp.RequestService) *MaintenanceHandler {
	return &MaintenanceHandler{requestService: requestService}
}

// Create files a maintenance request for a tenant's unit
func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req maintenanceapp.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, request)
}

// GetByID retrieves a maintenance request by ID
func (h *MaintenanceHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	request, err := h.requestService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, request)
}

// List retrieves maintenance requests filtered by tenant, apartment, or status
func (h *MaintenanceHandler) List(c *gin.Context) {
	tenantID, err := optionalUUIDQuery(c, "tenant_id")
	if err != nil {
		h.BadRequest(c, "Invalid tenant_id filter")
		return
	}
	apartmentID, err := optionalUUIDQuery(c, "apartment_id")
	if err != nil {
		h.BadRequest(c, "Invalid apartment_id filter")
		return
	}

	requests, err := h.requestService.List(c.Request.Context(), tenantID, apartmentID, c.Query("status"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, requests, dto.Meta{Total: len(requests)})
}

// Assign assigns a maintenance request to a worker
func (h *MaintenanceHandler) Assign(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	var req maintenanceapp.AssignRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	request, err := h.requestService.Assign(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, request)
}

// Start moves an assigned request into progress
func (h *MaintenanceHandler) Start(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	request, err := h.requestService.Start(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, request)
}

// Complete closes a request as done
func (h *MaintenanceHandler) Complete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	var req maintenanceapp.CompleteRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	request, err := h.requestService.Complete(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, request)
}

// Cancel closes a request without doing the work
func (h *MaintenanceHandler) Cancel(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	request, err := h.requestService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, request)
}

// Update adjusts a request's priority or notes
func (h *MaintenanceHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	var req maintenanceapp.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	request, err := h.requestService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, request)
}

// Delete removes a maintenance request record
func (h *MaintenanceHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	if err := h.requestService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
