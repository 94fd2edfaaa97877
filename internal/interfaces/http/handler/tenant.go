package handler

import (
	tenancyapp "github.com/dovepeak/backend/internal/application/tenancy"
	"github.com/dovepeak/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// TenantHandler handles tenant API endpoints
type TenantHandler struct {
	BaseHandler
	tenantService *tenancyapp.TenantService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService *tenancyapp.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// Create registers a tenant into a vacant unit
func (h *TenantHandler) Create(c *gin.Context) {
	var req tenancyapp.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, tenant)
}

// GetByID retrieves a tenant by ID
func (h *TenantHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	tenant, err := h.tenantService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tenant)
}

// List retrieves tenants, optionally filtered by apartment
func (h *TenantHandler) List(c *gin.Context) {
	apartmentID, err := optionalUUIDQuery(c, "apartment_id")
	if err != nil {
		h.BadRequest(c, "Invalid apartment_id filter")
		return
	}

	tenants, err := h.tenantService.List(c.Request.Context(), apartmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, tenants, dto.Meta{Total: len(tenants)})
}

// Update updates a tenant's details, lease, or status
func (h *TenantHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req tenancyapp.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenant, err := h.tenantService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tenant)
}

// Delete removes a tenant and frees their unit
func (h *TenantHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	if err := h.tenantService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
