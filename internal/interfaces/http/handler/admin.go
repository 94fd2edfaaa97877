package handler

import (
	identityapp "github.com/dovepeak/backend/internal/application/identity"
	"github.com/dovepeak/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles administration endpoints: property managers,
// tenant portal accounts, site settings, and the audit trail.
type AdminHandler struct {
	BaseHandler
	adminService *identityapp.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService *identityapp.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// CreateManager registers a property manager
func (h *AdminHandler) CreateManager(c *gin.Context) {
	var req identityapp.CreateManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	manager, err := h.adminService.CreateManager(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, manager)
}

// GetManager retrieves a property manager by ID
func (h *AdminHandler) GetManager(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid manager ID")
		return
	}

	manager, err := h.adminService.GetManager(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, manager)
}

// ListManagers retrieves all property managers
func (h *AdminHandler) ListManagers(c *gin.Context) {
	managers, err := h.adminService.ListManagers(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, managers, dto.Meta{Total: len(managers)})
}

// UpdateManager updates a manager's permissions, portfolio, or status
func (h *AdminHandler) UpdateManager(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid manager ID")
		return
	}

	var req identityapp.UpdateManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	manager, err := h.adminService.UpdateManager(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, manager)
}

// DeleteManager removes a property manager
func (h *AdminHandler) DeleteManager(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid manager ID")
		return
	}

	if err := h.adminService.DeleteManager(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateTenantAccount enables portal access for an existing tenant
func (h *AdminHandler) CreateTenantAccount(c *gin.Context) {
	var req identityapp.CreateTenantAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	account, err := h.adminService.CreateTenantAccount(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, account)
}

// ListTenantAccounts retrieves all tenant portal accounts
func (h *AdminHandler) ListTenantAccounts(c *gin.Context) {
	accounts, err := h.adminService.ListTenantAccounts(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, accounts, dto.Meta{Total: len(accounts)})
}

// DeleteTenantAccount removes a tenant's portal access
func (h *AdminHandler) DeleteTenantAccount(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	if err := h.adminService.DeleteTenantAccount(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// GetSettings returns the site-wide settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.adminService.GetSettings(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, settings)
}

// UpdateSettings replaces the site-wide settings
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req identityapp.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	settings, err := h.adminService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, settings)
}

// ListAuditLogs retrieves audit entries, optionally filtered by user
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	userID, err := optionalUUIDQuery(c, "user_id")
	if err != nil {
		h.BadRequest(c, "Invalid user_id filter")
		return
	}

	entries, err := h.adminService.ListAuditLogs(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, entries, dto.Meta{Total: len(entries)})
}
