package handler

import (
	"time"

	billingapp "github.com/dovepeak/backend/internal/application/billing"
	identityapp "github.com/dovepeak/backend/internal/application/identity"
	maintenanceapp "github.com/dovepeak/backend/internal/application/maintenance"
	notificationapp "github.com/dovepeak/backend/internal/application/notification"
	reportapp "github.com/dovepeak/backend/internal/application/report"
	tenancyapp "github.com/dovepeak/backend/internal/application/tenancy"
	"github.com/dovepeak/backend/internal/domain/report"
	"github.com/dovepeak/backend/internal/interfaces/http/dto"
	"github.com/dovepeak/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PortalHandler handles tenant self-service endpoints. Every route is
// scoped to the tenant behind the authenticated portal account; the
// tenant ID never comes from request input.
type PortalHandler struct {
	BaseHandler
	adminService        *identityapp.AdminService
	tenantService       *tenancyapp.TenantService
	reportService       *reportapp.Service
	paymentService      *billingapp.PaymentService
	requestService      *maintenanceapp.RequestService
	notificationService *notificationapp.Service
}

// NewPortalHandler creates a new PortalHandler
func NewPortalHandler(
	adminService *identityapp.AdminService,
	tenantService *tenancyapp.TenantService,
	reportService *reportapp.Service,
	paymentService *billingapp.PaymentService,
	requestService *maintenanceapp.RequestService,
	notificationService *notificationapp.Service,
) *PortalHandler {
	return &PortalHandler{
		adminService:        adminService,
		tenantService:       tenantService,
		reportService:       reportService,
		paymentService:      paymentService,
		requestService:      requestService,
		notificationService: notificationService,
	}
}

// currentTenantID resolves the tenant behind the authenticated account
func (h *PortalHandler) currentTenantID(c *gin.Context) (uuid.UUID, bool) {
	accountID, ok := middleware.GetJWTUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return uuid.Nil, false
	}

	account, err := h.adminService.GetTenantAccount(c.Request.Context(), accountID)
	if err != nil {
		h.Unauthorized(c, "Portal account no longer exists")
		return uuid.Nil, false
	}

	return account.TenantID, true
}

// Dashboard returns the tenant's portal summary
func (h *PortalHandler) Dashboard(c *gin.Context) {
	tenantID, ok := h.currentTenantID(c)
	if !ok {
		return
	}

	stats, err := h.reportService.TenantDashboard(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}

// PortalLeaseResponse is the tenant's lease record together with the
// expiry countdown the dashboards show.
type PortalLeaseResponse struct {
	tenancyapp.TenantResponse
	DaysUntilLeaseEnd int  `json:"days_until_lease_end"`
	LeaseExpiringSoon bool `json:"lease_expiring_soon"`
}

// Lease returns the tenant's own lease record with an expiry countdown
func (h *PortalHandler) Lease(c *gin.Context) {
	tenantID, ok := h.currentTenantID(c)
	if !ok {
		return
	}

	tenant, err := h.tenantService.GetByID(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	now := time.Now()
	h.Success(c, PortalLeaseResponse{
		TenantResponse:    *tenant,
		DaysUntilLeaseEnd: report.DaysUntilLeaseExpiry(tenant.LeaseEnd, now),
		LeaseExpiringSoon: report.IsLeaseExpiringSoon(tenant.LeaseEnd, now),
	})
}

// ListPayments returns the tenant's own payment history
func (h *PortalHandler) ListPayments(c *gin.Context) {
	tenantID, ok := h.currentTenantID(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.List(c.Request.Context(), &tenantID, nil, c.Query("status"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, payments, dto.Meta{Total: len(payments)})
}

// PortalMaintenanceRequest is the tenant-facing request body for filing
// a maintenance request; the tenant is taken from the session.
type PortalMaintenanceRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Category    string `json:"category" binding:"required,oneof=plumbing electrical hvac appliance structural other"`
	Priority    string `json:"priority" binding:"required,oneof=low medium high urgent"`
}

// CreateMaintenanceRequest files a maintenance request for the tenant's unit
func (h *PortalHandler) CreateMaintenanceRequest(c *gin.Context) {
	tenantID, ok := h.currentTenantID(c)
	if !ok {
		return
	}

	var req PortalMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), maintenanceapp.CreateRequestRequest{
		TenantID:    tenantID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, request)
}

// ListMaintenanceRequests returns the tenant's own maintenance requests
func (h *PortalHandler) ListMaintenanceRequests(c *gin.Context) {
	tenantID, ok := h.currentTenantID(c)
	if !ok {
		return
	}

	requests, err := h.requestService.List(c.Request.Context(), &tenantID, nil, c.Query("status"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, requests, dto.Meta{Total: len(requests)})
}

// ListNotifications returns notifications addressed to the tenant
func (h *PortalHandler) ListNotifications(c *gin.Context) {
	tenantID, ok := h.currentTenantID(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.List(c.Request.Context(), &tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, notifications, dto.Meta{Total: len(notifications)})
}
