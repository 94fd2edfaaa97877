package handler

import (
	"time"

	billingapp "github.com/dovepeak/backend/internal/application/billing"
	"github.com/dovepeak/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles rent payment API endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *billingapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *billingapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create registers a rent payment obligation for a tenant
func (h *PaymentHandler) Create(c *gin.Context) {
	var req billingapp.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, payment)
}

// GetByID retrieves a payment by ID
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payment)
}

// List retrieves payments filtered by tenant, apartment, or status
func (h *PaymentHandler) List(c *gin.Context) {
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

	payments, err := h.paymentService.List(c.Request.Context(), tenantID, apartmentID, c.Query("status"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, payments, dto.Meta{Total: len(payments)})
}

// Record marks a payment as paid or partially paid
func (h *PaymentHandler) Record(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req billingapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	payment, err := h.paymentService.Record(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payment)
}

// SetPenalty applies a late penalty to an unsettled payment
func (h *PaymentHandler) SetPenalty(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req billingapp.SetPenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	payment, err := h.paymentService.SetPenalty(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payment)
}

// RefreshOverdue sweeps pending payments past their due date into overdue
func (h *PaymentHandler) RefreshOverdue(c *gin.Context) {
	updated, err := h.paymentService.RefreshOverdue(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"updated": updated})
}

// Delete removes a payment record
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
