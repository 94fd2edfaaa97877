package handler

import (
	propertyapp "github.com/dovepeak/backend/internal/application/property"
	"github.com/dovepeak/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ApartmentHandler handles apartment API endpoints
type ApartmentHandler struct {
	BaseHandler
	apartmentService *propertyapp.ApartmentService
}

// NewApartmentHandler creates a new ApartmentHandler
func NewApartmentHandler(apartmentService *propertyapp.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{apartmentService: apartmentService}
}

// Create registers a new apartment building
func (h *ApartmentHandler) Create(c *gin.Context) {
	var req propertyapp.CreateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	apartment, err := h.apartmentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, apartment)
}

// GetByID retrieves an apartment by ID
func (h *ApartmentHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid apartment ID")
		return
	}

	apartment, err := h.apartmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, apartment)
}

// List retrieves all apartments
func (h *ApartmentHandler) List(c *gin.Context) {
	apartments, err := h.apartmentService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, apartments, dto.Meta{Total: len(apartments)})
}

// Update updates an apartment's details
func (h *ApartmentHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid apartment ID")
		return
	}

	var req propertyapp.UpdateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	apartment, err := h.apartmentService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, apartment)
}

// Delete removes an apartment that has no units
func (h *ApartmentHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid apartment ID")
		return
	}

	if err := h.apartmentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
