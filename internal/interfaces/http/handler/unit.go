package handler

import (
	propertyapp "github.com/dovepeak/backend/internal/application/property"
	"github.com/dovepeak/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// UnitHandler handles unit API endpoints
type UnitHandler struct {
	BaseHandler
	unitService *propertyapp.UnitService
}

// NewUnitHandler creates a new UnitHandler
func NewUnitHandler(unitService *propertyapp.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// Create registers a new unit in an apartment
func (h *UnitHandler) Create(c *gin.Context) {
	var req propertyapp.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	unit, err := h.unitService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, unit)
}

// GetByID retrieves a unit by ID
func (h *UnitHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid unit ID")
		return
	}

	unit, err := h.unitService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unit)
}

// List retrieves units, optionally filtered by apartment and status
func (h *UnitHandler) List(c *gin.Context) {
	apartmentID, err := optionalUUIDQuery(c, "apartment_id")
	if err != nil {
		h.BadRequest(c, "Invalid apartment_id filter")
		return
	}

	units, err := h.unitService.List(c.Request.Context(), apartmentID, c.Query("status"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, units, dto.Meta{Total: len(units)})
}

// Update updates a unit's details or status
func (h *UnitHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid unit ID")
		return
	}

	var req propertyapp.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	unit, err := h.unitService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unit)
}

// Delete removes a unit that has no tenants
func (h *UnitHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid unit ID")
		return
	}

	if err := h.unitService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
