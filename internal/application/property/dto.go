package property

import (
	"time"

	"github.com/dovepeak/backend/internal/domain/property"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Apartment DTOs
// =============================================================================

// CreateApartmentRequest represents a request to create a new apartment
type CreateApartmentRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Address     string `json:"address" binding:"required,min=1,max=500"`
	TotalUnits  int    `json:"total_units" binding:"required,min=1"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateApartmentRequest represents a request to update an apartment
type UpdateApartmentRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Address     *string `json:"address" binding:"omitempty,min=1,max=500"`
	TotalUnits  *int    `json:"total_units" binding:"omitempty,min=1"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// ApartmentResponse represents an apartment in API responses
type ApartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	TotalUnits  int       `json:"total_units"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToApartmentResponse converts a domain apartment to a response DTO
func ToApartmentResponse(a *property.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ID:          a.ID,
		Name:        a.Name,
		Address:     a.Address,
		TotalUnits:  a.TotalUnits,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToApartmentResponses converts a slice of domain apartments
func ToApartmentResponses(apartments []property.Apartment) []ApartmentResponse {
	responses := make([]ApartmentResponse, len(apartments))
	for i := range apartments {
		responses[i] = ToApartmentResponse(&apartments[i])
	}
	return responses
}

// =============================================================================
// Unit DTOs
// =============================================================================

// CreateUnitRequest represents a request to create a new unit
type CreateUnitRequest struct {
	ApartmentID uuid.UUID       `json:"apartment_id" binding:"required"`
	UnitNumber  string          `json:"unit_number" binding:"required,min=1,max=20"`
	Type        string          `json:"type" binding:"required,oneof=studio bedsitter 1-bedroom 2-bedroom 3-bedroom penthouse"`
	Size        int             `json:"size" binding:"required,min=1"`
	RentAmount  decimal.Decimal `json:"rent_amount" binding:"required"`
	Deposit     decimal.Decimal `json:"deposit"`
	Description string          `json:"description" binding:"max=2000"`
	Amenities   []string        `json:"amenities"`
}

// UpdateUnitRequest represents a request to update a unit
type UpdateUnitRequest struct {
	UnitNumber  *string          `json:"unit_number" binding:"omitempty,min=1,max=20"`
	Type        *string          `json:"type" binding:"omitempty,oneof=studio bedsitter 1-bedroom 2-bedroom 3-bedroom penthouse"`
	Size        *int             `json:"size" binding:"omitempty,min=1"`
	RentAmount  *decimal.Decimal `json:"rent_amount"`
	Deposit     *decimal.Decimal `json:"deposit"`
	Status      *string          `json:"status" binding:"omitempty,oneof=vacant occupied maintenance"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Amenities   []string         `json:"amenities"`
}

// UnitResponse represents a unit in API responses
type UnitResponse struct {
	ID          uuid.UUID       `json:"id"`
	ApartmentID uuid.UUID       `json:"apartment_id"`
	UnitNumber  string          `json:"unit_number"`
	Type        string          `json:"type"`
	Size        int             `json:"size"`
	RentAmount  decimal.Decimal `json:"rent_amount"`
	Deposit     decimal.Decimal `json:"deposit"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	Amenities   []string        `json:"amenities"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToUnitResponse converts a domain unit to a response DTO
func ToUnitResponse(u *property.Unit) UnitResponse {
	return UnitResponse{
		ID:          u.ID,
		ApartmentID: u.ApartmentID,
		UnitNumber:  u.UnitNumber,
		Type:        string(u.Type),
		Size:        u.Size,
		RentAmount:  u.RentAmount,
		Deposit:     u.Deposit,
		Status:      string(u.Status),
		Description: u.Description,
		Amenities:   u.Amenities,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ToUnitResponses converts a slice of domain units
func ToUnitResponses(units []property.Unit) []UnitResponse {
	responses := make([]UnitResponse, len(units))
	for i := range units {
		responses[i] = ToUnitResponse(&units[i])
	}
	return responses
}
