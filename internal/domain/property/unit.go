package property

import (
	"strings"

	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitType represents the layout category of a unit
type UnitType string

const (
	UnitTypeStudio       UnitType = "studio"
	UnitTypeBedsitter    UnitType = "bedsitter"
	UnitTypeOneBedroom   UnitType = "1-bedroom"
	UnitTypeTwoBedroom   UnitType = "2-bedroom"
	UnitTypeThreeBedroom UnitType = "3-bedroom"
	UnitTypePenthouse    UnitType = "penthouse"
)

// UnitStatus represents the occupancy status of a unit
type UnitStatus string

const (
	UnitStatusVacant      UnitStatus = "vacant"
	UnitStatusOccupied    UnitStatus = "occupied"
	UnitStatusMaintenance UnitStatus = "maintenance"
)

// Unit represents a single rentable flat within an Apartment
type Unit struct {
	shared.BaseEntity
	ApartmentID uuid.UUID       `json:"apartmentId"`
	UnitNumber  string          `json:"unitNumber"`
	Type        UnitType        `json:"type"`
	Size        int             `json:"size"` // square feet
	RentAmount  decimal.Decimal `json:"rentAmount"`
	Deposit     decimal.Decimal `json:"deposit"`
	Status      UnitStatus      `json:"status"`
	Description string          `json:"description,omitempty"`
	Amenities   []string        `json:"amenities"`
}

// NewUnit creates a new unit belonging to an apartment
func NewUnit(apartmentID uuid.UUID, unitNumber string, unitType UnitType, size int, rentAmount, deposit decimal.Decimal) (*Unit, error) {
	if apartmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_APARTMENT", "Unit must reference an apartment")
	}
	if err := validateUnitNumber(unitNumber); err != nil {
		return nil, err
	}
	if err := validateUnitType(unitType); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, shared.NewDomainError("INVALID_SIZE", "Unit size must be positive")
	}
	if rentAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RENT", "Rent amount cannot be negative")
	}
	if deposit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DEPOSIT", "Deposit cannot be negative")
	}

	return &Unit{
		BaseEntity:  shared.NewBaseEntity(),
		ApartmentID: apartmentID,
		UnitNumber:  strings.ToUpper(unitNumber),
		Type:        unitType,
		Size:        size,
		RentAmount:  rentAmount,
		Deposit:     deposit,
		Status:      UnitStatusVacant,
		Amenities:   []string{},
	}, nil
}

// Update updates the unit's basic information
func (u *Unit) Update(unitNumber string, unitType UnitType, size int, rentAmount, deposit decimal.Decimal) error {
	if err := validateUnitNumber(unitNumber); err != nil {
		return err
	}
	if err := validateUnitType(unitType); err != nil {
		return err
	}
	if size <= 0 {
		return shared.NewDomainError("INVALID_SIZE", "Unit size must be positive")
	}
	if rentAmount.IsNegative() {
		return shared.NewDomainError("INVALID_RENT", "Rent amount cannot be negative")
	}
	if deposit.IsNegative() {
		return shared.NewDomainError("INVALID_DEPOSIT", "Deposit cannot be negative")
	}

	u.UnitNumber = strings.ToUpper(unitNumber)
	u.Type = unitType
	u.Size = size
	u.RentAmount = rentAmount
	u.Deposit = deposit
	u.Touch()

	return nil
}

// SetStatus changes the unit's occupancy status.
// Transitions are application-driven; any valid status may follow any other.
func (u *Unit) SetStatus(status UnitStatus) error {
	if err := validateUnitStatus(status); err != nil {
		return err
	}

	u.Status = status
	u.Touch()

	return nil
}

// SetAmenities replaces the unit's amenity set
func (u *Unit) SetAmenities(amenities []string) {
	if amenities == nil {
		amenities = []string{}
	}
	u.Amenities = amenities
	u.Touch()
}

// SetDescription sets the unit's description
func (u *Unit) SetDescription(description string) {
	u.Description = description
	u.Touch()
}

// IsVacant returns true if the unit is available for lease
func (u *Unit) IsVacant() bool {
	return u.Status == UnitStatusVacant
}

// IsOccupied returns true if the unit is currently leased
func (u *Unit) IsOccupied() bool {
	return u.Status == UnitStatusOccupied
}

func validateUnitNumber(unitNumber string) error {
	if strings.TrimSpace(unitNumber) == "" {
		return shared.NewDomainError("INVALID_UNIT_NUMBER", "Unit number cannot be empty")
	}
	if len(unitNumber) > 20 {
		return shared.NewDomainError("INVALID_UNIT_NUMBER", "Unit number cannot exceed 20 characters")
	}
	return nil
}

func validateUnitType(t UnitType) error {
	switch t {
	case UnitTypeStudio, UnitTypeBedsitter, UnitTypeOneBedroom, UnitTypeTwoBedroom, UnitTypeThreeBedroom, UnitTypePenthouse:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Invalid unit type")
	}
}

func validateUnitStatus(status UnitStatus) error {
	switch status {
	case UnitStatusVacant, UnitStatusOccupied, UnitStatusMaintenance:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Unit status must be 'vacant', 'occupied', or 'maintenance'")
	}
}
