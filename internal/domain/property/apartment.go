package property

import (
	"strings"

	"github.com/dovepeak/backend/internal/domain/shared"
)

// Apartment represents an apartment building managed by the portal.
// It owns zero or more Units; totalUnits is the declared capacity and
// is not derived from the Unit records.
type Apartment struct {
	shared.BaseEntity
	Name        string `json:"name"`
	Address     string `json:"address"`
	TotalUnits  int    `json:"totalUnits"`
	Description string `json:"description,omitempty"`
}

// NewApartment creates a new apartment with required fields
func NewApartment(name, address string, totalUnits int) (*Apartment, error) {
	if err := validateApartmentName(name); err != nil {
		return nil, err
	}
	if err := validateAddress(address); err != nil {
		return nil, err
	}
	if totalUnits < 0 {
		return nil, shared.NewDomainError("INVALID_TOTAL_UNITS", "Total units cannot be negative")
	}

	return &Apartment{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    address,
		TotalUnits: totalUnits,
	}, nil
}

// Update updates the apartment's basic information
func (a *Apartment) Update(name, address string, totalUnits int) error {
	if err := validateApartmentName(name); err != nil {
		return err
	}
	if err := validateAddress(address); err != nil {
		return err
	}
	if totalUnits < 0 {
		return shared.NewDomainError("INVALID_TOTAL_UNITS", "Total units cannot be negative")
	}

	a.Name = name
	a.Address = address
	a.TotalUnits = totalUnits
	a.Touch()

	return nil
}

// SetDescription sets the apartment's description
func (a *Apartment) SetDescription(description string) {
	a.Description = description
	a.Touch()
}

func validateApartmentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Apartment name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Apartment name cannot exceed 200 characters")
	}
	return nil
}

func validateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot be empty")
	}
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	return nil
}
