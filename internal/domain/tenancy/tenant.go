package tenancy

import (
	"regexp"
	"strings"
	"time"

	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TenantStatus represents the lease status of a tenant
type TenantStatus string

const (
	TenantStatusActive     TenantStatus = "active"
	TenantStatusInactive   TenantStatus = "inactive"
	TenantStatusTerminated TenantStatus = "terminated"
)

// EmergencyContact holds the person to reach when the tenant is unavailable
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Tenant represents a person leasing a unit.
// A tenant belongs to exactly one unit and one apartment; the two
// references must stay mutually consistent.
type Tenant struct {
	shared.BaseEntity
	UnitID           uuid.UUID        `json:"unitId"`
	ApartmentID      uuid.UUID        `json:"apartmentId"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	IDNumber         string           `json:"idNumber"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	LeaseStart       time.Time        `json:"leaseStart"`
	LeaseEnd         time.Time        `json:"leaseEnd"`
	RentAmount       decimal.Decimal  `json:"rentAmount"`
	Deposit          decimal.Decimal  `json:"deposit"`
	ContractDocument string           `json:"contractDocument,omitempty"`
	Status           TenantStatus     `json:"status"`
}

// NewTenant creates a new active tenant for a unit
func NewTenant(unitID, apartmentID uuid.UUID, firstName, lastName, email, phone, idNumber string, leaseStart, leaseEnd time.Time, rentAmount, deposit decimal.Decimal) (*Tenant, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Tenant must reference a unit")
	}
	if apartmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_APARTMENT", "Tenant must reference an apartment")
	}
	if err := validatePersonName(firstName, "First name"); err != nil {
		return nil, err
	}
	if err := validatePersonName(lastName, "Last name"); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validateLease(leaseStart, leaseEnd); err != nil {
		return nil, err
	}
	if rentAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RENT", "Rent amount cannot be negative")
	}
	if deposit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DEPOSIT", "Deposit cannot be negative")
	}

	return &Tenant{
		BaseEntity:  shared.NewBaseEntity(),
		UnitID:      unitID,
		ApartmentID: apartmentID,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Phone:       phone,
		IDNumber:    idNumber,
		LeaseStart:  leaseStart,
		LeaseEnd:    leaseEnd,
		RentAmount:  rentAmount,
		Deposit:     deposit,
		Status:      TenantStatusActive,
	}, nil
}

// FullName returns the tenant's display name
func (t *Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}

// UpdateContact updates the tenant's contact details
func (t *Tenant) UpdateContact(email, phone string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}

	t.Email = email
	t.Phone = phone
	t.Touch()

	return nil
}

// SetEmergencyContact sets the tenant's emergency contact
func (t *Tenant) SetEmergencyContact(name, phone, relationship string) {
	t.EmergencyContact = EmergencyContact{
		Name:         name,
		Phone:        phone,
		Relationship: relationship,
	}
	t.Touch()
}

// RenewLease extends the lease to a new end date
func (t *Tenant) RenewLease(leaseEnd time.Time) error {
	if !leaseEnd.After(t.LeaseStart) {
		return shared.NewDomainError("INVALID_LEASE", "Lease end must be after lease start")
	}

	t.LeaseEnd = leaseEnd
	t.Touch()

	return nil
}

// SetRent updates the agreed rent amount
func (t *Tenant) SetRent(rentAmount decimal.Decimal) error {
	if rentAmount.IsNegative() {
		return shared.NewDomainError("INVALID_RENT", "Rent amount cannot be negative")
	}

	t.RentAmount = rentAmount
	t.Touch()

	return nil
}

// SetContractDocument attaches a contract document reference
func (t *Tenant) SetContractDocument(doc string) {
	t.ContractDocument = doc
	t.Touch()
}

// SetStatus changes the tenant's lease status
func (t *Tenant) SetStatus(status TenantStatus) error {
	switch status {
	case TenantStatusActive, TenantStatusInactive, TenantStatusTerminated:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Tenant status must be 'active', 'inactive', or 'terminated'")
	}

	t.Status = status
	t.Touch()

	return nil
}

// IsActive returns true if the tenant currently holds a lease
func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}

func validatePersonName(name, field string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", field+" cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", field+" cannot exceed 100 characters")
	}
	return nil
}

func validateLease(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return shared.NewDomainError("INVALID_LEASE", "Lease start and end are required")
	}
	if !end.After(start) {
		return shared.NewDomainError("INVALID_LEASE", "Lease end must be after lease start")
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail performs basic email format validation
func ValidateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
