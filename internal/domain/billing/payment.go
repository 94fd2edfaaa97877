package billing

import (
	"time"

	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement status of a rent payment
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
	PaymentStatusPartial PaymentStatus = "partial"
)

// PaymentMethod represents how a payment was settled
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodMobile PaymentMethod = "mobile"
	PaymentMethodCheque PaymentMethod = "cheque"
)

// Payment represents a rent payment owed by a tenant for a unit
type Payment struct {
	shared.BaseEntity
	TenantID    uuid.UUID        `json:"tenantId"`
	UnitID      uuid.UUID        `json:"unitId"`
	ApartmentID uuid.UUID        `json:"apartmentId"`
	Amount      decimal.Decimal  `json:"amount"`
	DueDate     time.Time        `json:"dueDate"`
	PaidDate    *time.Time       `json:"paidDate,omitempty"`
	Status      PaymentStatus    `json:"status"`
	Method      PaymentMethod    `json:"method,omitempty"`
	Reference   string           `json:"reference,omitempty"`
	Penalty     *decimal.Decimal `json:"penalty,omitempty"`
	Notes       string           `json:"notes,omitempty"`
}

// NewPayment creates a new pending payment
func NewPayment(tenantID, unitID, apartmentID uuid.UUID, amount decimal.Decimal, dueDate time.Time) (*Payment, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Payment must reference a tenant")
	}
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Payment must reference a unit")
	}
	if apartmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_APARTMENT", "Payment must reference an apartment")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date is required")
	}

	return &Payment{
		BaseEntity:  shared.NewBaseEntity(),
		TenantID:    tenantID,
		UnitID:      unitID,
		ApartmentID: apartmentID,
		Amount:      amount,
		DueDate:     dueDate,
		Status:      PaymentStatusPending,
	}, nil
}

// MarkPaid settles the payment in full
func (p *Payment) MarkPaid(paidDate time.Time, method PaymentMethod, reference string) error {
	if p.Status == PaymentStatusPaid {
		return shared.NewDomainError("ALREADY_PAID", "Payment has already been settled")
	}
	if err := validatePaymentMethod(method); err != nil {
		return err
	}

	p.Status = PaymentStatusPaid
	p.PaidDate = &paidDate
	p.Method = method
	p.Reference = reference
	p.Touch()

	return nil
}

// MarkPartial records a partial settlement
func (p *Payment) MarkPartial(paidDate time.Time, method PaymentMethod, reference string) error {
	if p.Status == PaymentStatusPaid {
		return shared.NewDomainError("ALREADY_PAID", "Payment has already been settled")
	}
	if err := validatePaymentMethod(method); err != nil {
		return err
	}

	p.Status = PaymentStatusPartial
	p.PaidDate = &paidDate
	p.Method = method
	p.Reference = reference
	p.Touch()

	return nil
}

// MarkOverdue flags an unsettled payment past its due date
func (p *Payment) MarkOverdue() error {
	if p.Status == PaymentStatusPaid {
		return shared.NewDomainError("ALREADY_PAID", "Paid payment cannot become overdue")
	}

	p.Status = PaymentStatusOverdue
	p.Touch()

	return nil
}

// SetPenalty applies a late-payment penalty
func (p *Payment) SetPenalty(penalty decimal.Decimal) error {
	if penalty.IsNegative() {
		return shared.NewDomainError("INVALID_PENALTY", "Penalty cannot be negative")
	}

	p.Penalty = &penalty
	p.Touch()

	return nil
}

// SetNotes sets free-form notes on the payment
func (p *Payment) SetNotes(notes string) {
	p.Notes = notes
	p.Touch()
}

// TotalDue returns amount plus penalty, treating a missing penalty as zero
func (p *Payment) TotalDue() decimal.Decimal {
	if p.Penalty == nil {
		return p.Amount
	}
	return p.Amount.Add(*p.Penalty)
}

// IsPaid returns true if the payment is fully settled
func (p *Payment) IsPaid() bool {
	return p.Status == PaymentStatusPaid
}

// IsPastDue reports whether an unsettled payment is past its due date
func (p *Payment) IsPastDue(now time.Time) bool {
	return p.Status != PaymentStatusPaid && now.After(p.DueDate)
}

func validatePaymentMethod(method PaymentMethod) error {
	switch method {
	case PaymentMethodCash, PaymentMethodBank, PaymentMethodMobile, PaymentMethodCheque:
		return nil
	default:
		return shared.NewDomainError("INVALID_METHOD", "Payment method must be 'cash', 'bank', 'mobile', or 'cheque'")
	}
}
