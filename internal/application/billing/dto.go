package billing

import (
	"time"

	"github.com/dovepeak/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest represents a request to bill a tenant
type CreatePaymentRequest struct {
	TenantID uuid.UUID       `json:"tenant_id" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	DueDate  time.Time       `json:"due_date" binding:"required"`
	Notes    string          `json:"notes" binding:"max=2000"`
}

// RecordPaymentRequest represents a request to settle a payment
type RecordPaymentRequest struct {
	PaidDate  time.Time `json:"paid_date" binding:"required"`
	Method    string    `json:"method" binding:"required,oneof=cash bank mobile cheque"`
	Reference string    `json:"reference" binding:"max=100"`
	Partial   bool      `json:"partial"`
}

// SetPenaltyRequest represents a request to apply a late penalty
type SetPenaltyRequest struct {
	Penalty decimal.Decimal `json:"penalty" binding:"required"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID          uuid.UUID        `json:"id"`
	TenantID    uuid.UUID        `json:"tenant_id"`
	UnitID      uuid.UUID        `json:"unit_id"`
	ApartmentID uuid.UUID        `json:"apartment_id"`
	Amount      decimal.Decimal  `json:"amount"`
	DueDate     time.Time        `json:"due_date"`
	PaidDate    *time.Time       `json:"paid_date,omitempty"`
	Status      string           `json:"status"`
	Method      string           `json:"method,omitempty"`
	Reference   string           `json:"reference,omitempty"`
	Penalty     *decimal.Decimal `json:"penalty,omitempty"`
	TotalDue    decimal.Decimal  `json:"total_due"`
	Notes       string           `json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ToPaymentResponse converts a domain payment to a response DTO
func ToPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		UnitID:      p.UnitID,
		ApartmentID: p.ApartmentID,
		Amount:      p.Amount,
		DueDate:     p.DueDate,
		PaidDate:    p.PaidDate,
		Status:      string(p.Status),
		Method:      string(p.Method),
		Reference:   p.Reference,
		Penalty:     p.Penalty,
		TotalDue:    p.TotalDue(),
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToPaymentResponses converts a slice of domain payments
func ToPaymentResponses(payments []billing.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}
