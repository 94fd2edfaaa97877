package billing

import (
	"context"
	"time"

	"github.com/dovepeak/backend/internal/domain/billing"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService handles rent billing operations
type PaymentService struct {
	paymentRepo billing.PaymentRepository
	tenantRepo  tenancy.TenantRepository
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo billing.PaymentRepository, tenantRepo tenancy.TenantRepository, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		tenantRepo:  tenantRepo,
		logger:      logger,
	}
}

// Create bills a tenant for rent. The payment inherits the tenant's unit
// and apartment references.
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, req.TenantID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant does not exist")
	}

	payment, err := billing.NewPayment(tenant.ID, tenant.UnitID, tenant.ApartmentID, req.Amount, req.DueDate)
	if err != nil {
		return nil, err
	}

	if req.Notes != "" {
		payment.SetNotes(req.Notes)
	}

	if err := s.paymentRepo.Add(ctx, payment); err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, id uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// List retrieves payments, optionally filtered by tenant, apartment, or status
func (s *PaymentService) List(ctx context.Context, tenantID, apartmentID *uuid.UUID, status string) ([]PaymentResponse, error) {
	var (
		payments []billing.Payment
		err      error
	)

	switch {
	case tenantID != nil:
		payments, err = s.paymentRepo.FindByTenant(ctx, *tenantID)
	case apartmentID != nil:
		payments, err = s.paymentRepo.FindByApartment(ctx, *apartmentID)
	case status != "":
		payments, err = s.paymentRepo.FindByStatus(ctx, billing.PaymentStatus(status))
	default:
		payments, err = s.paymentRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if status != "" && (tenantID != nil || apartmentID != nil) {
		filtered := payments[:0]
		for _, p := range payments {
			if p.Status == billing.PaymentStatus(status) {
				filtered = append(filtered, p)
			}
		}
		payments = filtered
	}

	return ToPaymentResponses(payments), nil
}

// Record settles a payment, fully or partially
func (s *PaymentService) Record(ctx context.Context, id uuid.UUID, req RecordPaymentRequest) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	method := billing.PaymentMethod(req.Method)
	if req.Partial {
		err = payment.MarkPartial(req.PaidDate, method, req.Reference)
	} else {
		err = payment.MarkPaid(req.PaidDate, method, req.Reference)
	}
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// SetPenalty applies a late penalty to a payment
func (s *PaymentService) SetPenalty(ctx context.Context, id uuid.UUID, req SetPenaltyRequest) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := payment.SetPenalty(req.Penalty); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// RefreshOverdue sweeps pending payments past their due date into overdue
// status. Returns the number of payments flagged.
func (s *PaymentService) RefreshOverdue(ctx context.Context, now time.Time) (int, error) {
	pending, err := s.paymentRepo.FindByStatus(ctx, billing.PaymentStatusPending)
	if err != nil {
		return 0, err
	}

	flagged := 0
	for i := range pending {
		p := &pending[i]
		if !p.IsPastDue(now) {
			continue
		}
		if err := p.MarkOverdue(); err != nil {
			return flagged, err
		}
		if err := s.paymentRepo.Update(ctx, p); err != nil {
			return flagged, err
		}
		flagged++
	}

	if flagged > 0 {
		s.logger.Info("Flagged overdue payments", zap.Int("count", flagged))
	}

	return flagged, nil
}

// Delete removes a payment record
func (s *PaymentService) Delete(ctx context.Context, id uuid.UUID) error {
	removed, err := s.paymentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return shared.ErrNotFound
	}
	return nil
}
