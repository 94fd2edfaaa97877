package maintenance

import (
	"context"

	"github.com/dovepeak/backend/internal/domain/maintenance"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/google/uuid"
)

// RequestService handles maintenance request operations
type RequestService struct {
	requestRepo maintenance.RequestRepository
	tenantRepo  tenancy.TenantRepository
}

// NewRequestService creates a new RequestService
func NewRequestService(requestRepo maintenance.RequestRepository, tenantRepo tenancy.TenantRepository) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		tenantRepo:  tenantRepo,
	}
}

// Create raises a maintenance request for a tenant's unit
func (s *RequestService) Create(ctx context.Context, req CreateRequestRequest) (*RequestResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, req.TenantID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant does not exist")
	}

	request, err := maintenance.NewRequest(tenant.ID, tenant.UnitID, tenant.ApartmentID,
		req.Title, req.Description, maintenance.Category(req.Category), maintenance.Priority(req.Priority))
	if err != nil {
		return nil, err
	}

	if err := s.requestRepo.Add(ctx, request); err != nil {
		return nil, err
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// GetByID retrieves a request by ID
func (s *RequestService) GetByID(ctx context.Context, id uuid.UUID) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// List retrieves requests, optionally filtered by tenant, apartment, or status
func (s *RequestService) List(ctx context.Context, tenantID, apartmentID *uuid.UUID, status string) ([]RequestResponse, error) {
	var (
		requests []maintenance.Request
		err      error
	)

	switch {
	case tenantID != nil:
		requests, err = s.requestRepo.FindByTenant(ctx, *tenantID)
	case apartmentID != nil:
		requests, err = s.requestRepo.FindByApartment(ctx, *apartmentID)
	case status != "":
		requests, err = s.requestRepo.FindByStatus(ctx, maintenance.Status(status))
	default:
		requests, err = s.requestRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if status != "" && (tenantID != nil || apartmentID != nil) {
		filtered := requests[:0]
		for _, r := range requests {
			if r.Status == maintenance.Status(status) {
				filtered = append(filtered, r)
			}
		}
		requests = filtered
	}

	return ToRequestResponses(requests), nil
}

// Assign hands a request to a worker
func (s *RequestService) Assign(ctx context.Context, id uuid.UUID, req AssignRequestRequest) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := request.Assign(req.AssignedTo, req.EstimatedCost); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// Start moves a request into progress
func (s *RequestService) Start(ctx context.Context, id uuid.UUID) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := request.Start(); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// Complete closes a request with the actual cost
func (s *RequestService) Complete(ctx context.Context, id uuid.UUID, req CompleteRequestRequest) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := request.Complete(req.CompletedDate, req.ActualCost); err != nil {
		return nil, err
	}
	if req.Notes != "" {
		request.SetNotes(req.Notes)
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// Cancel withdraws a request
func (s *RequestService) Cancel(ctx context.Context, id uuid.UUID) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := request.Cancel(); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// Update changes a request's priority or notes
func (s *RequestService) Update(ctx context.Context, id uuid.UUID, req UpdateRequestRequest) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Priority != nil {
		if err := request.SetPriority(maintenance.Priority(*req.Priority)); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		request.SetNotes(*req.Notes)
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// Delete removes a request record
func (s *RequestService) Delete(ctx context.Context, id uuid.UUID) error {
	removed, err := s.requestRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return shared.ErrNotFound
	}
	return nil
}
