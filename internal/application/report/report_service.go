package report

import (
	"context"
	"errors"
	"time"

	"github.com/dovepeak/backend/internal/domain/billing"
	"github.com/dovepeak/backend/internal/domain/maintenance"
	"github.com/dovepeak/backend/internal/domain/notification"
	"github.com/dovepeak/backend/internal/domain/property"
	"github.com/dovepeak/backend/internal/domain/report"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service assembles dashboard and report views from full entity snapshots.
// Every figure is recomputed per call; nothing is cached.
type Service struct {
	apartmentRepo    property.ApartmentRepository
	unitRepo         property.UnitRepository
	tenantRepo       tenancy.TenantRepository
	paymentRepo      billing.PaymentRepository
	requestRepo      maintenance.RequestRepository
	notificationRepo notification.Repository
}

// NewService creates a new report Service
func NewService(
	apartmentRepo property.ApartmentRepository,
	unitRepo property.UnitRepository,
	tenantRepo tenancy.TenantRepository,
	paymentRepo billing.PaymentRepository,
	requestRepo maintenance.RequestRepository,
	notificationRepo notification.Repository,
) *Service {
	return &Service{
		apartmentRepo:    apartmentRepo,
		unitRepo:         unitRepo,
		tenantRepo:       tenantRepo,
		paymentRepo:      paymentRepo,
		requestRepo:      requestRepo,
		notificationRepo: notificationRepo,
	}
}

// Dashboard builds the admin dashboard summary
func (s *Service) Dashboard(ctx context.Context) (*report.DashboardStats, error) {
	apartments, err := s.apartmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	units, err := s.unitRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	tenants, err := s.tenantRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := report.BuildDashboardStats(apartments, units, tenants, payments, requests)
	return &stats, nil
}

// FinancialSummary is the rent collection breakdown
type FinancialSummary struct {
	Revenue        decimal.Decimal `json:"revenue"`
	Pending        decimal.Decimal `json:"pending"`
	Overdue        decimal.Decimal `json:"overdue"`
	OverdueBalance decimal.Decimal `json:"overdue_balance"`
	CollectionRate float64         `json:"collection_rate"`
}

// Financial builds the rent collection summary
func (s *Service) Financial(ctx context.Context) (*FinancialSummary, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &FinancialSummary{
		Revenue:        report.RevenueTotal(payments),
		Pending:        report.PendingTotal(payments),
		Overdue:        report.OverdueTotal(payments),
		OverdueBalance: report.OverdueBalance(payments),
		CollectionRate: report.CollectionRate(payments),
	}, nil
}

// OccupancyReport breaks occupancy down per apartment
type OccupancyReport struct {
	Overall    report.UnitStatusCounts `json:"overall"`
	Rate       float64                 `json:"rate"`
	Apartments []ApartmentOccupancy    `json:"apartments"`
}

// ApartmentOccupancy is one apartment's occupancy row
type ApartmentOccupancy struct {
	ApartmentID   uuid.UUID               `json:"apartment_id"`
	ApartmentName string                  `json:"apartment_name"`
	Counts        report.UnitStatusCounts `json:"counts"`
	Rate          float64                 `json:"rate"`
}

// Occupancy builds the per-apartment occupancy report
func (s *Service) Occupancy(ctx context.Context) (*OccupancyReport, error) {
	apartments, err := s.apartmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	units, err := s.unitRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &OccupancyReport{
		Overall:    report.CountUnitStatuses(units),
		Rate:       report.OccupancyRate(units),
		Apartments: make([]ApartmentOccupancy, 0, len(apartments)),
	}

	for _, apartment := range apartments {
		var own []property.Unit
		for _, u := range units {
			if u.ApartmentID == apartment.ID {
				own = append(own, u)
			}
		}
		result.Apartments = append(result.Apartments, ApartmentOccupancy{
			ApartmentID:   apartment.ID,
			ApartmentName: apartment.Name,
			Counts:        report.CountUnitStatuses(own),
			Rate:          report.OccupancyRate(own),
		})
	}

	return result, nil
}

// TenantDashboard builds a tenant's portal summary
func (s *Service) TenantDashboard(ctx context.Context, tenantID uuid.UUID) (*report.TenantDashboardStats, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	payments, err := s.paymentRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notificationRepo.FindByRecipient(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	stats := report.BuildTenantDashboardStats(tenant, payments, requests, len(notifications), time.Now())
	return &stats, nil
}
