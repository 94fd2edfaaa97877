package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dovepeak/backend/internal/domain/billing"
	"github.com/dovepeak/backend/internal/domain/property"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/dovepeak/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scenario wires the report service against a real file-backed store:
// one apartment, two units (one leased), one settled and one overdue payment.
type scenario struct {
	service   *Service
	apartment *property.Apartment
	tenant    *tenancy.Tenant
}

func newScenario(t *testing.T) *scenario {
	t.Helper()
	ctx := context.Background()

	store, err := persistence.NewStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	apartmentRepo := persistence.NewStoreApartmentRepository(store)
	unitRepo := persistence.NewStoreUnitRepository(store)
	tenantRepo := persistence.NewStoreTenantRepository(store)
	paymentRepo := persistence.NewStorePaymentRepository(store)
	requestRepo := persistence.NewStoreMaintenanceRepository(store)
	notificationRepo := persistence.NewStoreNotificationRepository(store)

	apartment, err := property.NewApartment("Riverview Court", "12 Riverside Drive", 2)
	require.NoError(t, err)
	require.NoError(t, apartmentRepo.Add(ctx, apartment))

	rent := decimal.NewFromInt(45000)

	occupied, err := property.NewUnit(apartment.ID, "A1", property.UnitTypeOneBedroom, 55, rent, rent)
	require.NoError(t, err)
	require.NoError(t, unitRepo.Add(ctx, occupied))

	vacant, err := property.NewUnit(apartment.ID, "A2", property.UnitTypeStudio, 38, rent, rent)
	require.NoError(t, err)
	require.NoError(t, unitRepo.Add(ctx, vacant))

	leaseStart := time.Now().AddDate(0, -3, 0)
	tenant, err := tenancy.NewTenant(occupied.ID, apartment.ID, "Amina", "Hassan",
		"amina.hassan@example.com", "+254711000002", "30112233",
		leaseStart, leaseStart.AddDate(1, 0, 0), rent, rent)
	require.NoError(t, err)
	require.NoError(t, tenantRepo.Add(ctx, tenant))

	require.NoError(t, occupied.SetStatus(property.UnitStatusOccupied))
	require.NoError(t, unitRepo.Update(ctx, occupied))

	settled, err := billing.NewPayment(tenant.ID, occupied.ID, apartment.ID, rent, time.Now().AddDate(0, -1, 0))
	require.NoError(t, err)
	require.NoError(t, settled.MarkPaid(time.Now().AddDate(0, -1, 2), billing.PaymentMethodMobile, "MPESA-TX-001"))
	require.NoError(t, paymentRepo.Add(ctx, settled))

	overdue, err := billing.NewPayment(tenant.ID, occupied.ID, apartment.ID, rent, time.Now().AddDate(0, 0, -5))
	require.NoError(t, err)
	require.NoError(t, overdue.MarkOverdue())
	require.NoError(t, overdue.SetPenalty(decimal.NewFromInt(2500)))
	require.NoError(t, paymentRepo.Add(ctx, overdue))

	return &scenario{
		service:   NewService(apartmentRepo, unitRepo, tenantRepo, paymentRepo, requestRepo, notificationRepo),
		apartment: apartment,
		tenant:    tenant,
	}
}

func TestService_Dashboard(t *testing.T) {
	s := newScenario(t)

	stats, err := s.service.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalApartments)
	assert.Equal(t, 2, stats.TotalUnits)
	assert.Equal(t, 1, stats.OccupiedUnits)
	assert.Equal(t, 1, stats.VacantUnits)
	assert.Equal(t, 50.0, stats.OccupancyRate)
	assert.Equal(t, 1, stats.ActiveTenants)
	assert.True(t, stats.MonthlyRevenue.Equal(decimal.NewFromInt(45000)))
	assert.Equal(t, 1, stats.OverdueCount)
	assert.True(t, stats.OverdueAmount.Equal(decimal.NewFromInt(47500)))
}

func TestService_Financial(t *testing.T) {
	s := newScenario(t)

	summary, err := s.service.Financial(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.Revenue.Equal(decimal.NewFromInt(45000)))
	assert.True(t, summary.Overdue.Equal(decimal.NewFromInt(45000)))
	assert.True(t, summary.OverdueBalance.Equal(decimal.NewFromInt(47500)))
	assert.InDelta(t, 50.0, summary.CollectionRate, 0.001)
}

func TestService_Occupancy(t *testing.T) {
	s := newScenario(t)

	occupancy, err := s.service.Occupancy(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, occupancy.Overall.Total)
	assert.Equal(t, 50.0, occupancy.Rate)

	require.Len(t, occupancy.Apartments, 1)
	row := occupancy.Apartments[0]
	assert.Equal(t, s.apartment.ID, row.ApartmentID)
	assert.Equal(t, "Riverview Court", row.ApartmentName)
	assert.Equal(t, 1, row.Counts.Occupied)
	assert.Equal(t, 50.0, row.Rate)
}

func TestService_TenantDashboard(t *testing.T) {
	s := newScenario(t)

	stats, err := s.service.TenantDashboard(context.Background(), s.tenant.ID)
	require.NoError(t, err)

	assert.True(t, stats.CurrentRent.Equal(decimal.NewFromInt(45000)))
	assert.True(t, stats.TotalPaid.Equal(decimal.NewFromInt(45000)))

	// The overdue payment contributes amount plus penalty to the balance
	assert.True(t, stats.OutstandingBalance.Equal(decimal.NewFromInt(47500)))
	assert.Equal(t, billing.PaymentStatusOverdue, stats.PaymentStatus)
	assert.True(t, stats.LeaseExpiringSoon == (stats.DaysUntilLeaseEnd <= 60))
}

func TestService_TenantDashboard_UnknownTenant(t *testing.T) {
	s := newScenario(t)

	_, err := s.service.TenantDashboard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

// failingTenantRepo fails every lookup with a fixed infrastructure error
type failingTenantRepo struct {
	tenancy.TenantRepository
	err error
}

func (r *failingTenantRepo) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Tenant, error) {
	return nil, r.err
}

func TestService_TenantDashboard_StoreErrorSurfaces(t *testing.T) {
	storeErr := errors.New("read records: permission denied")
	service := NewService(nil, nil, &failingTenantRepo{err: storeErr}, nil, nil, nil)

	_, err := service.TenantDashboard(context.Background(), uuid.New())
	require.Error(t, err)

	// The store failure must not be masked as a missing tenant
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, shared.ErrNotFound)
}
