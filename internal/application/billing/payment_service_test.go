package billing

import (
	"context"
	"testing"
	"time"

	"github.com/dovepeak/backend/internal/domain/billing"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]billing.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]billing.Payment, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByApartment(ctx context.Context, apartmentID uuid.UUID) ([]billing.Payment, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByStatus(ctx context.Context, status billing.PaymentStatus) ([]billing.Payment, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Add(ctx context.Context, payment *billing.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *billing.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context) ([]tenancy.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]tenancy.Tenant, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByApartment(ctx context.Context, apartmentID uuid.UUID) ([]tenancy.Tenant, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByEmail(ctx context.Context, email string) (*tenancy.Tenant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Add(ctx context.Context, tenant *tenancy.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) Update(ctx context.Context, tenant *tenancy.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newBilledTenant(t *testing.T) *tenancy.Tenant {
	t.Helper()
	leaseStart := time.Now().AddDate(0, -6, 0)
	tenant, err := tenancy.NewTenant(uuid.New(), uuid.New(), "Amina", "Hassan",
		"amina.hassan@example.com", "+254711000002", "30112233",
		leaseStart, leaseStart.AddDate(1, 0, 0), decimal.NewFromInt(45000), decimal.NewFromInt(45000))
	require.NoError(t, err)
	tenant.EnsureID()
	return tenant
}

func newPendingPayment(t *testing.T, dueDate time.Time) *billing.Payment {
	t.Helper()
	payment, err := billing.NewPayment(uuid.New(), uuid.New(), uuid.New(), decimal.NewFromInt(45000), dueDate)
	require.NoError(t, err)
	payment.EnsureID()
	return payment
}

func TestPaymentService_Create(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	tenantRepo := new(MockTenantRepository)
	service := NewPaymentService(paymentRepo, tenantRepo, zap.NewNop())

	tenant := newBilledTenant(t)
	tenantRepo.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)
	paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*billing.Payment")).Return(nil)

	response, err := service.Create(context.Background(), CreatePaymentRequest{
		TenantID: tenant.ID,
		Amount:   decimal.NewFromInt(45000),
		DueDate:  time.Now().AddDate(0, 0, 14),
	})
	require.NoError(t, err)

	// The payment inherits the tenant's unit and apartment
	assert.Equal(t, tenant.UnitID, response.UnitID)
	assert.Equal(t, tenant.ApartmentID, response.ApartmentID)
	assert.Equal(t, string(billing.PaymentStatusPending), response.Status)
	paymentRepo.AssertExpectations(t)
}

func TestPaymentService_Create_UnknownTenant(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	tenantRepo := new(MockTenantRepository)
	service := NewPaymentService(paymentRepo, tenantRepo, zap.NewNop())

	tenantID := uuid.New()
	tenantRepo.On("FindByID", mock.Anything, tenantID).Return(nil, shared.ErrNotFound)

	_, err := service.Create(context.Background(), CreatePaymentRequest{
		TenantID: tenantID,
		Amount:   decimal.NewFromInt(45000),
		DueDate:  time.Now(),
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TENANT", domainErr.Code)
}

func TestPaymentService_Record(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	tenantRepo := new(MockTenantRepository)
	service := NewPaymentService(paymentRepo, tenantRepo, zap.NewNop())

	payment := newPendingPayment(t, time.Now().AddDate(0, 0, 7))
	paymentRepo.On("FindByID", mock.Anything, payment.ID).Return(payment, nil)
	paymentRepo.On("Update", mock.Anything, payment).Return(nil)

	response, err := service.Record(context.Background(), payment.ID, RecordPaymentRequest{
		PaidDate:  time.Now(),
		Method:    "mobile",
		Reference: "MPESA-TX-001",
	})
	require.NoError(t, err)

	assert.Equal(t, string(billing.PaymentStatusPaid), response.Status)
	assert.Equal(t, "MPESA-TX-001", response.Reference)
}

func TestPaymentService_Record_Partial(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	tenantRepo := new(MockTenantRepository)
	service := NewPaymentService(paymentRepo, tenantRepo, zap.NewNop())

	payment := newPendingPayment(t, time.Now().AddDate(0, 0, 7))
	paymentRepo.On("FindByID", mock.Anything, payment.ID).Return(payment, nil)
	paymentRepo.On("Update", mock.Anything, payment).Return(nil)

	response, err := service.Record(context.Background(), payment.ID, RecordPaymentRequest{
		PaidDate: time.Now(),
		Method:   "bank",
		Partial:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, string(billing.PaymentStatusPartial), response.Status)
}

func TestPaymentService_Record_AlreadySettled(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	tenantRepo := new(MockTenantRepository)
	service := NewPaymentService(paymentRepo, tenantRepo, zap.NewNop())

	payment := newPendingPayment(t, time.Now().AddDate(0, 0, 7))
	require.NoError(t, payment.MarkPaid(time.Now(), billing.PaymentMethodCash, ""))
	paymentRepo.On("FindByID", mock.Anything, payment.ID).Return(payment, nil)

	_, err := service.Record(context.Background(), payment.ID, RecordPaymentRequest{
		PaidDate: time.Now(),
		Method:   "cash",
	})
	require.Error(t, err)
	paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPaymentService_RefreshOverdue(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	tenantRepo := new(MockTenantRepository)
	service := NewPaymentService(paymentRepo, tenantRepo, zap.NewNop())

	now := time.Now()
	pastDue := newPendingPayment(t, now.AddDate(0, 0, -3))
	upcoming := newPendingPayment(t, now.AddDate(0, 0, 14))

	paymentRepo.On("FindByStatus", mock.Anything, billing.PaymentStatusPending).
		Return([]billing.Payment{*pastDue, *upcoming}, nil)
	paymentRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *billing.Payment) bool {
		return p.ID == pastDue.ID && p.Status == billing.PaymentStatusOverdue
	})).Return(nil)

	flagged, err := service.RefreshOverdue(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, flagged)
	paymentRepo.AssertExpectations(t)
}

func TestPaymentService_SetPenalty(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	tenantRepo := new(MockTenantRepository)
	service := NewPaymentService(paymentRepo, tenantRepo, zap.NewNop())

	payment := newPendingPayment(t, time.Now().AddDate(0, 0, -3))
	paymentRepo.On("FindByID", mock.Anything, payment.ID).Return(payment, nil)
	paymentRepo.On("Update", mock.Anything, payment).Return(nil)

	response, err := service.SetPenalty(context.Background(), payment.ID, SetPenaltyRequest{
		Penalty: decimal.NewFromInt(2500),
	})
	require.NoError(t, err)

	require.NotNil(t, response.Penalty)
	assert.True(t, response.Penalty.Equal(decimal.NewFromInt(2500)))
	assert.True(t, response.TotalDue.Equal(decimal.NewFromInt(47500)))
}
