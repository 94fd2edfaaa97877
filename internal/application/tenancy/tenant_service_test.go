package tenancy

import (
	"context"
	"testing"
	"time"

	"github.com/dovepeak/backend/internal/domain/property"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindAll(ctx context.Context) ([]property.Unit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindByApartment(ctx context.Context, apartmentID uuid.UUID) ([]property.Unit, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindByStatus(ctx context.Context, status property.UnitStatus) ([]property.Unit, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Unit), args.Error(1)
}

func (m *MockUnitRepository) ExistsByNumber(ctx context.Context, apartmentID uuid.UUID, unitNumber string) (bool, error) {
	args := m.Called(ctx, apartmentID, unitNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnitRepository) Add(ctx context.Context, unit *property.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockUnitRepository) Update(ctx context.Context, unit *property.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockUnitRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newVacantUnit(t *testing.T) *property.Unit {
	t.Helper()
	unit, err := property.NewUnit(uuid.New(), "A1", property.UnitTypeOneBedroom, 55,
		decimal.NewFromInt(45000), decimal.NewFromInt(45000))
	require.NoError(t, err)
	unit.EnsureID()
	return unit
}

func newLeaseRequest(unitID uuid.UUID) CreateTenantRequest {
	leaseStart := time.Now()
	return CreateTenantRequest{
		UnitID:     unitID,
		FirstName:  "Amina",
		LastName:   "Hassan",
		Email:      "amina.hassan@example.com",
		Phone:      "+254711000002",
		IDNumber:   "30112233",
		LeaseStart: leaseStart,
		LeaseEnd:   leaseStart.AddDate(1, 0, 0),
		RentAmount: decimal.NewFromInt(45000),
		Deposit:    decimal.NewFromInt(45000),
	}
}

func TestTenantService_Create(t *testing.T) {
	tenantRepo := new(MockTenantRepository)
	unitRepo := new(MockUnitRepository)
	service := NewTenantService(tenantRepo, unitRepo)

	unit := newVacantUnit(t)
	req := newLeaseRequest(unit.ID)

	unitRepo.On("FindByID", mock.Anything, unit.ID).Return(unit, nil)
	tenantRepo.On("FindByEmail", mock.Anything, req.Email).Return(nil, shared.ErrNotFound)
	tenantRepo.On("Add", mock.Anything, mock.AnythingOfType("*tenancy.Tenant")).Return(nil)
	unitRepo.On("Update", mock.Anything, unit).Return(nil)

	response, err := service.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, unit.ID, response.UnitID)
	assert.Equal(t, unit.ApartmentID, response.ApartmentID)
	assert.Equal(t, "Amina Hassan", response.FullName)
	assert.Equal(t, string(tenancy.TenantStatusActive), response.Status)

	// The unit flips to occupied as part of the lease
	assert.Equal(t, property.UnitStatusOccupied, unit.Status)
	tenantRepo.AssertExpectations(t)
	unitRepo.AssertExpectations(t)
}

func TestTenantService_Create_UnitNotVacant(t *testing.T) {
	tenantRepo := new(MockTenantRepository)
	unitRepo := new(MockUnitRepository)
	service := NewTenantService(tenantRepo, unitRepo)

	unit := newVacantUnit(t)
	require.NoError(t, unit.SetStatus(property.UnitStatusOccupied))

	unitRepo.On("FindByID", mock.Anything, unit.ID).Return(unit, nil)

	_, err := service.Create(context.Background(), newLeaseRequest(unit.ID))
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNIT_NOT_VACANT", domainErr.Code)
	tenantRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestTenantService_Create_UnknownUnit(t *testing.T) {
	tenantRepo := new(MockTenantRepository)
	unitRepo := new(MockUnitRepository)
	service := NewTenantService(tenantRepo, unitRepo)

	unitID := uuid.New()
	unitRepo.On("FindByID", mock.Anything, unitID).Return(nil, shared.ErrNotFound)

	_, err := service.Create(context.Background(), newLeaseRequest(unitID))
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_UNIT", domainErr.Code)
}

func TestTenantService_Create_DuplicateEmail(t *testing.T) {
	tenantRepo := new(MockTenantRepository)
	unitRepo := new(MockUnitRepository)
	service := NewTenantService(tenantRepo, unitRepo)

	unit := newVacantUnit(t)
	req := newLeaseRequest(unit.ID)

	unitRepo.On("FindByID", mock.Anything, unit.ID).Return(unit, nil)
	tenantRepo.On("FindByEmail", mock.Anything, req.Email).Return(&tenancy.Tenant{}, nil)

	_, err := service.Create(context.Background(), req)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	tenantRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func newStoredTenant(t *testing.T, unit *property.Unit) *tenancy.Tenant {
	t.Helper()
	leaseStart := time.Now().AddDate(0, -6, 0)
	tenant, err := tenancy.NewTenant(unit.ID, unit.ApartmentID, "Amina", "Hassan",
		"amina.hassan@example.com", "+254711000002", "30112233",
		leaseStart, leaseStart.AddDate(1, 0, 0), decimal.NewFromInt(45000), decimal.NewFromInt(45000))
	require.NoError(t, err)
	tenant.EnsureID()
	return tenant
}

func TestTenantService_Update_TerminationFreesUnit(t *testing.T) {
	tenantRepo := new(MockTenantRepository)
	unitRepo := new(MockUnitRepository)
	service := NewTenantService(tenantRepo, unitRepo)

	unit := newVacantUnit(t)
	tenant := newStoredTenant(t, unit)
	require.NoError(t, unit.SetStatus(property.UnitStatusOccupied))

	tenantRepo.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)
	unitRepo.On("FindByID", mock.Anything, unit.ID).Return(unit, nil)
	unitRepo.On("Update", mock.Anything, unit).Return(nil)
	tenantRepo.On("Update", mock.Anything, tenant).Return(nil)

	status := "terminated"
	response, err := service.Update(context.Background(), tenant.ID, UpdateTenantRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "terminated", response.Status)
	assert.Equal(t, property.UnitStatusVacant, unit.Status)
	unitRepo.AssertExpectations(t)
}

func TestTenantService_Delete_FreesUnit(t *testing.T) {
	tenantRepo := new(MockTenantRepository)
	unitRepo := new(MockUnitRepository)
	service := NewTenantService(tenantRepo, unitRepo)

	unit := newVacantUnit(t)
	tenant := newStoredTenant(t, unit)
	require.NoError(t, unit.SetStatus(property.UnitStatusOccupied))

	tenantRepo.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)
	tenantRepo.On("Delete", mock.Anything, tenant.ID).Return(true, nil)
	unitRepo.On("FindByID", mock.Anything, unit.ID).Return(unit, nil)
	unitRepo.On("Update", mock.Anything, unit).Return(nil)

	require.NoError(t, service.Delete(context.Background(), tenant.ID))
	assert.Equal(t, property.UnitStatusVacant, unit.Status)
	unitRepo.AssertExpectations(t)
}

func TestTenantService_Delete_NotFound(t *testing.T) {
	tenantRepo := new(MockTenantRepository)
	unitRepo := new(MockUnitRepository)
	service := NewTenantService(tenantRepo, unitRepo)

	id := uuid.New()
	tenantRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	err := service.Delete(context.Background(), id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
