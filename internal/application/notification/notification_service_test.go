package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dovepeak/backend/internal/domain/notification"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindAll(ctx context.Context) ([]notification.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByRecipient(ctx context.Context, tenantID uuid.UUID) ([]notification.Notification, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
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

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendEmail(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func (m *MockNotifier) SendSMS(ctx context.Context, phone, message string) error {
	args := m.Called(ctx, phone, message)
	return args.Error(0)
}

func newRecipient(t *testing.T) *tenancy.Tenant {
	t.Helper()
	leaseStart := time.Now().AddDate(0, -1, 0)
	tenant, err := tenancy.NewTenant(uuid.New(), uuid.New(), "Amina", "Hassan",
		"amina.hassan@example.com", "+254711000002", "30112233",
		leaseStart, leaseStart.AddDate(1, 0, 0), decimal.NewFromInt(45000), decimal.NewFromInt(45000))
	require.NoError(t, err)
	tenant.EnsureID()
	return tenant
}

func newDraft(t *testing.T, method notification.Method, recipients ...uuid.UUID) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(notification.TypeRentDue, "Rent reminder", "Rent is due on the 5th", recipients, method)
	require.NoError(t, err)
	n.EnsureID()
	return n
}

func TestService_Create(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	tenantRepo := new(MockTenantRepository)
	sender := new(MockNotifier)
	service := NewService(notificationRepo, tenantRepo, sender, zap.NewNop())

	recipient := newRecipient(t)
	tenantRepo.On("FindByID", mock.Anything, recipient.ID).Return(recipient, nil)
	notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil)

	response, err := service.Create(context.Background(), CreateNotificationRequest{
		Type:       "rent-due",
		Title:      "Rent reminder",
		Message:    "Rent is due on the 5th",
		Recipients: []uuid.UUID{recipient.ID},
		Method:     "email",
	})
	require.NoError(t, err)

	assert.Equal(t, string(notification.StatusDraft), response.Status)
	notificationRepo.AssertExpectations(t)
}

func TestService_Create_UnknownRecipient(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	tenantRepo := new(MockTenantRepository)
	sender := new(MockNotifier)
	service := NewService(notificationRepo, tenantRepo, sender, zap.NewNop())

	recipientID := uuid.New()
	tenantRepo.On("FindByID", mock.Anything, recipientID).Return(nil, shared.ErrNotFound)

	_, err := service.Create(context.Background(), CreateNotificationRequest{
		Type:       "general",
		Title:      "Hello",
		Message:    "World",
		Recipients: []uuid.UUID{recipientID},
		Method:     "email",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_RECIPIENTS", domainErr.Code)
	notificationRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestService_Send_AllDelivered(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	tenantRepo := new(MockTenantRepository)
	sender := new(MockNotifier)
	service := NewService(notificationRepo, tenantRepo, sender, zap.NewNop())

	recipient := newRecipient(t)
	draft := newDraft(t, notification.MethodBoth, recipient.ID)

	notificationRepo.On("FindByID", mock.Anything, draft.ID).Return(draft, nil)
	tenantRepo.On("FindByID", mock.Anything, recipient.ID).Return(recipient, nil)
	sender.On("SendEmail", mock.Anything, recipient.Email, draft.Title, draft.Message).Return(nil)
	sender.On("SendSMS", mock.Anything, recipient.Phone, draft.Message).Return(nil)
	notificationRepo.On("Update", mock.Anything, draft).Return(nil)

	result, err := service.Send(context.Background(), draft.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Delivered)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, string(notification.StatusSent), result.Notification.Status)
	sender.AssertExpectations(t)
}

func TestService_Send_AllFailed(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	tenantRepo := new(MockTenantRepository)
	sender := new(MockNotifier)
	service := NewService(notificationRepo, tenantRepo, sender, zap.NewNop())

	recipient := newRecipient(t)
	draft := newDraft(t, notification.MethodEmail, recipient.ID)

	notificationRepo.On("FindByID", mock.Anything, draft.ID).Return(draft, nil)
	tenantRepo.On("FindByID", mock.Anything, recipient.ID).Return(recipient, nil)
	sender.On("SendEmail", mock.Anything, recipient.Email, draft.Title, draft.Message).Return(errors.New("smtp unreachable"))
	notificationRepo.On("Update", mock.Anything, draft).Return(nil)

	result, err := service.Send(context.Background(), draft.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Delivered)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, string(notification.StatusFailed), result.Notification.Status)
}

func TestService_Send_MissingRecipientCountsAsFailed(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	tenantRepo := new(MockTenantRepository)
	sender := new(MockNotifier)
	service := NewService(notificationRepo, tenantRepo, sender, zap.NewNop())

	recipient := newRecipient(t)
	gone := uuid.New()
	draft := newDraft(t, notification.MethodEmail, recipient.ID, gone)

	notificationRepo.On("FindByID", mock.Anything, draft.ID).Return(draft, nil)
	tenantRepo.On("FindByID", mock.Anything, recipient.ID).Return(recipient, nil)
	tenantRepo.On("FindByID", mock.Anything, gone).Return(nil, shared.ErrNotFound)
	sender.On("SendEmail", mock.Anything, recipient.Email, draft.Title, draft.Message).Return(nil)
	notificationRepo.On("Update", mock.Anything, draft).Return(nil)

	result, err := service.Send(context.Background(), draft.ID)
	require.NoError(t, err)

	// One delivery succeeded, so the notification still counts as sent
	assert.Equal(t, 1, result.Delivered)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, string(notification.StatusSent), result.Notification.Status)
}

func TestService_Send_AlreadySent(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	tenantRepo := new(MockTenantRepository)
	sender := new(MockNotifier)
	service := NewService(notificationRepo, tenantRepo, sender, zap.NewNop())

	sent := newDraft(t, notification.MethodEmail, uuid.New())
	require.NoError(t, sent.MarkSent(time.Now()))

	notificationRepo.On("FindByID", mock.Anything, sent.ID).Return(sent, nil)

	_, err := service.Send(context.Background(), sent.ID)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
