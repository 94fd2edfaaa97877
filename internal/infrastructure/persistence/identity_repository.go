package persistence

import (
	"context"
	"errors"

	"github.com/dovepeak/backend/internal/domain/identity"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StoreAdminRepository implements identity.AdminRepository
type StoreAdminRepository struct {
	coll *Collection[identity.SystemAdmin, *identity.SystemAdmin]
}

// NewStoreAdminRepository creates an admin repository over the store
func NewStoreAdminRepository(store *Store) *StoreAdminRepository {
	return &StoreAdminRepository{
		coll: NewCollection[identity.SystemAdmin](store, keyAdmins),
	}
}

func (r *StoreAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.SystemAdmin, error) {
	return r.coll.FindByID(id)
}

func (r *StoreAdminRepository) FindByEmail(ctx context.Context, email string) (*identity.SystemAdmin, error) {
	return r.coll.FindFirst(func(a *identity.SystemAdmin) bool {
		return a.Email == email
	})
}

func (r *StoreAdminRepository) FindAll(ctx context.Context) ([]identity.SystemAdmin, error) {
	return r.coll.GetAll()
}

func (r *StoreAdminRepository) Add(ctx context.Context, admin *identity.SystemAdmin) error {
	return r.coll.Add(admin)
}

func (r *StoreAdminRepository) Update(ctx context.Context, admin *identity.SystemAdmin) error {
	return r.coll.Update(admin)
}

func (r *StoreAdminRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.coll.Delete(id)
}

// StoreManagerRepository implements identity.ManagerRepository
type StoreManagerRepository struct {
	coll *Collection[identity.PropertyManager, *identity.PropertyManager]
}

// NewStoreManagerRepository creates a manager repository over the store
func NewStoreManagerRepository(store *Store) *StoreManagerRepository {
	return &StoreManagerRepository{
		coll: NewCollection[identity.PropertyManager](store, keyManagers),
	}
}

func (r *StoreManagerRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.PropertyManager, error) {
	return r.coll.FindByID(id)
}

func (r *StoreManagerRepository) FindByEmail(ctx context.Context, email string) (*identity.PropertyManager, error) {
	return r.coll.FindFirst(func(m *identity.PropertyManager) bool {
		return m.Email == email
	})
}

func (r *StoreManagerRepository) FindAll(ctx context.Context) ([]identity.PropertyManager, error) {
	return r.coll.GetAll()
}

func (r *StoreManagerRepository) Add(ctx context.Context, manager *identity.PropertyManager) error {
	return r.coll.Add(manager)
}

func (r *StoreManagerRepository) Update(ctx context.Context, manager *identity.PropertyManager) error {
	return r.coll.Update(manager)
}

func (r *StoreManagerRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.coll.Delete(id)
}

// StoreTenantAccountRepository implements identity.TenantAccountRepository
type StoreTenantAccountRepository struct {
	coll *Collection[identity.TenantAccount, *identity.TenantAccount]
}

// NewStoreTenantAccountRepository creates a tenant-account repository over the store
func NewStoreTenantAccountRepository(store *Store) *StoreTenantAccountRepository {
	return &StoreTenantAccountRepository{
		coll: NewCollection[identity.TenantAccount](store, keyTenantUsers),
	}
}

func (r *StoreTenantAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.TenantAccount, error) {
	return r.coll.FindByID(id)
}

func (r *StoreTenantAccountRepository) FindByEmail(ctx context.Context, email string) (*identity.TenantAccount, error) {
	return r.coll.FindFirst(func(a *identity.TenantAccount) bool {
		return a.Email == email
	})
}

func (r *StoreTenantAccountRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*identity.TenantAccount, error) {
	return r.coll.FindFirst(func(a *identity.TenantAccount) bool {
		return a.TenantID == tenantID
	})
}

func (r *StoreTenantAccountRepository) FindAll(ctx context.Context) ([]identity.TenantAccount, error) {
	return r.coll.GetAll()
}

func (r *StoreTenantAccountRepository) Add(ctx context.Context, account *identity.TenantAccount) error {
	return r.coll.Add(account)
}

func (r *StoreTenantAccountRepository) Update(ctx context.Context, account *identity.TenantAccount) error {
	return r.coll.Update(account)
}

func (r *StoreTenantAccountRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.coll.Delete(id)
}

// StoreAuditLogRepository implements identity.AuditLogRepository
type StoreAuditLogRepository struct {
	coll *Collection[identity.AuditLog, *identity.AuditLog]
}

// NewStoreAuditLogRepository creates an audit-log repository over the store
func NewStoreAuditLogRepository(store *Store) *StoreAuditLogRepository {
	return &StoreAuditLogRepository{
		coll: NewCollection[identity.AuditLog](store, keyAuditLogs),
	}
}

func (r *StoreAuditLogRepository) FindAll(ctx context.Context) ([]identity.AuditLog, error) {
	return r.coll.GetAll()
}

func (r *StoreAuditLogRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]identity.AuditLog, error) {
	return r.coll.FindAll(func(l *identity.AuditLog) bool {
		return l.UserID == userID
	})
}

func (r *StoreAuditLogRepository) FindByAction(ctx context.Context, action string) ([]identity.AuditLog, error) {
	return r.coll.FindAll(func(l *identity.AuditLog) bool {
		return l.Action == action
	})
}

func (r *StoreAuditLogRepository) Add(ctx context.Context, entry *identity.AuditLog) error {
	return r.coll.Add(entry)
}

// StoreSettingsRepository implements identity.SettingsRepository over a slot
type StoreSettingsRepository struct {
	slot *Slot[identity.Settings]
}

// NewStoreSettingsRepository creates the settings repository over the store
func NewStoreSettingsRepository(store *Store) *StoreSettingsRepository {
	return &StoreSettingsRepository{
		slot: NewSlot[identity.Settings](store, keySettings),
	}
}

// Get returns the saved settings, falling back to defaults when none exist
func (r *StoreSettingsRepository) Get(ctx context.Context) (*identity.Settings, error) {
	settings, err := r.slot.Get()
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return identity.DefaultSettings(), nil
		}
		return nil, err
	}
	if settings == nil {
		return identity.DefaultSettings(), nil
	}
	return settings, nil
}

// Save replaces the stored settings
func (r *StoreSettingsRepository) Save(ctx context.Context, settings *identity.Settings) error {
	settings.EnsureID()
	settings.Stamp()
	return r.slot.Set(settings)
}
