package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	identityapp "github.com/dovepeak/backend/internal/application/identity"
	tenancyapp "github.com/dovepeak/backend/internal/application/tenancy"
	identitydomain "github.com/dovepeak/backend/internal/domain/identity"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/dovepeak/backend/internal/infrastructure/auth"
	"github.com/dovepeak/backend/internal/infrastructure/persistence"
	"github.com/dovepeak/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// portalFixture wires the portal handler against a real file-backed store
// with one tenant and their portal account.
type portalFixture struct {
	engine  *gin.Engine
	tenant  *tenancy.Tenant
	account *identitydomain.TenantAccount
}

func newPortalFixture(t *testing.T) *portalFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	store, err := persistence.NewStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	tenantRepo := persistence.NewStoreTenantRepository(store)
	unitRepo := persistence.NewStoreUnitRepository(store)
	accountRepo := persistence.NewStoreTenantAccountRepository(store)

	rent := decimal.NewFromInt(45000)
	leaseStart := time.Now().AddDate(0, -3, 0)
	tenant, err := tenancy.NewTenant(uuid.New(), uuid.New(), "Amina", "Hassan",
		"amina.hassan@example.com", "+254711000002", "30112233",
		leaseStart, time.Now().AddDate(0, 0, 30), rent, rent)
	require.NoError(t, err)
	require.NoError(t, tenantRepo.Add(ctx, tenant))

	account, err := identitydomain.NewTenantAccount(tenant, "tenant-demo-password")
	require.NoError(t, err)
	require.NoError(t, accountRepo.Add(ctx, account))

	adminService := identityapp.NewAdminService(nil, accountRepo, tenantRepo, nil, nil)
	tenantService := tenancyapp.NewTenantService(tenantRepo, unitRepo)
	h := NewPortalHandler(adminService, tenantService, nil, nil, nil, nil)

	f := &portalFixture{tenant: tenant, account: account}
	f.engine = gin.New()
	f.engine.GET("/portal/lease", func(c *gin.Context) {
		if accountID := c.GetHeader("X-Test-Account"); accountID != "" {
			c.Set(middleware.JWTClaimsKey, &auth.Claims{
				UserID: accountID,
				Email:  account.Email,
				Realm:  auth.RealmTenant,
			})
		}
		h.Lease(c)
	})
	return f
}

func (f *portalFixture) get(path, accountID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if accountID != "" {
		req.Header.Set("X-Test-Account", accountID)
	}
	recorder := httptest.NewRecorder()
	f.engine.ServeHTTP(recorder, req)
	return recorder
}

func TestPortalHandler_Lease(t *testing.T) {
	f := newPortalFixture(t)

	recorder := f.get("/portal/lease", f.account.ID.String())
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID                uuid.UUID `json:"id"`
			Email             string    `json:"email"`
			DaysUntilLeaseEnd int       `json:"days_until_lease_end"`
			LeaseExpiringSoon bool      `json:"lease_expiring_soon"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, f.tenant.ID, body.Data.ID)
	assert.Equal(t, f.tenant.Email, body.Data.Email)
	assert.Equal(t, 30, body.Data.DaysUntilLeaseEnd)
	assert.True(t, body.Data.LeaseExpiringSoon)
}

func TestPortalHandler_Lease_NoSession(t *testing.T) {
	f := newPortalFixture(t)

	recorder := f.get("/portal/lease", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestPortalHandler_Lease_OrphanedAccount(t *testing.T) {
	f := newPortalFixture(t)

	// A token for an account that no longer exists is rejected
	recorder := f.get("/portal/lease", uuid.NewString())
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
