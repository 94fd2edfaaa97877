package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func serveLogged(t *testing.T, route string, handler gin.HandlerFunc, path string) *observer.ObservedLogs {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	engine := gin.New()
	engine.Use(Recovery(zap.New(core)))
	engine.Use(RequestLogger(zap.New(core)))
	engine.GET(route, handler)

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return logs
}

func TestRequestLogger_TagsRealm(t *testing.T) {
	logs := serveLogged(t, "/portal/dashboard", func(c *gin.Context) {
		c.Set("jwt_realm", "tenant")
		c.String(http.StatusOK, "ok")
	}, "/portal/dashboard?status=overdue")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "request served", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "tenant", fields["realm"])
	assert.Equal(t, "/portal/dashboard", fields["route"])
	assert.Equal(t, "status=overdue", fields["query"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestRequestLogger_RejectedRequestWarns(t *testing.T) {
	logs := serveLogged(t, "/tenants", func(c *gin.Context) {
		c.String(http.StatusConflict, "conflict")
	}, "/tenants")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "request rejected", entries[0].Message)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
}

func TestRecovery_LogsPanic(t *testing.T) {
	logs := serveLogged(t, "/boom", func(c *gin.Context) {
		panic("unreachable store")
	}, "/boom")

	messages := make([]string, 0, logs.Len())
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "panic while serving request")
}

func TestFromGinContext_NopWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	log := FromGinContext(c)
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Info("ignored") })
}
