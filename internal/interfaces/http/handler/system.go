package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/dovepeak/backend/internal/infrastructure/persistence"
	"github.com/dovepeak/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles health and system information endpoints
type SystemHandler struct {
	BaseHandler
	store     *persistence.Store
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(store *persistence.Store) *SystemHandler {
	return &SystemHandler{
		store:     store,
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Uptime  string `json:"uptime"`
}

// Health reports service and storage health. The service stays up with
// degraded storage; readers see empty collections until storage returns.
func (h *SystemHandler) Health(c *gin.Context) {
	storage := "available"
	status := http.StatusOK
	if !h.store.Available() {
		storage = "unavailable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, HealthResponse{
		Status:  "ok",
		Storage: storage,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// GetSystemInfo returns basic system information including version and uptime
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      "Dovepeak Property Management API",
		Version:   "1.0.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}
