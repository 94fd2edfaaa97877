package handler

import (
	reportapp "github.com/dovepeak/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles dashboard and report API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard returns the portfolio-wide dashboard summary
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}

// Financial returns the rent collection summary
func (h *ReportHandler) Financial(c *gin.Context) {
	summary, err := h.reportService.Financial(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// Occupancy returns the per-apartment occupancy report
func (h *ReportHandler) Occupancy(c *gin.Context) {
	report, err := h.reportService.Occupancy(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}
