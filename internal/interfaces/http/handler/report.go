package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/toystore/backend/internal/application/report"
)

// ReportHandler handles reporting API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.InventoryReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.InventoryReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// CriticalInventory handles GET /reports/critical-inventory
func (h *ReportHandler) CriticalInventory(c *gin.Context) {
	items, err := h.reportService.CriticalInventory(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, items)
}
