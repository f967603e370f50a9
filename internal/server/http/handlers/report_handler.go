package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pressdesk/internal/server/http/dto"
)

// ReportHandler serves dashboard figures and export tables.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// Summary handles GET /api/reports/summary.
func (h *ReportHandler) Summary(c *gin.Context) {
	stats, err := h.facade.Summary(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromStats(stats))
}

// Breakdown handles GET /api/reports/breakdown.
func (h *ReportHandler) Breakdown(c *gin.Context) {
	breakdown, err := h.facade.Breakdown(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBreakdown(breakdown))
}

// Export handles GET /api/reports/export/:kind.
func (h *ReportHandler) Export(c *gin.Context) {
	table, err := h.facade.Export(c.Request.Context(), c.Param("kind"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromTable(*table))
}
