package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"paxscan/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StatsHandler handles usage-statistics endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /api/v1/stats
// @Summary Get extraction statistics
// @Description Get per-strategy attempt, success, latency, and cost aggregates across all recorded extraction attempts.
// @Tags stats
// @Produce json
// @Success 200 {object} Response{data=domain.Stats} "Aggregate statistics"
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}

// GetStatsReport handles GET /api/v1/stats/report
// @Summary Download extraction statistics as an Excel workbook
// @Tags stats
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Workbook download"
// @Router /stats/report [get]
func (h *StatsHandler) GetStatsReport(c *gin.Context) {
	filename, content, err := h.statsService.StatsReport(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, content)
}
