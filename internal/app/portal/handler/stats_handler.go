package handler

import (
	"net/http"

	"communityhub/internal/app/portal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService service.StatsServiceInterface
}

func NewStatsHandler(statsService service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

func (h *StatsHandler) GetCategoryStats(c *gin.Context) {
	stats, err := h.statsService.CategoryStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get category stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
