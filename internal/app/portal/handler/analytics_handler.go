package handler

import (
	"net/http"

	"communityhub/internal/app/portal/entity"
	"communityhub/internal/app/portal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
}

func NewAnalyticsHandler(analyticsService service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) TrackEvent(c *gin.Context) {
	var req entity.TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	event, err := h.analyticsService.TrackEvent(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to track event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *AnalyticsHandler) CreateStatusCheck(c *gin.Context) {
	var req entity.CreateStatusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	check, err := h.analyticsService.CreateStatusCheck(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create status check")
		return
	}

	c.JSON(http.StatusCreated, check)
}

func (h *AnalyticsHandler) ListStatusChecks(c *gin.Context) {
	checks, err := h.analyticsService.ListStatusChecks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list status checks"})
		return
	}

	c.JSON(http.StatusOK, checks)
}
