package handler

import (
	"net/http"

	"communityhub/internal/app/portal/entity"
	"communityhub/internal/app/portal/service"

	"github.com/gin-gonic/gin"
)

type SuggestionHandler struct {
	submissionService service.SubmissionServiceInterface
	triageService     service.TriageServiceInterface
}

func NewSuggestionHandler(
	submissionService service.SubmissionServiceInterface,
	triageService service.TriageServiceInterface,
) *SuggestionHandler {
	return &SuggestionHandler{
		submissionService: submissionService,
		triageService:     triageService,
	}
}

func (h *SuggestionHandler) CreateSuggestion(c *gin.Context) {
	var req entity.CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	suggestion, err := h.submissionService.CreateSuggestion(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create suggestion")
		return
	}

	c.JSON(http.StatusCreated, suggestion)
}

func (h *SuggestionHandler) GetSuggestion(c *gin.Context) {
	id := c.Param("suggestion_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Suggestion ID is required"})
		return
	}

	suggestion, err := h.submissionService.GetSuggestion(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to get suggestion")
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

func (h *SuggestionHandler) ListSuggestions(c *gin.Context) {
	var filter entity.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	suggestions, err := h.submissionService.ListSuggestions(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, "Failed to list suggestions")
		return
	}

	c.JSON(http.StatusOK, entity.SuggestionListResponse{
		Suggestions: suggestions,
		Total:       len(suggestions),
	})
}

func (h *SuggestionHandler) UpdateSuggestion(c *gin.Context) {
	id := c.Param("suggestion_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Suggestion ID is required"})
		return
	}

	req, err := bindTriageRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{
			Error:   "Invalid patch",
			Message: triagePatchHint,
		})
		return
	}

	suggestion, err := h.triageService.UpdateSuggestion(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update suggestion")
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

func (h *SuggestionHandler) VoteSuggestion(c *gin.Context) {
	id := c.Param("suggestion_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Suggestion ID is required"})
		return
	}

	suggestion, err := h.triageService.VoteSuggestion(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to vote for suggestion")
		return
	}

	c.JSON(http.StatusOK, suggestion)
}
