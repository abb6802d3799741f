package handler

import (
	"net/http"

	"communityhub/internal/app/portal/entity"
	"communityhub/internal/app/portal/service"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	submissionService service.SubmissionServiceInterface
	triageService     service.TriageServiceInterface
}

func NewFeedbackHandler(
	submissionService service.SubmissionServiceInterface,
	triageService service.TriageServiceInterface,
) *FeedbackHandler {
	return &FeedbackHandler{
		submissionService: submissionService,
		triageService:     triageService,
	}
}

func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req entity.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	feedback, err := h.submissionService.CreateFeedback(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create feedback")
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	id := c.Param("feedback_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Feedback ID is required"})
		return
	}

	feedback, err := h.submissionService.GetFeedback(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to get feedback")
		return
	}

	c.JSON(http.StatusOK, feedback)
}

func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	var filter entity.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	feedback, err := h.submissionService.ListFeedback(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, "Failed to list feedback")
		return
	}

	c.JSON(http.StatusOK, entity.FeedbackListResponse{
		Feedback: feedback,
		Total:    len(feedback),
	})
}

func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	id := c.Param("feedback_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Feedback ID is required"})
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

	feedback, err := h.triageService.UpdateFeedback(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update feedback")
		return
	}

	c.JSON(http.StatusOK, feedback)
}
