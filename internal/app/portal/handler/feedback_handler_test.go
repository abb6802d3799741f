package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityhub/internal/app/portal/entity"
	"communityhub/internal/app/portal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) CreateFeedback(ctx context.Context, req *entity.CreateFeedbackRequest) (*entity.Feedback, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Feedback), args.Error(1)
}

func (m *MockSubmissionService) GetFeedback(ctx context.Context, id string) (*entity.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Feedback), args.Error(1)
}

func (m *MockSubmissionService) ListFeedback(ctx context.Context, filter entity.ListFilter) ([]entity.Feedback, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Feedback), args.Error(1)
}

func (m *MockSubmissionService) CreateSuggestion(ctx context.Context, req *entity.CreateSuggestionRequest) (*entity.Suggestion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Suggestion), args.Error(1)
}

func (m *MockSubmissionService) GetSuggestion(ctx context.Context, id string) (*entity.Suggestion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Suggestion), args.Error(1)
}

func (m *MockSubmissionService) ListSuggestions(ctx context.Context, filter entity.ListFilter) ([]entity.Suggestion, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Suggestion), args.Error(1)
}

type MockTriageService struct {
	mock.Mock
}

func (m *MockTriageService) UpdateFeedback(ctx context.Context, id string, req *entity.TriageRequest) (*entity.Feedback, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Feedback), args.Error(1)
}

func (m *MockTriageService) UpdateSuggestion(ctx context.Context, id string, req *entity.TriageRequest) (*entity.Suggestion, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Suggestion), args.Error(1)
}

func (m *MockTriageService) VoteSuggestion(ctx context.Context, id string) (*entity.Suggestion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Suggestion), args.Error(1)
}

func setupFeedbackRouter(submissionService *MockSubmissionService, triageService *MockTriageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewFeedbackHandler(submissionService, triageService)
	router.POST("/api/feedback", h.CreateFeedback)
	router.GET("/api/feedback", h.ListFeedback)
	router.GET("/api/feedback/:feedback_id", h.GetFeedback)
	router.PATCH("/api/feedback/:feedback_id", h.UpdateFeedback)
	return router
}

func TestCreateFeedbackHandler_Success(t *testing.T) {
	submissionService := new(MockSubmissionService)
	router := setupFeedbackRouter(submissionService, new(MockTriageService))

	feedback := &entity.Feedback{ID: "fb-1", Title: "Slow load", Status: entity.StatusPending}
	submissionService.On("CreateFeedback", mock.Anything, mock.AnythingOfType("*entity.CreateFeedbackRequest")).Return(feedback, nil)

	body, _ := json.Marshal(entity.CreateFeedbackRequest{
		Title:       "Slow load",
		Description: "Page takes 5s",
		Category:    "performance",
		Type:        "bug_report",
		Rating:      2,
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/feedback", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response entity.Feedback
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "fb-1", response.ID)
}

func TestCreateFeedbackHandler_ValidationFieldsReturned(t *testing.T) {
	submissionService := new(MockSubmissionService)
	router := setupFeedbackRouter(submissionService, new(MockTriageService))

	validationErr := &service.ValidationError{Fields: map[string]string{
		"rating":   "must be at most 5",
		"category": "must be one of the defined values",
	}}
	submissionService.On("CreateFeedback", mock.Anything, mock.Anything).Return(nil, validationErr)

	body, _ := json.Marshal(entity.CreateFeedbackRequest{Title: "x", Description: "y", Category: "bogus", Type: "bug_report", Rating: 9})
	req, _ := http.NewRequest(http.MethodPost, "/api/feedback", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response entity.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response.Fields, "rating")
	assert.Contains(t, response.Fields, "category")
}

func TestCreateFeedbackHandler_NonIntegerRating(t *testing.T) {
	submissionService := new(MockSubmissionService)
	router := setupFeedbackRouter(submissionService, new(MockTriageService))

	body := `{"title":"x","description":"y","category":"performance","type":"bug_report","rating":3.5}`
	req, _ := http.NewRequest(http.MethodPost, "/api/feedback", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	submissionService.AssertNotCalled(t, "CreateFeedback", mock.Anything, mock.Anything)
}

func TestGetFeedbackHandler_NotFound(t *testing.T) {
	submissionService := new(MockSubmissionService)
	router := setupFeedbackRouter(submissionService, new(MockTriageService))

	submissionService.On("GetFeedback", mock.Anything, "missing").Return(nil, service.ErrRecordNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/api/feedback/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListFeedbackHandler_WrapsTotal(t *testing.T) {
	submissionService := new(MockSubmissionService)
	router := setupFeedbackRouter(submissionService, new(MockTriageService))

	feedback := []entity.Feedback{{ID: "fb-1"}, {ID: "fb-2"}}
	submissionService.On("ListFeedback", mock.Anything, mock.AnythingOfType("entity.ListFilter")).Return(feedback, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/feedback?category=performance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.FeedbackListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 2, response.Total)
	assert.Len(t, response.Feedback, 2)
}

func TestListFeedbackHandler_FilterPassedThrough(t *testing.T) {
	submissionService := new(MockSubmissionService)
	router := setupFeedbackRouter(submissionService, new(MockTriageService))

	expected := entity.ListFilter{Category: "security", Status: "pending", Type: "bug_report", Limit: 10, Skip: 5}
	submissionService.On("ListFeedback", mock.Anything, expected).Return([]entity.Feedback{}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/feedback?category=security&status=pending&feedback_type=bug_report&limit=10&skip=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	submissionService.AssertExpectations(t)
}

func TestUpdateFeedbackHandler_Success(t *testing.T) {
	triageService := new(MockTriageService)
	router := setupFeedbackRouter(new(MockSubmissionService), triageService)

	updated := &entity.Feedback{ID: "fb-1", Status: entity.StatusResolved}
	triageService.On("UpdateFeedback", mock.Anything, "fb-1", mock.AnythingOfType("*entity.TriageRequest")).Return(updated, nil)

	req, _ := http.NewRequest(http.MethodPatch, "/api/feedback/fb-1", bytes.NewBufferString(`{"status":"resolved"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateFeedbackHandler_RejectsUserContentFields(t *testing.T) {
	triageService := new(MockTriageService)
	router := setupFeedbackRouter(new(MockSubmissionService), triageService)

	for _, body := range []string{
		`{"title":"hijacked"}`,
		`{"status":"resolved","rating":1}`,
		`{"description":"rewritten"}`,
	} {
		req, _ := http.NewRequest(http.MethodPatch, "/api/feedback/fb-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s must be rejected", body)
	}
	triageService.AssertNotCalled(t, "UpdateFeedback", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateFeedbackHandler_MalformedJSON(t *testing.T) {
	router := setupFeedbackRouter(new(MockSubmissionService), new(MockTriageService))

	req, _ := http.NewRequest(http.MethodPatch, "/api/feedback/fb-1", bytes.NewBufferString(`{"status":`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
