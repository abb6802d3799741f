//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"communityhub/internal/app/portal/entity"
	"communityhub/internal/app/portal/handler"
	"communityhub/internal/app/portal/repository"
	"communityhub/internal/app/portal/service"
	"communityhub/internal/app/portal/util"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MockKafkaProducer struct {
	mu       sync.Mutex
	Messages [][]byte
}

func (m *MockKafkaProducer) PublishMessage(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.Messages = append(m.Messages, value)
	m.mu.Unlock()
	return nil
}

func (m *MockKafkaProducer) Close() error { return nil }

type PortalIntegrationTestSuite struct {
	suite.Suite
	client        *mongo.Client
	db            *mongo.Database
	miniRedis     *miniredis.Miniredis
	statsCache    *util.RedisClient
	router        *gin.Engine
	kafkaProducer *MockKafkaProducer
}

func TestPortalIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PortalIntegrationTestSuite))
}

func (s *PortalIntegrationTestSuite) SetupSuite() {
	mongoURI := getEnv("TEST_MONGODB_URI", "mongodb://localhost:27018")
	dbName := getEnv("TEST_MONGODB_DATABASE", "portal_test_db")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	s.client, err = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	s.Require().NoError(err)

	s.db = s.client.Database(dbName)

	s.miniRedis, err = miniredis.Run()
	s.Require().NoError(err)
	s.statsCache = util.NewRedisClientFromExisting(redis.NewClient(&redis.Options{Addr: s.miniRedis.Addr()}))

	feedbackRepo := repository.NewFeedbackRepository(s.db)
	suggestionRepo := repository.NewSuggestionRepository(s.db)
	analyticsRepo := repository.NewAnalyticsRepository(s.db)
	statusCheckRepo := repository.NewStatusCheckRepository(s.db)

	s.kafkaProducer = &MockKafkaProducer{Messages: make([][]byte, 0)}

	submissionService := service.NewSubmissionService(feedbackRepo, suggestionRepo, s.kafkaProducer, s.statsCache)
	triageService := service.NewTriageService(feedbackRepo, suggestionRepo, s.kafkaProducer, s.statsCache)
	statsService := service.NewStatsService(feedbackRepo, suggestionRepo, s.statsCache)
	analyticsService := service.NewAnalyticsService(analyticsRepo, statusCheckRepo)

	gin.SetMode(gin.TestMode)
	s.router = handler.SetupRoutes(
		handler.NewFeedbackHandler(submissionService, triageService),
		handler.NewSuggestionHandler(submissionService, triageService),
		handler.NewStatsHandler(statsService),
		handler.NewAnalyticsHandler(analyticsService),
	)
}

func (s *PortalIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	s.db.Collection("feedback").Drop(ctx)
	s.db.Collection("suggestions").Drop(ctx)
	s.db.Collection("analytics").Drop(ctx)
	s.db.Collection("status_checks").Drop(ctx)
	s.miniRedis.FlushAll()
	s.kafkaProducer.Messages = make([][]byte, 0)
}

func (s *PortalIntegrationTestSuite) TearDownSuite() {
	if s.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.client.Disconnect(ctx)
	}
	if s.miniRedis != nil {
		s.miniRedis.Close()
	}
}

func (s *PortalIntegrationTestSuite) postJSON(path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PortalIntegrationTestSuite) createFeedback(category string, rating int) entity.Feedback {
	w := s.postJSON("/api/feedback", entity.CreateFeedbackRequest{
		Title:       "Integration feedback",
		Description: "Created from the integration suite",
		Category:    category,
		Type:        "feedback",
		Rating:      rating,
		UserName:    "Tester",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var created entity.Feedback
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func (s *PortalIntegrationTestSuite) createSuggestion(category string, rating int) entity.Suggestion {
	w := s.postJSON("/api/suggestions", entity.CreateSuggestionRequest{
		Title:       "Integration suggestion",
		Description: "Created from the integration suite",
		Category:    category,
		Rating:      rating,
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var created entity.Suggestion
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func (s *PortalIntegrationTestSuite) TestCreateAndGetFeedback() {
	created := s.createFeedback("performance", 3)
	s.Equal("pending", string(created.Status))
	s.Equal("medium", string(created.Priority))
	s.NotEmpty(created.ID)

	req, _ := http.NewRequest(http.MethodGet, "/api/feedback/"+created.ID, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var fetched entity.Feedback
	s.NoError(json.Unmarshal(w.Body.Bytes(), &fetched))
	s.Equal(created.ID, fetched.ID)
	s.Equal("Tester", fetched.UserName)
}

func (s *PortalIntegrationTestSuite) TestAnonymousFeedbackStripsUserFields() {
	w := s.postJSON("/api/feedback", entity.CreateFeedbackRequest{
		Title:       "Anonymous report",
		Description: "Submitted without attribution",
		Category:    "security",
		Type:        "bug_report",
		Rating:      1,
		IsAnonymous: true,
		UserName:    "Should Vanish",
		UserEmail:   "vanish@example.com",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var created entity.Feedback
	s.NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.Empty(created.UserName)
	s.Empty(created.UserEmail)
	s.True(created.IsAnonymous)
}

func (s *PortalIntegrationTestSuite) TestListFeedbackWithFilters() {
	s.createFeedback("performance", 3)
	s.createFeedback("performance", 5)
	s.createFeedback("security", 2)

	req, _ := http.NewRequest(http.MethodGet, "/api/feedback?category=performance", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var response entity.FeedbackListResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(2, response.Total)
	for _, f := range response.Feedback {
		s.Equal("performance", string(f.Category))
	}
}

func (s *PortalIntegrationTestSuite) TestTriagePatchUpdatesOnlyGivenFields() {
	created := s.createFeedback("functionality", 4)

	body := bytes.NewBufferString(`{"status":"in_progress","admin_notes":"looking into it"}`)
	req, _ := http.NewRequest(http.MethodPatch, "/api/feedback/"+created.ID, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var updated entity.Feedback
	s.NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	s.Equal("in_progress", string(updated.Status))
	s.Equal("looking into it", updated.AdminNotes)
	s.Equal("medium", string(updated.Priority))
	s.Equal(created.Title, updated.Title)
	s.Equal(created.Rating, updated.Rating)
}

func (s *PortalIntegrationTestSuite) TestTriagePatchRejectsUserContent() {
	created := s.createFeedback("content", 4)

	body := bytes.NewBufferString(`{"title":"hijacked"}`)
	req, _ := http.NewRequest(http.MethodPatch, "/api/feedback/"+created.ID, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *PortalIntegrationTestSuite) TestConcurrentVotesAllCounted() {
	created := s.createSuggestion("social_features", 4)

	const voters = 20
	var wg sync.WaitGroup
	wg.Add(voters)
	for i := 0; i < voters; i++ {
		go func() {
			defer wg.Done()
			req, _ := http.NewRequest(http.MethodPost, "/api/suggestions/"+created.ID+"/vote", nil)
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, req)
			s.Equal(http.StatusOK, w.Code)
		}()
	}
	wg.Wait()

	req, _ := http.NewRequest(http.MethodGet, "/api/suggestions/"+created.ID, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var suggestion entity.Suggestion
	s.NoError(json.Unmarshal(w.Body.Bytes(), &suggestion))
	s.Equal(voters, suggestion.Votes)
}

func (s *PortalIntegrationTestSuite) TestCategoryStatsAcrossCollections() {
	s.createFeedback("security", 4)
	s.createFeedback("security", 2)
	s.createSuggestion("security", 5)

	req, _ := http.NewRequest(http.MethodGet, "/api/categories/stats", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var stats []entity.CategoryStat
	s.NoError(json.Unmarshal(w.Body.Bytes(), &stats))
	s.Len(stats, 8)

	var security *entity.CategoryStat
	for i := range stats {
		if stats[i].Category == entity.CategorySecurity {
			security = &stats[i]
		}
	}
	s.Require().NotNil(security)
	s.Equal(2, security.FeedbackCount)
	s.Equal(1, security.SuggestionCount)
	s.Require().NotNil(security.AverageRating)
	s.Equal(3.67, *security.AverageRating)
}

func (s *PortalIntegrationTestSuite) TestDashboardOverview() {
	s.createFeedback("other", 3)
	s.createFeedback("other", 4)
	created := s.createSuggestion("other", 5)

	body := bytes.NewBufferString(`{"priority":"urgent"}`)
	req, _ := http.NewRequest(http.MethodPatch, "/api/suggestions/"+created.ID, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusOK, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var dashboard entity.Dashboard
	s.NoError(json.Unmarshal(w.Body.Bytes(), &dashboard))
	s.Equal(int64(2), dashboard.Overview.TotalFeedback)
	s.Equal(int64(1), dashboard.Overview.TotalSuggestions)
	s.Equal(int64(2), dashboard.Overview.PendingFeedback)
	s.Equal(int64(1), dashboard.Overview.HighPriorityItems)
	s.Len(dashboard.RecentFeedback, 2)
	s.Len(dashboard.RecentSuggestions, 1)
}

func (s *PortalIntegrationTestSuite) TestNonIntegerRatingRejected() {
	body := bytes.NewBufferString(`{"title":"x","description":"y","category":"performance","type":"bug_report","rating":3.5}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/feedback", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *PortalIntegrationTestSuite) TestValidationReportsAllFields() {
	w := s.postJSON("/api/feedback", map[string]interface{}{
		"category": "bogus",
		"rating":   42,
	})

	s.Equal(http.StatusBadRequest, w.Code)

	var response entity.ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Contains(response.Fields, "title")
	s.Contains(response.Fields, "description")
	s.Contains(response.Fields, "category")
	s.Contains(response.Fields, "rating")
}

func (s *PortalIntegrationTestSuite) TestAnalyticsAndStatusChecks() {
	w := s.postJSON("/api/analytics", entity.TrackEventRequest{PagePath: "/feedback", Action: "page_view"})
	s.Equal(http.StatusCreated, w.Code)

	w = s.postJSON("/api/status", entity.CreateStatusCheckRequest{ClientName: "integration-suite"})
	s.Equal(http.StatusCreated, w.Code)

	req, _ := http.NewRequest(http.MethodGet, "/api/status", nil)
	w2 := httptest.NewRecorder()
	s.router.ServeHTTP(w2, req)

	s.Equal(http.StatusOK, w2.Code)

	var checks []entity.StatusCheck
	s.NoError(json.Unmarshal(w2.Body.Bytes(), &checks))
	s.Len(checks, 1)
	s.Equal("integration-suite", checks[0].ClientName)
}

func (s *PortalIntegrationTestSuite) TestHealthCheck() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
