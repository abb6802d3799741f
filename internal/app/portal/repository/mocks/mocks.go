package mocks

import (
	"context"
	"time"

	"communityhub/internal/app/portal/entity"

	"github.com/stretchr/testify/mock"
)

// MockFeedbackRepository мок для FeedbackRepository
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) GetByID(ctx context.Context, id string) (*entity.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) List(ctx context.Context, filter entity.ListFilter) ([]entity.Feedback, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) GetAll(ctx context.Context) ([]entity.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) GetRecent(ctx context.Context, limit int64) ([]entity.Feedback, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) UpdateTriage(ctx context.Context, feedback *entity.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedbackRepository) CountByStatus(ctx context.Context, status entity.RecordStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedbackRepository) CountByPriorityIn(ctx context.Context, priorities []entity.Priority) (int64, error) {
	args := m.Called(ctx, priorities)
	return args.Get(0).(int64), args.Error(1)
}

// MockSuggestionRepository мок для SuggestionRepository
type MockSuggestionRepository struct {
	mock.Mock
}

func (m *MockSuggestionRepository) Create(ctx context.Context, suggestion *entity.Suggestion) error {
	args := m.Called(ctx, suggestion)
	return args.Error(0)
}

func (m *MockSuggestionRepository) GetByID(ctx context.Context, id string) (*entity.Suggestion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Suggestion), args.Error(1)
}

func (m *MockSuggestionRepository) List(ctx context.Context, filter entity.ListFilter) ([]entity.Suggestion, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Suggestion), args.Error(1)
}

func (m *MockSuggestionRepository) GetAll(ctx context.Context) ([]entity.Suggestion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Suggestion), args.Error(1)
}

func (m *MockSuggestionRepository) GetRecent(ctx context.Context, limit int64) ([]entity.Suggestion, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Suggestion), args.Error(1)
}

func (m *MockSuggestionRepository) UpdateTriage(ctx context.Context, suggestion *entity.Suggestion) error {
	args := m.Called(ctx, suggestion)
	return args.Error(0)
}

func (m *MockSuggestionRepository) IncrementVotes(ctx context.Context, id string) (*entity.Suggestion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Suggestion), args.Error(1)
}

func (m *MockSuggestionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSuggestionRepository) CountByStatus(ctx context.Context, status entity.RecordStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSuggestionRepository) CountByPriorityIn(ctx context.Context, priorities []entity.Priority) (int64, error) {
	args := m.Called(ctx, priorities)
	return args.Get(0).(int64), args.Error(1)
}

// MockAnalyticsRepository мок для AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Create(ctx context.Context, event *entity.AnalyticsEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockStatusCheckRepository мок для StatusCheckRepository
type MockStatusCheckRepository struct {
	mock.Mock
}

func (m *MockStatusCheckRepository) Create(ctx context.Context, check *entity.StatusCheck) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

func (m *MockStatusCheckRepository) GetAll(ctx context.Context, limit int64) ([]entity.StatusCheck, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StatusCheck), args.Error(1)
}

// MockStatsCache мок для кеша статистики категорий
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetCategoryStats(ctx context.Context) ([]entity.CategoryStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CategoryStat), args.Error(1)
}

func (m *MockStatsCache) SetCategoryStats(ctx context.Context, stats []entity.CategoryStat, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *MockStatsCache) DeleteCategoryStats(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockMessagePublisher мок для Kafka MessagePublisher
type MockMessagePublisher struct {
	mock.Mock
	Messages [][]byte
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	m.Messages = append(m.Messages, value)
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
