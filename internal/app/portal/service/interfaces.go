package service

import (
	"context"
	"time"

	"communityhub/internal/app/portal/entity"
)

type SubmissionServiceInterface interface {
	CreateFeedback(ctx context.Context, req *entity.CreateFeedbackRequest) (*entity.Feedback, error)
	GetFeedback(ctx context.Context, id string) (*entity.Feedback, error)
	ListFeedback(ctx context.Context, filter entity.ListFilter) ([]entity.Feedback, error)
	CreateSuggestion(ctx context.Context, req *entity.CreateSuggestionRequest) (*entity.Suggestion, error)
	GetSuggestion(ctx context.Context, id string) (*entity.Suggestion, error)
	ListSuggestions(ctx context.Context, filter entity.ListFilter) ([]entity.Suggestion, error)
}

type TriageServiceInterface interface {
	UpdateFeedback(ctx context.Context, id string, req *entity.TriageRequest) (*entity.Feedback, error)
	UpdateSuggestion(ctx context.Context, id string, req *entity.TriageRequest) (*entity.Suggestion, error)
	VoteSuggestion(ctx context.Context, id string) (*entity.Suggestion, error)
}

type StatsServiceInterface interface {
	CategoryStats(ctx context.Context) ([]entity.CategoryStat, error)
	Dashboard(ctx context.Context) (*entity.Dashboard, error)
	RefreshCategoryStatsCache(ctx context.Context) error
}

type AnalyticsServiceInterface interface {
	TrackEvent(ctx context.Context, req *entity.TrackEventRequest) (*entity.AnalyticsEvent, error)
	CreateStatusCheck(ctx context.Context, req *entity.CreateStatusCheckRequest) (*entity.StatusCheck, error)
	ListStatusChecks(ctx context.Context) ([]entity.StatusCheck, error)
}

// StatsCache интерфейс кеша статистики категорий
// Реализуется util.RedisClient, в тестах подменяется miniredis или моком
type StatsCache interface {
	GetCategoryStats(ctx context.Context) ([]entity.CategoryStat, error)
	SetCategoryStats(ctx context.Context, stats []entity.CategoryStat, ttl time.Duration) error
	DeleteCategoryStats(ctx context.Context) error
}
