package repository

import (
	"context"
	"errors"

	"communityhub/internal/app/portal/entity"
)

var (
	// Стандартная ошибка репозиториев для обработки в service layer
	ErrRecordNotFound = errors.New("record not found")
)

// FeedbackRepository определяет методы для работы с отзывами в MongoDB
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	GetByID(ctx context.Context, id string) (*entity.Feedback, error)
	List(ctx context.Context, filter entity.ListFilter) ([]entity.Feedback, error)
	GetAll(ctx context.Context) ([]entity.Feedback, error)
	GetRecent(ctx context.Context, limit int64) ([]entity.Feedback, error)
	UpdateTriage(ctx context.Context, feedback *entity.Feedback) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.RecordStatus) (int64, error)
	CountByPriorityIn(ctx context.Context, priorities []entity.Priority) (int64, error)
}

// SuggestionRepository определяет методы для работы с предложениями в MongoDB
type SuggestionRepository interface {
	Create(ctx context.Context, suggestion *entity.Suggestion) error
	GetByID(ctx context.Context, id string) (*entity.Suggestion, error)
	List(ctx context.Context, filter entity.ListFilter) ([]entity.Suggestion, error)
	GetAll(ctx context.Context) ([]entity.Suggestion, error)
	GetRecent(ctx context.Context, limit int64) ([]entity.Suggestion, error)
	UpdateTriage(ctx context.Context, suggestion *entity.Suggestion) error
	IncrementVotes(ctx context.Context, id string) (*entity.Suggestion, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.RecordStatus) (int64, error)
	CountByPriorityIn(ctx context.Context, priorities []entity.Priority) (int64, error)
}

// AnalyticsRepository определяет методы для записи событий аналитики
type AnalyticsRepository interface {
	Create(ctx context.Context, event *entity.AnalyticsEvent) error
}

// StatusCheckRepository определяет методы для проверок доступности
type StatusCheckRepository interface {
	Create(ctx context.Context, check *entity.StatusCheck) error
	GetAll(ctx context.Context, limit int64) ([]entity.StatusCheck, error)
}
