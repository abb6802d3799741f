package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"communityhub/internal/app/portal/entity"
	"communityhub/internal/app/portal/infrastructure"
	"communityhub/internal/app/portal/repository"
	"communityhub/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SubmissionService обрабатывает приём отзывов и предложений от пользователей
// Валидирует, нормализует и сохраняет записи, отправляет события в Kafka
type SubmissionService struct {
	feedbackRepo   repository.FeedbackRepository
	suggestionRepo repository.SuggestionRepository
	kafkaProducer  infrastructure.MessagePublisher
	statsCache     StatsCache
	validator      *validator.Validate
}

// NewSubmissionService создает новый сервис приёма с внедрением зависимостей
func NewSubmissionService(
	feedbackRepo repository.FeedbackRepository,
	suggestionRepo repository.SuggestionRepository,
	kafkaProducer infrastructure.MessagePublisher,
	statsCache StatsCache,
) *SubmissionService {
	return &SubmissionService{
		feedbackRepo:   feedbackRepo,
		suggestionRepo: suggestionRepo,
		kafkaProducer:  kafkaProducer,
		statsCache:     statsCache,
		validator:      newValidator(),
	}
}

// CreateFeedback создает новый отзыв
// 1. Валидирует запрос, собирая все нарушения сразу
// 2. Нормализует анонимные записи: user_name и user_email вырезаются
//    на сервере, даже если клиент их прислал
// 3. Назначает ID и метки времени, статус pending и приоритет medium
// 4. Сохраняет в MongoDB и отправляет событие FEEDBACK_CREATED в Kafka
func (s *SubmissionService) CreateFeedback(ctx context.Context, req *entity.CreateFeedbackRequest) (*entity.Feedback, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	now := time.Now().UTC()
	feedback := &entity.Feedback{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Category:    entity.FeedbackCategory(req.Category),
		Type:        entity.FeedbackType(req.Type),
		Rating:      req.Rating,
		IsAnonymous: req.IsAnonymous,
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		Status:      entity.StatusPending,
		Priority:    entity.PriorityMedium,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Нормализация на стороне сервера: контракт не зависит от клиента
	if feedback.IsAnonymous {
		feedback.UserName = ""
		feedback.UserEmail = ""
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	metrics.FeedbackSubmitted.WithLabelValues(string(feedback.Category), string(feedback.Type)).Inc()
	metrics.SubmissionRating.WithLabelValues("feedback").Observe(float64(feedback.Rating))

	event := entity.PortalEvent{
		EventType: "FEEDBACK_CREATED",
		RecordID:  feedback.ID,
		Category:  string(feedback.Category),
		Rating:    feedback.Rating,
		Timestamp: time.Now(),
	}
	if err := s.publishEvent(ctx, event); err != nil {
		// Логируем ошибку, но не прерываем выполнение
		// Отзыв уже создан, проблемы с Kafka не критичны
		fmt.Printf("failed to publish feedback created event: %v\n", err)
	}

	s.invalidateStatsCache(ctx)

	return feedback, nil
}

// GetFeedback получает отзыв по ID
func (s *SubmissionService) GetFeedback(ctx context.Context, id string) (*entity.Feedback, error) {
	feedback, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}

	return feedback, nil
}

// ListFeedback получает отзывы по необязательным фильтрам
// Пустой результат - это пустой список, а не ошибка
func (s *SubmissionService) ListFeedback(ctx context.Context, filter entity.ListFilter) ([]entity.Feedback, error) {
	if err := s.validator.Struct(&filter); err != nil {
		return nil, toValidationError(err)
	}

	feedback, err := s.feedbackRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	return feedback, nil
}

// CreateSuggestion создает новое предложение
// Та же схема что и для отзывов, плюс счётчик голосов, начинающийся с нуля
func (s *SubmissionService) CreateSuggestion(ctx context.Context, req *entity.CreateSuggestionRequest) (*entity.Suggestion, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	now := time.Now().UTC()
	suggestion := &entity.Suggestion{
		ID:              uuid.New().String(),
		Title:           req.Title,
		Description:     req.Description,
		Category:        entity.FeedbackCategory(req.Category),
		Rating:          req.Rating,
		IsAnonymous:     req.IsAnonymous,
		UserName:        req.UserName,
		UserEmail:       req.UserEmail,
		ExpectedBenefit: req.ExpectedBenefit,
		Status:          entity.StatusPending,
		Priority:        entity.PriorityMedium,
		Votes:           0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if suggestion.IsAnonymous {
		suggestion.UserName = ""
		suggestion.UserEmail = ""
	}

	if err := s.suggestionRepo.Create(ctx, suggestion); err != nil {
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}

	metrics.SuggestionsSubmitted.WithLabelValues(string(suggestion.Category)).Inc()
	metrics.SubmissionRating.WithLabelValues("suggestion").Observe(float64(suggestion.Rating))

	event := entity.PortalEvent{
		EventType: "SUGGESTION_CREATED",
		RecordID:  suggestion.ID,
		Category:  string(suggestion.Category),
		Rating:    suggestion.Rating,
		Timestamp: time.Now(),
	}
	if err := s.publishEvent(ctx, event); err != nil {
		fmt.Printf("failed to publish suggestion created event: %v\n", err)
	}

	s.invalidateStatsCache(ctx)

	return suggestion, nil
}

// GetSuggestion получает предложение по ID
func (s *SubmissionService) GetSuggestion(ctx context.Context, id string) (*entity.Suggestion, error) {
	suggestion, err := s.suggestionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}

	return suggestion, nil
}

// ListSuggestions получает предложения по необязательным фильтрам
func (s *SubmissionService) ListSuggestions(ctx context.Context, filter entity.ListFilter) ([]entity.Suggestion, error) {
	// Фильтр по типу применим только к отзывам
	if filter.Type != "" {
		return nil, NewValidationError("feedback_type", "is not applicable to suggestions")
	}
	if err := s.validator.Struct(&filter); err != nil {
		return nil, toValidationError(err)
	}

	suggestions, err := s.suggestionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}

	return suggestions, nil
}

// publishEvent отправляет событие портала в Kafka с ключом = RecordID
func (s *SubmissionService) publishEvent(ctx context.Context, event entity.PortalEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal portal event: %w", err)
	}

	if err := s.kafkaProducer.PublishMessage(ctx, event.RecordID, eventData); err != nil {
		return fmt.Errorf("failed to publish to kafka: %w", err)
	}

	return nil
}

// invalidateStatsCache сбрасывает кеш статистики после записи
// Статистика уже сохранена в БД, проблемы с кешем не критичны
func (s *SubmissionService) invalidateStatsCache(ctx context.Context) {
	if err := s.statsCache.DeleteCategoryStats(ctx); err != nil {
		fmt.Printf("failed to invalidate category stats cache: %v\n", err)
	}
}
