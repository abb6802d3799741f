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
)

// TriageService обрабатывает административные операции над записями
// Администратор может менять только метаданные триажа: статус, приоритет,
// заметки и ответ. Пользовательский контент неприкосновенен
type TriageService struct {
	feedbackRepo   repository.FeedbackRepository
	suggestionRepo repository.SuggestionRepository
	kafkaProducer  infrastructure.MessagePublisher
	statsCache     StatsCache
	validator      *validator.Validate
}

// NewTriageService создает новый сервис триажа с внедрением зависимостей
func NewTriageService(
	feedbackRepo repository.FeedbackRepository,
	suggestionRepo repository.SuggestionRepository,
	kafkaProducer infrastructure.MessagePublisher,
	statsCache StatsCache,
) *TriageService {
	return &TriageService{
		feedbackRepo:   feedbackRepo,
		suggestionRepo: suggestionRepo,
		kafkaProducer:  kafkaProducer,
		statsCache:     statsCache,
		validator:      newValidator(),
	}
}

// UpdateFeedback применяет patch триажа к отзыву
// Обновляются только переданные поля, остальные не затрагиваются
func (s *TriageService) UpdateFeedback(ctx context.Context, id string, req *entity.TriageRequest) (*entity.Feedback, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	feedback, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}

	if req.Status != nil {
		feedback.Status = entity.RecordStatus(*req.Status)
	}
	if req.Priority != nil {
		feedback.Priority = entity.Priority(*req.Priority)
	}
	if req.AdminNotes != nil {
		feedback.AdminNotes = *req.AdminNotes
	}
	if req.AdminResponse != nil {
		feedback.AdminResponse = *req.AdminResponse
	}

	if err := s.feedbackRepo.UpdateTriage(ctx, feedback); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to update feedback: %w", err)
	}

	s.invalidateStatsCache(ctx)

	return feedback, nil
}

// UpdateSuggestion применяет patch триажа к предложению
func (s *TriageService) UpdateSuggestion(ctx context.Context, id string, req *entity.TriageRequest) (*entity.Suggestion, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	suggestion, err := s.suggestionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}

	if req.Status != nil {
		suggestion.Status = entity.RecordStatus(*req.Status)
	}
	if req.Priority != nil {
		suggestion.Priority = entity.Priority(*req.Priority)
	}
	if req.AdminNotes != nil {
		suggestion.AdminNotes = *req.AdminNotes
	}
	if req.AdminResponse != nil {
		suggestion.AdminResponse = *req.AdminResponse
	}

	if err := s.suggestionRepo.UpdateTriage(ctx, suggestion); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to update suggestion: %w", err)
	}

	s.invalidateStatsCache(ctx)

	return suggestion, nil
}

// VoteSuggestion увеличивает счётчик голосов предложения на 1
// Инкремент атомарный на стороне MongoDB: конкурентные голоса
// на одной записи не теряются
func (s *TriageService) VoteSuggestion(ctx context.Context, id string) (*entity.Suggestion, error) {
	suggestion, err := s.suggestionRepo.IncrementVotes(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to vote for suggestion: %w", err)
	}

	metrics.SuggestionVotes.Inc()

	event := entity.PortalEvent{
		EventType: "SUGGESTION_VOTED",
		RecordID:  suggestion.ID,
		Category:  string(suggestion.Category),
		Votes:     suggestion.Votes,
		Timestamp: time.Now(),
	}
	eventData, err := json.Marshal(event)
	if err != nil {
		fmt.Printf("failed to marshal suggestion voted event: %v\n", err)
	} else if err := s.kafkaProducer.PublishMessage(ctx, suggestion.ID, eventData); err != nil {
		// Голос уже учтён, проблемы с Kafka не критичны
		fmt.Printf("failed to publish suggestion voted event: %v\n", err)
	}

	return suggestion, nil
}

func (s *TriageService) invalidateStatsCache(ctx context.Context) {
	if err := s.statsCache.DeleteCategoryStats(ctx); err != nil {
		fmt.Printf("failed to invalidate category stats cache: %v\n", err)
	}
}
