package service

import (
	"context"
	"fmt"
	"time"

	"communityhub/internal/app/portal/entity"
	"communityhub/internal/app/portal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AnalyticsService записывает события клиентской аналитики
// и проверки доступности
type AnalyticsService struct {
	analyticsRepo   repository.AnalyticsRepository
	statusCheckRepo repository.StatusCheckRepository
	validator       *validator.Validate
}

// NewAnalyticsService создает новый сервис аналитики с внедрением зависимостей
func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	statusCheckRepo repository.StatusCheckRepository,
) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo:   analyticsRepo,
		statusCheckRepo: statusCheckRepo,
		validator:       newValidator(),
	}
}

// TrackEvent записывает событие аналитики
func (s *AnalyticsService) TrackEvent(ctx context.Context, req *entity.TrackEventRequest) (*entity.AnalyticsEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	event := &entity.AnalyticsEvent{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		PagePath:  req.PagePath,
		Action:    req.Action,
		UserAgent: req.UserAgent,
		SessionID: req.SessionID,
		Timestamp: time.Now().UTC(),
	}

	if err := s.analyticsRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to track event: %w", err)
	}

	return event, nil
}

// CreateStatusCheck записывает проверку доступности от клиента
func (s *AnalyticsService) CreateStatusCheck(ctx context.Context, req *entity.CreateStatusCheckRequest) (*entity.StatusCheck, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	check := &entity.StatusCheck{
		ID:         uuid.New().String(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.statusCheckRepo.Create(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to create status check: %w", err)
	}

	return check, nil
}

// ListStatusChecks получает последние проверки доступности
func (s *AnalyticsService) ListStatusChecks(ctx context.Context) ([]entity.StatusCheck, error) {
	checks, err := s.statusCheckRepo.GetAll(ctx, 1000)
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}

	return checks, nil
}
