package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"communityhub/internal/app/portal/entity"
	"communityhub/internal/app/portal/repository"
)

// statsCacheTTL ограничивает жизнь кеша статистики; кеш также
// сбрасывается явно при каждой записи
const statsCacheTTL = 5 * time.Minute

// StatsService вычисляет агрегированную статистику по категориям
// и сводку для админ-панели полным сканированием хранилища
type StatsService struct {
	feedbackRepo   repository.FeedbackRepository
	suggestionRepo repository.SuggestionRepository
	statsCache     StatsCache
}

// NewStatsService создает новый сервис статистики с внедрением зависимостей
func NewStatsService(
	feedbackRepo repository.FeedbackRepository,
	suggestionRepo repository.SuggestionRepository,
	statsCache StatsCache,
) *StatsService {
	return &StatsService{
		feedbackRepo:   feedbackRepo,
		suggestionRepo: suggestionRepo,
		statsCache:     statsCache,
	}
}

// CategoryStats возвращает статистику по каждой определённой категории
// Категории без записей присутствуют в ответе со счётчиками 0 и
// average_rating = null. Результат кешируется в Redis
func (s *StatsService) CategoryStats(ctx context.Context) ([]entity.CategoryStat, error) {
	// Пытаемся получить из кеша Redis
	stats, err := s.statsCache.GetCategoryStats(ctx)
	if err == nil && stats != nil {
		// Cache hit - возвращаем данные из кеша
		return stats, nil
	}

	// Cache miss - пересчитываем сканированием обеих коллекций
	stats, err = s.computeCategoryStats(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.statsCache.SetCategoryStats(ctx, stats, statsCacheTTL); err != nil {
		// Данные посчитаны, проблемы с кешем не критичны
		fmt.Printf("failed to cache category stats: %v\n", err)
	}

	return stats, nil
}

// RefreshCategoryStatsCache пересчитывает статистику и обновляет кеш
// Вызывается cron-планировщиком для прогрева кеша
func (s *StatsService) RefreshCategoryStatsCache(ctx context.Context) error {
	stats, err := s.computeCategoryStats(ctx)
	if err != nil {
		return err
	}

	if err := s.statsCache.SetCategoryStats(ctx, stats, statsCacheTTL); err != nil {
		return fmt.Errorf("failed to refresh category stats cache: %w", err)
	}

	return nil
}

// computeCategoryStats сканирует обе коллекции и считает количество записей
// и среднюю оценку по каждой категории
// Средняя оценка округляется до 2 знаков (half away from zero)
func (s *StatsService) computeCategoryStats(ctx context.Context) ([]entity.CategoryStat, error) {
	feedback, err := s.feedbackRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan feedback: %w", err)
	}

	suggestions, err := s.suggestionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan suggestions: %w", err)
	}

	type accumulator struct {
		feedbackCount   int
		suggestionCount int
		ratingSum       int
		ratingCount     int
	}
	byCategory := make(map[entity.FeedbackCategory]*accumulator, len(entity.AllCategories()))
	for _, category := range entity.AllCategories() {
		byCategory[category] = &accumulator{}
	}

	for _, f := range feedback {
		acc, ok := byCategory[f.Category]
		if !ok {
			continue
		}
		acc.feedbackCount++
		acc.ratingSum += f.Rating
		acc.ratingCount++
	}

	for _, sg := range suggestions {
		acc, ok := byCategory[sg.Category]
		if !ok {
			continue
		}
		acc.suggestionCount++
		acc.ratingSum += sg.Rating
		acc.ratingCount++
	}

	stats := make([]entity.CategoryStat, 0, len(entity.AllCategories()))
	for _, category := range entity.AllCategories() {
		acc := byCategory[category]
		stat := entity.CategoryStat{
			Category:        category,
			FeedbackCount:   acc.feedbackCount,
			SuggestionCount: acc.suggestionCount,
		}
		if acc.ratingCount > 0 {
			average := math.Round(float64(acc.ratingSum)/float64(acc.ratingCount)*100) / 100
			stat.AverageRating = &average
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

// Dashboard собирает сводку для админ-панели: счётчики и последние записи
// Все значения считаются по текущему состоянию хранилища, без кеша
func (s *StatsService) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	highPriorities := []entity.Priority{entity.PriorityHigh, entity.PriorityUrgent}

	totalFeedback, err := s.feedbackRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count feedback: %w", err)
	}

	totalSuggestions, err := s.suggestionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count suggestions: %w", err)
	}

	pendingFeedback, err := s.feedbackRepo.CountByStatus(ctx, entity.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending feedback: %w", err)
	}

	pendingSuggestions, err := s.suggestionRepo.CountByStatus(ctx, entity.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending suggestions: %w", err)
	}

	highPriorityFeedback, err := s.feedbackRepo.CountByPriorityIn(ctx, highPriorities)
	if err != nil {
		return nil, fmt.Errorf("failed to count high priority feedback: %w", err)
	}

	highPrioritySuggestions, err := s.suggestionRepo.CountByPriorityIn(ctx, highPriorities)
	if err != nil {
		return nil, fmt.Errorf("failed to count high priority suggestions: %w", err)
	}

	recentFeedback, err := s.feedbackRepo.GetRecent(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent feedback: %w", err)
	}

	recentSuggestions, err := s.suggestionRepo.GetRecent(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent suggestions: %w", err)
	}

	return &entity.Dashboard{
		Overview: entity.DashboardOverview{
			TotalFeedback:      totalFeedback,
			TotalSuggestions:   totalSuggestions,
			PendingFeedback:    pendingFeedback,
			PendingSuggestions: pendingSuggestions,
			HighPriorityItems:  highPriorityFeedback + highPrioritySuggestions,
		},
		RecentFeedback:    recentFeedback,
		RecentSuggestions: recentSuggestions,
	}, nil
}
