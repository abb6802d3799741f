package repository

import (
	"context"
	"fmt"

	"communityhub/internal/app/portal/entity"

	"go.mongodb.org/mongo-driver/mongo"
)

type analyticsRepository struct {
	collection *mongo.Collection
}

// NewAnalyticsRepository создает новый репозиторий событий аналитики
// События только вставляются, индексы не нужны
func NewAnalyticsRepository(db *mongo.Database) AnalyticsRepository {
	return &analyticsRepository{
		collection: db.Collection("analytics"),
	}
}

// Create записывает событие аналитики в MongoDB
func (r *analyticsRepository) Create(ctx context.Context, event *entity.AnalyticsEvent) error {
	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to create analytics event: %w", err)
	}
	return nil
}
