package repository

import (
	"context"
	"fmt"

	"communityhub/internal/app/portal/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type statusCheckRepository struct {
	collection *mongo.Collection
}

// NewStatusCheckRepository создает новый репозиторий проверок доступности
func NewStatusCheckRepository(db *mongo.Database) StatusCheckRepository {
	return &statusCheckRepository{
		collection: db.Collection("status_checks"),
	}
}

// Create записывает проверку доступности в MongoDB
func (r *statusCheckRepository) Create(ctx context.Context, check *entity.StatusCheck) error {
	if _, err := r.collection.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("failed to create status check: %w", err)
	}
	return nil
}

// GetAll получает проверки доступности с ограничением количества
func (r *statusCheckRepository) GetAll(ctx context.Context, limit int64) ([]entity.StatusCheck, error) {
	opts := options.Find().SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find status checks: %w", err)
	}
	defer cursor.Close(ctx)

	checks := make([]entity.StatusCheck, 0)
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("failed to decode status checks: %w", err)
	}

	return checks, nil
}
