package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"communityhub/internal/app/portal/entity"
	"communityhub/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type suggestionRepository struct {
	collection *mongo.Collection
}

// NewSuggestionRepository создает новый репозиторий предложений
// Автоматически создает индексы по category и status для фильтрации списков
func NewSuggestionRepository(db *mongo.Database) SuggestionRepository {
	collection := db.Collection("suggestions")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for name, key := range map[string]string{
		"category_idx": "category",
		"status_idx":   "status",
	} {
		indexModel := mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetName(name),
		}
		if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
			fmt.Printf("Warning: failed to create index %s on suggestions: %v\n", name, err)
		}
	}

	return &suggestionRepository{
		collection: collection,
	}
}

// Create создает новое предложение в MongoDB
func (r *suggestionRepository) Create(ctx context.Context, suggestion *entity.Suggestion) error {
	timer := metrics.NewMongoTimer("portal", metrics.MongoOpInsert, "suggestions")
	defer timer.ObserveDuration()

	if _, err := r.collection.InsertOne(ctx, suggestion); err != nil {
		metrics.RecordMongoError("portal", metrics.MongoOpInsert)
		return fmt.Errorf("failed to create suggestion: %w", err)
	}
	return nil
}

// GetByID получает предложение по ID
func (r *suggestionRepository) GetByID(ctx context.Context, id string) (*entity.Suggestion, error) {
	var suggestion entity.Suggestion
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&suggestion)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}

	return &suggestion, nil
}

// List получает предложения по необязательным фильтрам-равенствам
// Порядок выдачи - порядок вставки, сортировка не применяется
func (r *suggestionRepository) List(ctx context.Context, filter entity.ListFilter) ([]entity.Suggestion, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}

	opts := options.Find()
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	timer := metrics.NewMongoTimer("portal", metrics.MongoOpFind, "suggestions")
	defer timer.ObserveDuration()

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		metrics.RecordMongoError("portal", metrics.MongoOpFind)
		return nil, fmt.Errorf("failed to find suggestions: %w", err)
	}
	defer cursor.Close(ctx)

	suggestions := make([]entity.Suggestion, 0)
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}

	return suggestions, nil
}

// GetAll получает все предложения для агрегации статистики
func (r *suggestionRepository) GetAll(ctx context.Context) ([]entity.Suggestion, error) {
	return r.List(ctx, entity.ListFilter{})
}

// GetRecent получает последние предложения для админ-панели
func (r *suggestionRepository) GetRecent(ctx context.Context, limit int64) ([]entity.Suggestion, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	timer := metrics.NewMongoTimer("portal", metrics.MongoOpFind, "suggestions")
	defer timer.ObserveDuration()

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		metrics.RecordMongoError("portal", metrics.MongoOpFind)
		return nil, fmt.Errorf("failed to find recent suggestions: %w", err)
	}
	defer cursor.Close(ctx)

	suggestions := make([]entity.Suggestion, 0)
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}

	return suggestions, nil
}

// UpdateTriage обновляет только поля триажа предложения
func (r *suggestionRepository) UpdateTriage(ctx context.Context, suggestion *entity.Suggestion) error {
	suggestion.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": suggestion.ID}
	update := bson.M{
		"$set": bson.M{
			"status":         suggestion.Status,
			"priority":       suggestion.Priority,
			"admin_notes":    suggestion.AdminNotes,
			"admin_response": suggestion.AdminResponse,
			"updated_at":     suggestion.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update suggestion: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// IncrementVotes атомарно увеличивает счётчик голосов на 1
// FindOneAndUpdate с $inc выполняется на стороне MongoDB, конкурентные
// голоса не теряются
func (r *suggestionRepository) IncrementVotes(ctx context.Context, id string) (*entity.Suggestion, error) {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$inc": bson.M{"votes": 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	timer := metrics.NewMongoTimer("portal", metrics.MongoOpUpdate, "suggestions")
	defer timer.ObserveDuration()

	var suggestion entity.Suggestion
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&suggestion)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		metrics.RecordMongoError("portal", metrics.MongoOpUpdate)
		return nil, fmt.Errorf("failed to increment votes: %w", err)
	}

	return &suggestion, nil
}

// Count возвращает общее количество предложений
func (r *suggestionRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count suggestions: %w", err)
	}
	return count, nil
}

// CountByStatus возвращает количество предложений с указанным статусом
func (r *suggestionRepository) CountByStatus(ctx context.Context, status entity.RecordStatus) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count suggestions by status: %w", err)
	}
	return count, nil
}

// CountByPriorityIn возвращает количество предложений с приоритетом из списка
func (r *suggestionRepository) CountByPriorityIn(ctx context.Context, priorities []entity.Priority) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"priority": bson.M{"$in": priorities}})
	if err != nil {
		return 0, fmt.Errorf("failed to count suggestions by priority: %w", err)
	}
	return count, nil
}
