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

type feedbackRepository struct {
	collection *mongo.Collection
}

// NewFeedbackRepository создает новый репозиторий отзывов
// Автоматически создает индексы по category и status для фильтрации списков
func NewFeedbackRepository(db *mongo.Database) FeedbackRepository {
	collection := db.Collection("feedback")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Индексы для фильтров списка; ошибки не прерывают работу -
	// индексы могут уже существовать
	for name, key := range map[string]string{
		"category_idx": "category",
		"status_idx":   "status",
	} {
		indexModel := mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetName(name),
		}
		if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
			fmt.Printf("Warning: failed to create index %s on feedback: %v\n", name, err)
		}
	}

	return &feedbackRepository{
		collection: collection,
	}
}

// Create создает новый отзыв в MongoDB
func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	timer := metrics.NewMongoTimer("portal", metrics.MongoOpInsert, "feedback")
	defer timer.ObserveDuration()

	if _, err := r.collection.InsertOne(ctx, feedback); err != nil {
		metrics.RecordMongoError("portal", metrics.MongoOpInsert)
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// GetByID получает отзыв по ID
func (r *feedbackRepository) GetByID(ctx context.Context, id string) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&feedback)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}

	return &feedback, nil
}

// List получает отзывы по необязательным фильтрам-равенствам
// Порядок выдачи - порядок вставки, сортировка не применяется
func (r *feedbackRepository) List(ctx context.Context, filter entity.ListFilter) ([]entity.Feedback, error) {
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
	if filter.Type != "" {
		query["type"] = filter.Type
	}

	opts := options.Find()
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	timer := metrics.NewMongoTimer("portal", metrics.MongoOpFind, "feedback")
	defer timer.ObserveDuration()

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		metrics.RecordMongoError("portal", metrics.MongoOpFind)
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}
	defer cursor.Close(ctx)

	feedback := make([]entity.Feedback, 0)
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}

	return feedback, nil
}

// GetAll получает все отзывы для агрегации статистики
func (r *feedbackRepository) GetAll(ctx context.Context) ([]entity.Feedback, error) {
	return r.List(ctx, entity.ListFilter{})
}

// GetRecent получает последние отзывы для админ-панели
func (r *feedbackRepository) GetRecent(ctx context.Context, limit int64) ([]entity.Feedback, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	timer := metrics.NewMongoTimer("portal", metrics.MongoOpFind, "feedback")
	defer timer.ObserveDuration()

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		metrics.RecordMongoError("portal", metrics.MongoOpFind)
		return nil, fmt.Errorf("failed to find recent feedback: %w", err)
	}
	defer cursor.Close(ctx)

	feedback := make([]entity.Feedback, 0)
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}

	return feedback, nil
}

// UpdateTriage обновляет только поля триажа отзыва
// Пользовательский контент (title, description, rating) не затрагивается
func (r *feedbackRepository) UpdateTriage(ctx context.Context, feedback *entity.Feedback) error {
	feedback.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": feedback.ID}
	update := bson.M{
		"$set": bson.M{
			"status":         feedback.Status,
			"priority":       feedback.Priority,
			"admin_notes":    feedback.AdminNotes,
			"admin_response": feedback.AdminResponse,
			"updated_at":     feedback.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// Count возвращает общее количество отзывов
func (r *feedbackRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return count, nil
}

// CountByStatus возвращает количество отзывов с указанным статусом
func (r *feedbackRepository) CountByStatus(ctx context.Context, status entity.RecordStatus) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count feedback by status: %w", err)
	}
	return count, nil
}

// CountByPriorityIn возвращает количество отзывов с приоритетом из списка
func (r *feedbackRepository) CountByPriorityIn(ctx context.Context, priorities []entity.Priority) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"priority": bson.M{"$in": priorities}})
	if err != nil {
		return 0, fmt.Errorf("failed to count feedback by priority: %w", err)
	}
	return count, nil
}
