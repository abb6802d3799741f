package util

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"communityhub/internal/app/portal/entity"
	"communityhub/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const categoryStatsCacheKey = "stats:categories"

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(addr, password string, db int) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

// NewRedisClientFromExisting оборачивает уже созданный клиент
// Используется в тестах с miniredis
func NewRedisClientFromExisting(client *redis.Client) *RedisClient {
	return &RedisClient{client: client}
}

func (r *RedisClient) SetCategoryStats(ctx context.Context, stats []entity.CategoryStat, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal category stats: %w", err)
	}

	if err := r.client.Set(ctx, categoryStatsCacheKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set category stats in cache: %w", err)
	}

	return nil
}

func (r *RedisClient) GetCategoryStats(ctx context.Context) ([]entity.CategoryStat, error) {
	data, err := r.client.Get(ctx, categoryStatsCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.RecordCacheMiss("portal", "stats")
			return nil, nil
		}
		metrics.RecordRedisError("portal", "get")
		return nil, fmt.Errorf("failed to get category stats from cache: %w", err)
	}
	metrics.RecordCacheHit("portal", "stats")

	var stats []entity.CategoryStat
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal category stats: %w", err)
	}

	return stats, nil
}

func (r *RedisClient) DeleteCategoryStats(ctx context.Context) error {
	if err := r.client.Del(ctx, categoryStatsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to delete category stats from cache: %w", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
