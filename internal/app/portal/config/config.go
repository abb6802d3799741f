package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config содержит все настройки портала обратной связи
// Включает конфигурацию для HTTP сервера, MongoDB, Redis, Kafka и cron
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Stats   StatsConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Host string // Адрес хоста (по умолчанию 0.0.0.0)
	Port string // Порт сервера (по умолчанию 8001)
}

// MongoDBConfig - настройки подключения к MongoDB
// Используется для хранения отзывов, предложений и событий аналитики
type MongoDBConfig struct {
	URI      string // URI подключения к MongoDB
	Database string // Имя базы данных
}

// RedisConfig - настройки подключения к Redis
// Используется для кеширования статистики по категориям
type RedisConfig struct {
	Host     string // Хост Redis
	Port     string // Порт Redis
	Password string // Пароль Redis (опционально)
	DB       int    // Номер БД Redis (0-15)
}

// KafkaConfig - настройки Kafka для отправки событий
// События отправляются при создании записей и голосовании
type KafkaConfig struct {
	Brokers []string // Список брокеров Kafka (формат: host:port)
	Topic   string   // Топик для событий портала
}

// StatsConfig - настройки прогрева кеша статистики
type StatsConfig struct {
	WarmupSchedule string // Cron-расписание пересчёта статистики
}

// Load загружает конфигурацию из переменных окружения
// Возвращает ошибку, если не удалось распарсить значения
func Load() (*Config, error) {
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8001"),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGO_URL", "mongodb://localhost:27017"),
			Database: getEnv("DB_NAME", "community_portal"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:   getEnv("KAFKA_TOPIC", "portal_events"),
		},
		Stats: StatsConfig{
			WarmupSchedule: getEnv("STATS_WARMUP_SCHEDULE", "*/5 * * * *"),
		},
	}, nil
}

// Address возвращает адрес сервера в формате host:port для HTTP сервера
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// Address возвращает адрес Redis в формате host:port для подключения
func (c *RedisConfig) Address() string {
	return c.Host + ":" + c.Port
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
