package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"communityhub/internal/app/portal/config"
	"communityhub/internal/app/portal/handler"
	"communityhub/internal/app/portal/infrastructure/messaging"
	"communityhub/internal/app/portal/processor"
	"communityhub/internal/app/portal/repository"
	"communityhub/internal/app/portal/service"
	"communityhub/internal/app/portal/util"
	"communityhub/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger.Init("portal", logLevel)

	logstashAddr := os.Getenv("LOGSTASH_ADDR")
	if logstashAddr != "" {
		if err := logger.InitLogstash(logstashAddr, "portal", logLevel); err != nil {
			logger.Warn().Err(err).Msg("Failed to connect to Logstash, using stdout only")
		} else {
			logger.Info().Str("logstash_addr", logstashAddr).Msg("Connected to Logstash")
		}
	}

	mongoClient, err := connectMongoDB(cfg.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()
	logger.Info().
		Str("database", cfg.MongoDB.Database).
		Msg("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB.Database)

	redisClient, err := util.NewRedisClient(cfg.Redis.Address(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()
	logger.Info().Str("addr", cfg.Redis.Address()).Msg("Connected to Redis")

	kafkaProducer := messaging.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer kafkaProducer.Close()
	logger.Info().
		Str("topic", cfg.Kafka.Topic).
		Msg("Initialized Kafka producer")

	feedbackRepo := repository.NewFeedbackRepository(db)
	suggestionRepo := repository.NewSuggestionRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	statusCheckRepo := repository.NewStatusCheckRepository(db)

	submissionService := service.NewSubmissionService(feedbackRepo, suggestionRepo, kafkaProducer, redisClient)
	triageService := service.NewTriageService(feedbackRepo, suggestionRepo, kafkaProducer, redisClient)
	statsService := service.NewStatsService(feedbackRepo, suggestionRepo, redisClient)
	analyticsService := service.NewAnalyticsService(analyticsRepo, statusCheckRepo)

	warmerCtx, warmerCancel := context.WithCancel(context.Background())
	defer warmerCancel()

	statsWarmer := processor.NewStatsWarmer(statsService)
	if err := statsWarmer.Start(warmerCtx, cfg.Stats.WarmupSchedule); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start stats warmer")
	}
	defer statsWarmer.Stop()

	feedbackHandler := handler.NewFeedbackHandler(submissionService, triageService)
	suggestionHandler := handler.NewSuggestionHandler(submissionService, triageService)
	statsHandler := handler.NewStatsHandler(statsService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	router := handler.SetupRoutes(feedbackHandler, suggestionHandler, statsHandler, analyticsHandler)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("Starting Community Feedback Portal")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down Community Feedback Portal...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Community Feedback Portal stopped gracefully")
}

func connectMongoDB(cfg config.MongoDBConfig) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)

	var client *mongo.Client
	var err error

	for i := 0; i < 10; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err = mongo.Connect(ctx, clientOptions)
		if err == nil {
			pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer pingCancel()

			if err = client.Ping(pingCtx, nil); err == nil {
				return client, nil
			}
		}

		logger.Warn().
			Int("attempt", i+1).
			Err(err).
			Msg("Failed to connect to MongoDB, retrying...")
		time.Sleep(3 * time.Second)
	}

	return nil, err
}
