package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shenikar/mission_location_service/docs"
	"github.com/shenikar/mission_location_service/internal/config"
	"github.com/shenikar/mission_location_service/internal/consumer"
	"github.com/shenikar/mission_location_service/internal/events"
	v1 "github.com/shenikar/mission_location_service/internal/handler/http/v1"
	"github.com/shenikar/mission_location_service/internal/repository"
	"github.com/shenikar/mission_location_service/internal/service"
	"github.com/shenikar/mission_location_service/internal/webhook"
	"github.com/shenikar/mission_location_service/pkg/kafka"
	"github.com/shenikar/mission_location_service/pkg/logger"
	"github.com/shenikar/mission_location_service/pkg/postgres"
	redisclient "github.com/shenikar/mission_location_service/pkg/redis"
)

// @title Mission Location Service API
// @version 1.0
// @description Consumes responder location updates and advances rescue missions.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checks := make(map[string]v1.HealthCheck)

	var redisClient *goredis.Client
	if cfg.MissionStore == config.MissionStoreRedis || cfg.EventSink == config.EventSinkRedis {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	var repo service.MissionRepository
	switch cfg.MissionStore {
	case config.MissionStorePostgres:
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		var dbpool *pgxpool.Pool
		dbpool, err = postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")
		checks["postgres"] = dbpool.Ping
		repo = repository.NewPostgresMissionRepository(dbpool)
	default:
		repo = repository.NewRedisMissionRepository(redisClient, cfg.MissionTTL)
	}

	kafkaClient, err := kafka.ConnectWithRetry(&kafka.ClientConfig{
		Brokers:        cfg.KafkaBrokers,
		ClientID:       cfg.KafkaClientID,
		MaxElapsedTime: cfg.KafkaConnectMaxElapsed,
	}, log)
	if err != nil {
		log.Fatalf("Failed to connect to Kafka: %v", err)
	}
	defer kafkaClient.Close()
	log.Info("Successfully connected to Kafka")
	checks["kafka"] = func(context.Context) error {
		_, err := kafkaClient.Controller()
		return err
	}

	var sink service.EventSink
	var workerDone <-chan struct{}
	switch cfg.EventSink {
	case config.EventSinkRedis:
		sink = webhook.NewRedisEventPublisher(redisClient, cfg.EventSource)
		workerDone = webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	default:
		producer, err := sarama.NewSyncProducerFromClient(kafkaClient)
		if err != nil {
			log.Fatalf("Failed to create Kafka producer: %v", err)
		}
		defer producer.Close()
		sink = events.NewKafkaEventSink(producer, cfg.MissionEventTopic, cfg.EventSource, log)
	}

	pipeline := service.NewUpdatePipeline(service.NewEnvelopeValidator(log), repo, sink, log)

	group, err := sarama.NewConsumerGroupFromClient(cfg.KafkaGroupID, kafkaClient)
	if err != nil {
		log.Fatalf("Failed to create Kafka consumer group: %v", err)
	}
	locationConsumer := consumer.NewKafkaConsumer(group, cfg.LocationUpdateTopic, pipeline, log)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := locationConsumer.Run(ctx); err != nil {
			log.WithError(err).Error("Location update consumer stopped")
		}
	}()

	handler := v1.NewHandler(pipeline, log, cfg, checks)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// stop consuming before the producer and stores are closed by the defers
	cancel()
	if err := locationConsumer.Close(); err != nil {
		log.WithError(err).Error("Failed to close consumer group")
	}
	wg.Wait()
	if workerDone != nil {
		<-workerDone
	}

	log.Info("Service gracefully stopped")
}
