package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"ordering/cmd"
	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/jobs"
	"ordering/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "order_service")
	m := metrics.New("order_service")

	gormDB := mustGormOpen(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger, m)

	publisher, err := app.CreateEventPublisher()
	if err != nil {
		log.Fatalf("Failed to create event publisher: %v", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	}()

	jobManager := app.CreateJobManager(publisher)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	var wg sync.WaitGroup
	startConsumers(ctx, &wg, app, logger)
	defer wg.Wait()

	api, err := httpin.LoadAPI(ctx)
	if err != nil {
		log.Fatalf("Failed to load OpenAPI document: %v", err)
	}
	startWebServer(ctx, app.CreateHTTPServer(api), configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		HTTPPort:   getEnv("HTTP_PORT", "8082"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "username"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "ordering"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		KafkaHost:          getEnv("KAFKA_HOST", "localhost:9092"),
		KafkaConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "ordering-service"),

		KafkaPaymentRequestTopic:             getEnv("KAFKA_PAYMENT_REQUEST_TOPIC", "payment-request"),
		KafkaPaymentResponseTopic:            getEnv("KAFKA_PAYMENT_RESPONSE_TOPIC", "payment-response"),
		KafkaRestaurantApprovalRequestTopic:  getEnv("KAFKA_RESTAURANT_APPROVAL_REQUEST_TOPIC", "restaurant-approval-request"),
		KafkaRestaurantApprovalResponseTopic: getEnv("KAFKA_RESTAURANT_APPROVAL_RESPONSE_TOPIC", "restaurant-approval-response"),

		OutboxBatchSize:       getEnvInt("OUTBOX_BATCH_SIZE", 100),
		OutboxRelaySchedule:   getEnv("OUTBOX_RELAY_SCHEDULE", jobs.EverySecond),
		OutboxCleanupSchedule: getEnv("OUTBOX_CLEANUP_SCHEDULE", "0 0 * * * *"),
		OutboxRetention:       getEnvDuration("OUTBOX_RETENTION", 24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return d
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}

	if err = gormDB.AutoMigrate(postgres.Models()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

func startConsumers(ctx context.Context, wg *sync.WaitGroup, app cmd.CompositionRoot, logger *slog.Logger) {
	for _, consumer := range []interface {
		Run(ctx context.Context)
		Close() error
	}{
		app.CreatePaymentResponseConsumer(),
		app.CreateRestaurantApprovalResponseConsumer(),
	} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			consumer.Run(ctx)
			if err := consumer.Close(); err != nil {
				logger.Error("Failed to close kafka consumer", "error", err)
			}
		}()
	}
}

func startWebServer(ctx context.Context, server *httpin.Server, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	server.Register(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down http server", "error", err)
	}
}
