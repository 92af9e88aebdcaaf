package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pickup/cmd"
	"pickup/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const maxOpenConns = 10

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	db, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rearmed, err := app.RearmExpiries(ctx)
	if err != nil {
		log.Fatalf("Error re-arming order expiries: %v", err)
	}
	logger.InfoContext(ctx, "Order expiries re-armed", "count", rearmed)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	startWebServer(ctx, app, jobManager, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		DBHost:                  getEnv("DB_HOST", "localhost"),
		DBPort:                  getEnv("DB_PORT", "5432"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               getEnv("DB_SSLMODE", "disable"),
		TimeZone:                getEnv("TZ_NAME", "Asia/Jakarta"),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		KafkaHost:               os.Getenv("KAFKA_HOST"),
		KafkaOrderResolvedTopic: getEnv("KAFKA_ORDER_RESOLVED_TOPIC", "orders.resolved"),
		OverdueSweepCron:        os.Getenv("OVERDUE_SWEEP_CRON"),
		ShutdownTimeout:         10 * time.Second,
	}

	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid SHUTDOWN_TIMEOUT %q: %v", raw, err)
		}
		config.ShutdownTimeout = timeout
	}
	if config.JWTSecret == "" {
		log.Fatalf("JWT_SECRET is required")
	}

	return config
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxOpenConns)

	return db, nil
}

func startWebServer(
	ctx context.Context,
	app *cmd.CompositionRoot,
	jobManager interface{ StopAll(context.Context) error },
	config cmd.Config,
	logger *slog.Logger,
) {
	e := app.CreateRouter()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()
	logger.InfoContext(ctx, "HTTP server started", "port", config.HTTPPort)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(shutdownCtx, "HTTP server shutdown failed", "error", err)
	}
	if err := jobManager.StopAll(shutdownCtx); err != nil {
		logger.ErrorContext(shutdownCtx, "Jobs shutdown failed", "error", err)
	}
	if err := app.Close(); err != nil {
		logger.ErrorContext(shutdownCtx, "Closing outbound connections failed", "error", err)
	}
	logger.InfoContext(shutdownCtx, "Service stopped")
}
