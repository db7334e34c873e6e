package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parcels/cmd"
	httpin "parcels/internal/adapters/in/http"
	"parcels/internal/adapters/out/postgres/quoterepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultQuoteTTL         = 15 * time.Minute
	defaultDistanceCacheTTL = 24 * time.Hour
	shutdownTimeout         = 10 * time.Second
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustGormOpen(configs)
	rdb := newRedisClient(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, rdb, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e := newWebServer(app, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server forced to shut down", "error", err)
	}
	jobManager.StopAll()
	if rdb != nil {
		_ = rdb.Close()
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:            envVariable("HTTP_PORT", "8080"),
		DBHost:              envVariable("DB_HOST", "localhost"),
		DBPort:              envVariable("DB_PORT", "5432"),
		DBUser:              envVariable("DB_USER", ""),
		DBPassword:          envVariable("DB_PASSWORD", ""),
		DBName:              envVariable("DB_NAME", ""),
		DBSslMode:           envVariable("DB_SSLMODE", "disable"),
		RedisAddr:           envVariable("REDIS_ADDR", ""),
		RedisPassword:       envVariable("REDIS_PASSWORD", ""),
		DistanceCacheTTL:    durationVariable("DISTANCE_CACHE_TTL", defaultDistanceCacheTTL),
		QuoteTTL:            durationVariable("QUOTE_TTL", defaultQuoteTTL),
		QuoteExpirySchedule: envVariable("QUOTE_EXPIRY_SCHEDULE", ""),
	}
	return config
}

func envVariable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := envVariable(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Fatalf("%s must be a positive duration such as 15m, got %q", key, raw)
	}
	return d
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	sqlDB, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&quoterepo.QuoteDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func newRedisClient(configs cmd.Config, logger *slog.Logger) *redis.Client {
	if configs.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, distance cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable, distance cache will fall through", "addr", configs.RedisAddr, "error", err)
	}

	return rdb
}

func newWebServer(app cmd.CompositionRoot, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if err := httpin.RegisterRoutes(e, app.CreateServer()); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	return e
}
