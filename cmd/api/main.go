package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/memorywall/backend/api/routes"
	internalauth "github.com/memorywall/backend/internal/auth"
	"github.com/memorywall/backend/internal/memories"
	"github.com/memorywall/backend/internal/users"
	"github.com/memorywall/backend/pkg/auth/session"
	"github.com/memorywall/backend/pkg/config"
	"github.com/memorywall/backend/pkg/db"
	"github.com/memorywall/backend/pkg/logger"
	"github.com/memorywall/backend/pkg/metrics"
	"github.com/memorywall/backend/pkg/migrate"
	"github.com/memorywall/backend/pkg/redis"
	"github.com/memorywall/backend/pkg/storage/gcs"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	gcsClient, err := gcs.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap gcs", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	pipelineMetrics := metrics.NewPipelineMetrics(prometheus.DefaultRegisterer)

	authService := internalauth.NewService(
		users.NewRepository(dbClient),
		sessionManager,
		cfg.JWT,
		logg,
	)

	memoryService := memories.NewService(memories.Options{
		Repo:  memories.NewRepository(dbClient),
		Blobs: gcsClient,
		Fallback: memories.NewFallbackSupplier(
			gcsClient,
			cfg.Fallback.PlaceholderPrefix,
			cfg.Fallback.Slots,
			logg,
		),
		Metrics:       pipelineMetrics,
		Logger:        logg,
		FallbackSlots: cfg.Fallback.Slots,
		MaxUploadMB:   cfg.Media.MaxUploadMB,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, gcsClient, sessionManager, authService, memoryService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
