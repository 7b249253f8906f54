package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/jobbot-gateway/internal/config"
	"github.com/maxviazov/jobbot-gateway/internal/handler"
	"github.com/maxviazov/jobbot-gateway/internal/logger"
	"github.com/maxviazov/jobbot-gateway/internal/repository"
	"github.com/maxviazov/jobbot-gateway/internal/repository/postgres"
	"github.com/maxviazov/jobbot-gateway/internal/repository/redis"
	"github.com/maxviazov/jobbot-gateway/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load application config
	path := os.Getenv("APP_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("config loading failed: %w", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	appLogger.Info().Str("env", cfg.App.Env).Msg("✅ Logger initialized successfully")

	if cfg.Postgres.AutoMigrate {
		if err := repository.Migrate(ctx, repository.DSN(cfg.Postgres), appLogger); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}

	db, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		return fmt.Errorf("postgres connection failed: %w", err)
	}
	defer db.Close()

	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	defer rdb.Close()

	pool := db.Pool()
	users := postgres.NewUserRepository(pool)
	vacancies := postgres.NewVacancyRepository(pool)
	applications := postgres.NewApplicationRepository(pool)
	snapshots := redis.NewSnapshotRepository(rdb)

	listings := service.NewListingService(users, vacancies, applications, snapshots, cfg.Pagination, appLogger)
	svc := handler.Services{
		Users:        service.NewUserService(users, appLogger),
		Listings:     listings,
		Applications: service.NewApplicationService(users, vacancies, applications, postgres.NewTxManager(pool), appLogger),
		Callbacks:    service.NewCallbackService(listings, appLogger),
	}

	if cfg.App.Env == "prod" || cfg.App.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine, map[string]handler.Pinger{
		"postgres": postgres.NewPinger(pool),
		"redis":    redis.NewPinger(rdb),
	}, svc, cfg.App.InternalToken, appLogger)
	if cfg.App.InternalToken == "" {
		appLogger.Warn().Msg("internal token is empty, API is unauthenticated")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Str("addr", srv.Addr).Str("version", cfg.App.Version).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	appLogger.Info().Msg("👋 Service stopped")
	return nil
}
