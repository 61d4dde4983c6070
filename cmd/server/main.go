// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	appConfig "github.com/dailygator/dailygator/internal/config"
	"github.com/dailygator/dailygator/internal/database"
	"github.com/dailygator/dailygator/internal/database/migrate"
	"github.com/dailygator/dailygator/internal/database/pool"
	"github.com/dailygator/dailygator/internal/health"
	"github.com/dailygator/dailygator/internal/middleware"
	playerRouter "github.com/dailygator/dailygator/internal/player/router"
	"github.com/dailygator/dailygator/internal/scheduler"
	statsCache "github.com/dailygator/dailygator/internal/statistics/cache"
	statsRouter "github.com/dailygator/dailygator/internal/statistics/router"
	teamRouter "github.com/dailygator/dailygator/internal/team/router"
	tournamentRouter "github.com/dailygator/dailygator/internal/tournament/router"
	"github.com/dailygator/dailygator/pkg/logger"
	"github.com/dailygator/dailygator/pkg/retry"
)

func main() {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The database may still be starting up; retry with backoff.
	db, err := retry.DoWithResult(ctx, retry.PostgresConfig(), func() (*gorm.DB, error) {
		return database.New()
	})
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}

	if err := pool.Setup(db, pool.LoadConfigFromEnv()); err != nil {
		zapLogger.Fatalw("failed to configure connection pool", "error", err)
	}

	if err := migrate.Up(db); err != nil {
		zapLogger.Fatalw("failed to apply migrations", "error", err)
	}

	r := gin.New()
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logger(zapLogger))

	healthHandler := health.New(db, zapLogger)
	r.GET("/health", healthHandler.Check)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	leaderboardCache := statsCache.New()

	statsService := statsRouter.RegisterRoutes(r, db, leaderboardCache, zapLogger)
	tournamentService := tournamentRouter.RegisterRoutes(r, db, rng, leaderboardCache, zapLogger)
	teamRouter.RegisterRoutes(r, db, statsService, zapLogger)
	playerRouter.RegisterRoutes(r, db, zapLogger)

	if cfg.SchedulerEnabled {
		daily := scheduler.New(tournamentService, zapLogger)
		go daily.Run(ctx)
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Infow("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	zapLogger.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Errorw("graceful shutdown failed", "error", err)
	}
}
