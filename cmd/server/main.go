// Package main is the entry point for the application.
// It loads configuration, connects PostgreSQL and Redis, wires the routes
// and serves until interrupted.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quicksend/internal/config"
	"quicksend/internal/logging"
	"quicksend/internal/repositories"
	"quicksend/internal/repositories/cache"
	"quicksend/internal/routes"

	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := repositories.OpenDB(startCtx, cfg.DB, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := repositories.CloseDB(db); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()
	logger.Info("connected to database",
		zap.Int("max_open_conns", cfg.DB.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.DB.MaxIdleConns))

	if err := repositories.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	var cacheService *cache.CacheService
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(startCtx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		cacheService = cache.NewCacheService(client, cfg.Redis.TTL)
		defer func() {
			if err := cacheService.Close(); err != nil {
				logger.Warn("failed to close redis connection", zap.Error(err))
			}
		}()
	} else {
		logger.Info("redis cache disabled")
	}

	app := routes.NewApp(cfg, logger)
	routes.SetupRoutes(app, routes.Deps{
		DB:     db,
		Cache:  cacheService,
		Config: cfg,
		Logger: logger,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Address())
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", zap.Error(err))
		}
		return
	}

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		logger.Error("shutdown error", zap.Error(err))
		return
	}
	logger.Info("server exited cleanly")
}
