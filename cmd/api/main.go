package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/simplesdental/product-api/internal/api"
	"github.com/simplesdental/product-api/internal/bootstrap"
	"github.com/simplesdental/product-api/internal/core/service"
	"github.com/simplesdental/product-api/internal/infrastructure/config"
	mongodb "github.com/simplesdental/product-api/internal/infrastructure/db/mongo"
	redisdb "github.com/simplesdental/product-api/internal/infrastructure/db/redis"
	"github.com/simplesdental/product-api/internal/infrastructure/queue"
	"github.com/simplesdental/product-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Product API
// @version      1.0
// @description  Role-gated REST API for products, categories and users.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Bootstrap admin account ---
	userRepo := mongodb.NewUserRepository(db)
	if err := bootstrap.EnsureAdmin(ctx, userRepo, cfg.Admin, logger.Component("bootstrap")); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// --- Audit pipeline ---
	auditRepo := mongodb.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, logger.Component("audit"))
	dispatcher := queue.NewDispatcher(0, auditService, logger.Component("audit"))
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, cfg.JWTSecret, dispatcher, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
