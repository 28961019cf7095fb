package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heshamadeldwedar/Flapkap/internal/api"
	"github.com/heshamadeldwedar/Flapkap/internal/core/ports"
	"github.com/heshamadeldwedar/Flapkap/internal/core/service"
	"github.com/heshamadeldwedar/Flapkap/internal/infrastructure/config"
	mongodb "github.com/heshamadeldwedar/Flapkap/internal/infrastructure/db/mongo"
	redisdb "github.com/heshamadeldwedar/Flapkap/internal/infrastructure/db/redis"
	"github.com/heshamadeldwedar/Flapkap/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB: connection, unique email index, role seed ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	users, roles, err := mongodb.Bootstrap(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo bootstrap failed")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo ready")

	// --- Redis: only needed when login throttling is enabled ---
	var throttle ports.LoginThrottle
	var rdb *goredis.Client
	if cfg.Auth.LoginLimit > 0 {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
		throttle = redisdb.NewLoginThrottle(rdb, cfg.Auth.LoginLimit, cfg.Auth.LoginWindow)
		log.Info().Int("limit", cfg.Auth.LoginLimit).Msg("login throttling enabled")
	}

	// --- Core services ---
	hasher := service.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(users, roles, hasher, tokens)

	e := api.NewRouter(api.Deps{
		AuthService: authService,
		Tokens:      tokens,
		Throttle:    throttle,
		Mongo:       db,
		Redis:       rdb,
		Log:         log,
	})

	// --- Serve with graceful shutdown ---
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
	log.Info().Msg("bye")
}
