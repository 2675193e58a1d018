// @title           Maizul Restaurant API
// @version         1.0
// @description     Staff authentication, user management and menu catalog for the Maizul restaurant.
// @BasePath        /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/maizul/restaurant-api/internal/api"
	"github.com/maizul/restaurant-api/internal/api/handler"
	"github.com/maizul/restaurant-api/internal/core/ports"
	"github.com/maizul/restaurant-api/internal/core/service"
	"github.com/maizul/restaurant-api/internal/infrastructure/db/mongo"
	"github.com/maizul/restaurant-api/internal/infrastructure/db/redis"
	"github.com/maizul/restaurant-api/internal/pkg/config"
	"github.com/maizul/restaurant-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "maizul-api",
	})
	if cfg.UsesDefaultSecret() {
		log.Warn().Msg("JWT_SECRET is the built-in default, set a private value before deploying")
	}

	store, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, Timeout: cfg.Mongo.Timeout})
	if err != nil {
		log.Fatal().Err(err).Msg("configure mongo client")
	}
	users := mongo.NewUserRepository(store.Database())
	menu := mongo.NewMenuRepository(store.Database())

	// The user repository also creates its indexes before the first username
	// write, so a degraded start cannot admit duplicate usernames.
	dbReady := store.Ping(ctx) == nil
	if !dbReady {
		log.Warn().Msg("mongo unreachable at startup, serving with degraded health")
	} else {
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("ensure user indexes")
		}
		if err := menu.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("ensure menu indexes")
		}
	}

	var (
		cache       ports.MenuCache = service.NopMenuCache{}
		cacheStatus handler.StatusReporter
	)
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("menu cache disabled")
		} else {
			defer client.Close()
			menuCache := redis.NewMenuCache(client, cfg.Redis.MenuTTL)
			cache, cacheStatus = menuCache, menuCache
			log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.MenuTTL).Msg("menu cache enabled")
		}
	}

	hasher := service.NewPasswordHasher(bcrypt.DefaultCost)
	tokens := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authService := service.NewAuthService(users, hasher, tokens, log)
	userService := service.NewUserService(users, hasher, log)
	menuService := service.NewMenuService(menu, cache, log)
	seeder := service.NewSeedService(users, menu, cache, hasher, service.AdminCredentials{
		Username: cfg.Seed.AdminUsername,
		Password: cfg.Seed.AdminPassword,
	}, log)

	if cfg.Seed.OnStartup && dbReady {
		if _, err := seeder.Seed(ctx); err != nil {
			log.Error().Err(err).Msg("startup seeding failed, POST /api/seed can retry")
		}
	}

	e := api.NewRouter(api.Dependencies{
		Auth:           authService,
		Users:          userService,
		Menu:           menuService,
		Seeder:         seeder,
		Database:       store,
		Cache:          cacheStatus,
		Logger:         log,
		CORSOrigins:    cfg.CORSOrigins,
		LoginRateLimit: cfg.Login.RateLimit,
		LoginRateBurst: cfg.Login.RateBurst,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	shutdown(e.Shutdown, store)
}

func shutdown(stopHTTP func(context.Context) error, store *mongo.Store) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info().Msg("shutting down")
	if err := stopHTTP(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := store.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
}
