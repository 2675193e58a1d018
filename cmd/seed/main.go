// Command seed creates the default admin account and sample menu when they
// are missing, then prints the resulting counts.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/maizul/restaurant-api/internal/core/ports"
	"github.com/maizul/restaurant-api/internal/core/service"
	"github.com/maizul/restaurant-api/internal/infrastructure/db/mongo"
	"github.com/maizul/restaurant-api/internal/infrastructure/db/redis"
	"github.com/maizul/restaurant-api/internal/pkg/config"
	"github.com/maizul/restaurant-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "maizul-seed"})

	store, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, Timeout: cfg.Mongo.Timeout})
	if err != nil {
		log.Fatal().Err(err).Msg("configure mongo client")
	}
	defer store.Disconnect(context.Background())

	if err := store.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo unreachable")
	}

	users := mongo.NewUserRepository(store.Database())
	menu := mongo.NewMenuRepository(store.Database())
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure user indexes")
	}
	if err := menu.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure menu indexes")
	}

	var cache ports.MenuCache
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("menu cache unreachable, cached listings expire on their own")
		} else {
			defer client.Close()
			cache = redis.NewMenuCache(client, cfg.Redis.MenuTTL)
		}
	}

	seeder := service.NewSeedService(users, menu, cache, service.NewPasswordHasher(bcrypt.DefaultCost), service.AdminCredentials{
		Username: cfg.Seed.AdminUsername,
		Password: cfg.Seed.AdminPassword,
	}, log)

	res, err := seeder.Seed(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}

	userCount, err := users.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("count users")
	}
	itemCount, err := menu.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("count menu items")
	}

	if res.AdminCreated {
		fmt.Printf("admin user %q created\n", res.AdminUsername)
	} else {
		fmt.Println("admin user already exists")
	}
	fmt.Printf("menu items created: %d\n", res.MenuItemsCreated)
	fmt.Printf("users: %d\nmenu items: %d\n", userCount, itemCount)
}
