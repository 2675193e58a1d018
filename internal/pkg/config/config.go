package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultJWTSecret ships for local development only; Load callers warn when
// it is still in use.
const DefaultJWTSecret = "maizul-secret-key-change-in-production"

type Config struct {
	Port        string   `env:"PORT, default=8001"`
	Env         string   `env:"ENV, default=development"`
	LogLevel    string   `env:"LOG_LEVEL, default=info"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
	Seed  SeedConfig
	Login LoginConfig
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET, default=maizul-secret-key-change-in-production"`
	Expiration time.Duration `env:"JWT_EXPIRATION, default=24h"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URL, default=mongodb://localhost:27017"`
	Database string        `env:"DB_NAME, default=maizul"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

// RedisConfig enables the menu listing cache when Addr is set.
type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR"`
	DB      int           `env:"REDIS_DB, default=0"`
	MenuTTL time.Duration `env:"MENU_CACHE_TTL, default=5m"`
}

type SeedConfig struct {
	OnStartup     bool   `env:"SEED_ON_STARTUP, default=true"`
	AdminUsername string `env:"SEED_ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=Damian.01"`
}

// LoginConfig throttles POST /auth/login per client IP.
type LoginConfig struct {
	RateLimit float64 `env:"LOGIN_RATE_LIMIT, default=5"`
	RateBurst int     `env:"LOGIN_RATE_BURST, default=10"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if strings.TrimSpace(c.JWT.Secret) == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if c.JWT.Expiration <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRATION must be positive"))
	}
	if len(c.CORSOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ORIGINS must list at least one origin"))
	}
	if c.Seed.AdminUsername == "" || c.Seed.AdminPassword == "" {
		errs = append(errs, errors.New("SEED_ADMIN_USERNAME and SEED_ADMIN_PASSWORD must not be empty"))
	}
	return errors.Join(errs...)
}

// IsDevelopment reports whether ENV selects the development profile.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// UsesDefaultSecret reports whether the shipped JWT secret is in use.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWT.Secret == DefaultJWTSecret
}
