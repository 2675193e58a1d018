package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/maizul/restaurant-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Database connection states reported by Store.Status.
const (
	StatusConnected      = "connected"
	StatusNotInitialized = "not_initialized"
)

// Store owns the client and the selected database.
type Store struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// Connect builds a client for cfg. The driver connects lazily, so an
// unreachable server does not fail here; call Ping to learn its state.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Database), timeout: timeout}, nil
}

// Ping checks connectivity within the configured timeout.
func (s *Store) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

// Status returns "connected", "not_initialized" for a nil store, or
// "error: <reason>" when the server does not answer a ping.
func (s *Store) Status(ctx context.Context) string {
	if s == nil {
		return StatusNotInitialized
	}
	if err := s.Ping(ctx); err != nil {
		return "error: " + err.Error()
	}
	return StatusConnected
}

func (s *Store) Database() *mongo.Database { return s.db }

func (s *Store) Disconnect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// storeErr maps driver failures caused by an unreachable server to
// domain.ErrUnavailable and wraps everything else with op.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var selErr topology.ServerSelectionError
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) ||
		errors.Is(err, context.DeadlineExceeded) || errors.As(err, &selErr) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
