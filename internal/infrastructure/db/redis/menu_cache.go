package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/maizul/restaurant-api/internal/core/domain"
	"github.com/maizul/restaurant-api/internal/core/ports"
)

const (
	defaultMenuTTL = 5 * time.Minute
	generationKey  = "menu:list:generation"
)

// MenuCache stores public menu listings as JSON under a generation counter.
// Key format: menu:list:<generation>:<category|all>:<available|any>
//
// Invalidate bumps the counter, so a listing read before a mutation and
// written after it lands on a retired generation and is never served.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMenuCache wraps client. A non-positive ttl falls back to five minutes.
func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	if ttl <= 0 {
		ttl = defaultMenuTTL
	}
	return &MenuCache{client: client, ttl: ttl}
}

// Get returns the cached listing for filter at the current generation.
// A missing key is a miss, not an error.
func (c *MenuCache) Get(ctx context.Context, filter domain.MenuFilter) (ports.MenuListing, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return ports.MenuListing{}, err
	}
	listing := ports.MenuListing{Generation: gen}

	raw, err := c.client.Get(ctx, listKey(gen, filter)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return listing, nil
		}
		return listing, fmt.Errorf("menu cache get: %w", err)
	}

	if err := json.Unmarshal(raw, &listing.Items); err != nil {
		return listing, fmt.Errorf("menu cache decode: %w", err)
	}
	listing.Hit = true
	return listing, nil
}

func (c *MenuCache) Set(ctx context.Context, filter domain.MenuFilter, generation int64, items []*domain.MenuItem) error {
	if items == nil {
		items = []*domain.MenuItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("menu cache encode: %w", err)
	}
	if err := c.client.Set(ctx, listKey(generation, filter), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("menu cache set: %w", err)
	}
	return nil
}

// Invalidate retires the current generation and drops its listing keys.
// Late writes to the retired generation expire with the TTL.
func (c *MenuCache) Invalidate(ctx context.Context) error {
	next, err := c.client.Incr(ctx, generationKey).Result()
	if err != nil {
		return fmt.Errorf("menu cache invalidate: %w", err)
	}
	if err := c.client.Del(ctx, allListKeys(next-1)...).Err(); err != nil {
		return fmt.Errorf("menu cache invalidate: %w", err)
	}
	return nil
}

func (c *MenuCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("menu cache generation: %w", err)
	}
	return gen, nil
}

func listKey(generation int64, filter domain.MenuFilter) string {
	category := "all"
	if filter.Category != nil {
		category = string(*filter.Category)
	}
	availability := "any"
	if filter.AvailableOnly {
		availability = "available"
	}
	return fmt.Sprintf("menu:list:%d:%s:%s", generation, category, availability)
}

// allListKeys enumerates the closed set of listing keys of one generation.
func allListKeys(generation int64) []string {
	keys := make([]string, 0, (len(domain.Categories)+1)*2)
	scopes := []*domain.Category{nil}
	for i := range domain.Categories {
		scopes = append(scopes, &domain.Categories[i])
	}
	for _, c := range scopes {
		for _, avail := range []bool{false, true} {
			keys = append(keys, listKey(generation, domain.MenuFilter{Category: c, AvailableOnly: avail}))
		}
	}
	return keys
}

// Status reports "connected" or "error: <cause>" for the health endpoint.
func (c *MenuCache) Status(ctx context.Context) string {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return "error: " + err.Error()
	}
	return "connected"
}
