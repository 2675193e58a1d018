package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maizul/restaurant-api/internal/core/domain"
	"github.com/maizul/restaurant-api/internal/core/ports"
	"github.com/maizul/restaurant-api/internal/pkg/metrics"
)

// MenuService implements catalog use cases. Listings are read through an
// optional cache that every mutation invalidates.
type MenuService struct {
	repo  ports.MenuRepository
	cache ports.MenuCache
	log   zerolog.Logger
}

// NewMenuService returns a MenuService. A nil cache disables caching.
func NewMenuService(repo ports.MenuRepository, cache ports.MenuCache, log zerolog.Logger) *MenuService {
	if cache == nil {
		cache = NopMenuCache{}
	}
	return &MenuService{repo: repo, cache: cache, log: log}
}

func (s *MenuService) List(ctx context.Context, in ports.ListMenuInput) ([]*domain.MenuItem, error) {
	filter := domain.MenuFilter{AvailableOnly: in.AvailableOnly}
	if in.Category != "" {
		c, err := domain.ParseCategory(in.Category)
		if err != nil {
			return nil, err
		}
		filter.Category = &c
	}

	// Cache failures degrade to a store read.
	listing, err := s.cache.Get(ctx, filter)
	switch {
	case err != nil:
		metrics.MenuCacheLookupsTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Msg("menu cache read failed, reading store")
	case listing.Hit:
		metrics.MenuCacheLookupsTotal.WithLabelValues("hit").Inc()
		return listing.Items, nil
	default:
		metrics.MenuCacheLookupsTotal.WithLabelValues("miss").Inc()
	}
	cacheable := err == nil

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}

	// A mutation committed since the lookup has retired listing.Generation,
	// so this snapshot can no longer be served.
	if cacheable {
		if err := s.cache.Set(ctx, filter, listing.Generation, items); err != nil {
			s.log.Warn().Err(err).Msg("menu cache write failed")
		}
	}
	return items, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

func (s *MenuService) Create(ctx context.Context, in ports.CreateMenuItemInput) (*domain.MenuItem, error) {
	category, err := domain.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(in.Price); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.MenuItem{
		ID:            uuid.NewString(),
		Category:      category,
		NameES:        in.NameES,
		NameEN:        in.NameEN,
		DescriptionES: in.DescriptionES,
		DescriptionEN: in.DescriptionEN,
		Price:         in.Price,
		Image:         in.Image,
		IsFeatured:    boolOr(in.IsFeatured, false),
		IsAvailable:   boolOr(in.IsAvailable, true),
		SortOrder:     in.SortOrder,
		Tags:          normalizeTags(in.Tags),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	s.invalidate(ctx)

	s.log.Info().Str("item_id", item.ID).Str("category", string(item.Category)).Msg("menu item created")
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id string, in ports.UpdateMenuItemInput) (*domain.MenuItem, error) {
	patch := domain.MenuItemPatch{
		NameES:        in.NameES,
		NameEN:        in.NameEN,
		DescriptionES: in.DescriptionES,
		DescriptionEN: in.DescriptionEN,
		Image:         in.Image,
		IsFeatured:    in.IsFeatured,
		IsAvailable:   in.IsAvailable,
		SortOrder:     in.SortOrder,
	}
	if in.Category != nil {
		c, err := domain.ParseCategory(*in.Category)
		if err != nil {
			return nil, err
		}
		patch.Category = &c
	}
	if in.Price != nil {
		if err := validatePrice(*in.Price); err != nil {
			return nil, err
		}
		patch.Price = in.Price
	}
	if in.Tags != nil {
		tags := normalizeTags(*in.Tags)
		patch.Tags = &tags
	}

	item, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	s.invalidate(ctx)

	s.log.Info().Str("item_id", id).Msg("menu item updated")
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	s.invalidate(ctx)

	s.log.Info().Str("item_id", id).Msg("menu item deleted")
	return nil
}

// Reorder is not atomic: entries already applied stay applied when a later
// one fails, and unknown ids are skipped.
func (s *MenuService) Reorder(ctx context.Context, entries []domain.ReorderEntry) error {
	if len(entries) == 0 {
		return nil
	}

	matched, err := s.repo.Reorder(ctx, entries)
	s.invalidate(ctx)
	if err != nil {
		return fmt.Errorf("reorder menu: %w", err)
	}

	s.log.Info().Int("requested", len(entries)).Int64("matched", matched).Msg("menu reordered")
	return nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("menu cache invalidation failed")
	}
}

func validatePrice(p float64) error {
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return fmt.Errorf("%w: price must be a number >= 0", domain.ErrInvalidInput)
	}
	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// NopMenuCache is a MenuCache that never hits.
type NopMenuCache struct{}

func (NopMenuCache) Get(context.Context, domain.MenuFilter) (ports.MenuListing, error) {
	return ports.MenuListing{}, nil
}

func (NopMenuCache) Set(context.Context, domain.MenuFilter, int64, []*domain.MenuItem) error {
	return nil
}

func (NopMenuCache) Invalidate(context.Context) error { return nil }
