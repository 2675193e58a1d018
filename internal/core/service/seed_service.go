package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maizul/restaurant-api/internal/core/domain"
	"github.com/maizul/restaurant-api/internal/core/ports"
)

// AdminCredentials are the initial credentials of the seeded admin account.
type AdminCredentials struct {
	Username string
	Password string
}

// SeedService fills missing bootstrap data: one admin account and the sample
// catalog. It never overwrites existing records.
type SeedService struct {
	users  ports.UserRepository
	menu   ports.MenuRepository
	cache  ports.MenuCache
	hasher *PasswordHasher
	admin  AdminCredentials
	log    zerolog.Logger
}

func NewSeedService(
	users ports.UserRepository,
	menu ports.MenuRepository,
	cache ports.MenuCache,
	hasher *PasswordHasher,
	admin AdminCredentials,
	log zerolog.Logger,
) *SeedService {
	if cache == nil {
		cache = NopMenuCache{}
	}
	return &SeedService{users: users, menu: menu, cache: cache, hasher: hasher, admin: admin, log: log}
}

func (s *SeedService) Seed(ctx context.Context) (*ports.SeedResult, error) {
	result := &ports.SeedResult{AdminUsername: s.admin.Username}

	created, err := s.seedAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	result.AdminCreated = created

	n, err := s.seedMenu(ctx)
	if err != nil {
		return result, fmt.Errorf("seed menu: %w", err)
	}
	result.MenuItemsCreated = n

	return result, nil
}

func (s *SeedService) seedAdmin(ctx context.Context) (bool, error) {
	admins, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return false, err
	}
	if admins > 0 {
		return false, nil
	}

	hash, err := s.hasher.Hash(s.admin.Password)
	if err != nil {
		return false, err
	}

	admin := &domain.User{
		ID:           uuid.NewString(),
		Username:     s.admin.Username,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, admin); err != nil {
		// Another staff account already owns the name; leave it alone.
		if errors.Is(err, domain.ErrDuplicateUsername) {
			s.log.Warn().Str("username", s.admin.Username).Msg("no admin exists but the default admin username is taken, skipping")
			return false, nil
		}
		return false, err
	}

	s.log.Warn().Str("username", admin.Username).Msg("default admin created, rotate its password")
	return true, nil
}

func (s *SeedService) seedMenu(ctx context.Context) (int, error) {
	count, err := s.menu.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	samples := sampleMenu()
	for i, item := range samples {
		item.ID = uuid.NewString()
		item.CreatedAt = now
		item.UpdatedAt = now
		if err := s.menu.Insert(ctx, item); err != nil {
			s.rollbackMenu(ctx, samples[:i])
			return 0, err
		}
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("menu cache invalidation failed")
	}
	s.log.Info().Int("items", len(samples)).Msg("sample menu seeded")
	return len(samples), nil
}

// rollbackMenu removes samples inserted by a failed run so the catalog is
// empty again and the next run seeds it whole.
func (s *SeedService) rollbackMenu(ctx context.Context, inserted []*domain.MenuItem) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	for _, item := range inserted {
		if err := s.menu.Delete(ctx, item.ID); err != nil && !errors.Is(err, domain.ErrMenuItemNotFound) {
			s.log.Error().Err(err).Str("item_id", item.ID).Msg("sample menu rollback failed, remove the item by hand")
		}
	}
	if len(inserted) > 0 {
		s.log.Warn().Int("items", len(inserted)).Msg("partial sample menu rolled back")
	}
}
