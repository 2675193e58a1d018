package ports

import (
	"context"

	"github.com/maizul/restaurant-api/internal/core/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Insert fails with domain.ErrDuplicateUsername when the username is taken.
	// Uniqueness is enforced by the store, so the error can surface even after
	// a successful FindByUsername pre-check.
	Insert(ctx context.Context, user *domain.User) error
	UpdateFields(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
