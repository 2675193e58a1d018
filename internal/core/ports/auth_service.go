package ports

import (
	"context"

	"github.com/maizul/restaurant-api/internal/core/domain"
)

// AuthService covers login and the authorization gate.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Authenticate resolves a bearer token to a live, active user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	RequireRole(user *domain.User, role domain.Role) error
}
