package ports

import (
	"context"

	"github.com/maizul/restaurant-api/internal/core/domain"
)

// CreateUserInput carries the fields of a new staff account.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

// UpdateUserInput is the untrusted partial update received from the API.
type UpdateUserInput struct {
	Username *string
	Password *string
	Role     *string
	IsActive *bool
}

// UserService defines admin user-management use cases.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Delete removes id on behalf of actorID; an actor may not delete itself.
	Delete(ctx context.Context, actorID, id string) error
}
