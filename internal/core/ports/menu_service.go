package ports

import (
	"context"

	"github.com/maizul/restaurant-api/internal/core/domain"
)

// CreateMenuItemInput carries the fields of a new menu item. Optional
// booleans default to is_featured=false and is_available=true when nil.
type CreateMenuItemInput struct {
	Category      string
	NameES        string
	NameEN        string
	DescriptionES string
	DescriptionEN string
	Price         float64
	Image         *string
	IsFeatured    *bool
	IsAvailable   *bool
	SortOrder     int
	Tags          []string
}

// UpdateMenuItemInput is the untrusted partial update received from the API.
type UpdateMenuItemInput struct {
	Category      *string
	NameES        *string
	NameEN        *string
	DescriptionES *string
	DescriptionEN *string
	Price         *float64
	Image         *string
	IsFeatured    *bool
	IsAvailable   *bool
	SortOrder     *int
	Tags          *[]string
}

// ListMenuInput carries listing query parameters. An empty Category lists all.
type ListMenuInput struct {
	Category      string
	AvailableOnly bool
}

// MenuService defines catalog use cases.
type MenuService interface {
	List(ctx context.Context, input ListMenuInput) ([]*domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, input CreateMenuItemInput) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, input UpdateMenuItemInput) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, entries []domain.ReorderEntry) error
}
