package ports

import (
	"context"

	"github.com/maizul/restaurant-api/internal/core/domain"
)

// MenuRepository defines persistence operations for the menu catalog.
type MenuRepository interface {
	// List returns items matching filter ordered by sort_order ascending.
	List(ctx context.Context, filter domain.MenuFilter) ([]*domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Insert(ctx context.Context, item *domain.MenuItem) error
	// Update applies patch and refreshes updated_at.
	Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// Reorder applies every entry as an independent update. Unknown ids are
	// skipped and earlier entries are not rolled back on failure. It returns
	// the number of items matched.
	Reorder(ctx context.Context, entries []domain.ReorderEntry) (int64, error)
}

// MenuListing is the result of a cache lookup. Generation identifies the
// cache state the lookup observed and must be passed back to Set.
type MenuListing struct {
	Items      []*domain.MenuItem
	Hit        bool
	Generation int64
}

// MenuCache stores public menu listings keyed by filter. Implementations
// must be safe to call when the backing cache is down; callers treat every
// error as a miss.
type MenuCache interface {
	Get(ctx context.Context, filter domain.MenuFilter) (MenuListing, error)
	// Set stores items read from the store after a Get that returned
	// generation. Listings stored under a generation that Invalidate has
	// since retired are never served.
	Set(ctx context.Context, filter domain.MenuFilter, generation int64, items []*domain.MenuItem) error
	// Invalidate retires the current generation.
	Invalidate(ctx context.Context) error
}
