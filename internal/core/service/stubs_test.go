package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/maizul/restaurant-api/internal/core/domain"
	"github.com/maizul/restaurant-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.User
	findErr error // if set, FindByID returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
	}
	r.byID[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) UpdateFields(_ context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Username != nil {
		for otherID, other := range r.byID {
			if otherID != id && other.Username == *patch.Username {
				return nil, domain.ErrDuplicateUsername
			}
		}
		u.Username = *patch.Username
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.byID {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type stubMenuRepo struct {
	mu         sync.Mutex
	byID       map[string]*domain.MenuItem
	listCalls  int
	reorderErr error

	// insertErr fails every Insert once insertsLeft reaches zero.
	insertErr   error
	insertsLeft int

	// afterList, when set, runs after List has read the store.
	afterList func()
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{byID: make(map[string]*domain.MenuItem)}
}

func cloneItem(it *domain.MenuItem) *domain.MenuItem {
	clone := *it
	clone.Tags = append([]string(nil), it.Tags...)
	return &clone
}

func (r *stubMenuRepo) List(_ context.Context, f domain.MenuFilter) ([]*domain.MenuItem, error) {
	r.mu.Lock()
	r.listCalls++
	var out []*domain.MenuItem
	for _, it := range r.byID {
		if f.Category != nil && it.Category != *f.Category {
			continue
		}
		if f.AvailableOnly && !it.IsAvailable {
			continue
		}
		out = append(out, cloneItem(it))
	}
	hook := r.afterList
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	if hook != nil {
		hook()
	}
	return out, nil
}

func (r *stubMenuRepo) Get(_ context.Context, id string) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	return cloneItem(it), nil
}

func (r *stubMenuRepo) Insert(_ context.Context, item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		if r.insertsLeft == 0 {
			return r.insertErr
		}
		r.insertsLeft--
	}
	r.byID[item.ID] = cloneItem(item)
	return nil
}

func (r *stubMenuRepo) Update(_ context.Context, id string, p domain.MenuItemPatch) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.NameES != nil {
		it.NameES = *p.NameES
	}
	if p.NameEN != nil {
		it.NameEN = *p.NameEN
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if p.IsAvailable != nil {
		it.IsAvailable = *p.IsAvailable
	}
	if p.IsFeatured != nil {
		it.IsFeatured = *p.IsFeatured
	}
	if p.SortOrder != nil {
		it.SortOrder = *p.SortOrder
	}
	if p.Tags != nil {
		it.Tags = *p.Tags
	}
	it.UpdatedAt = time.Now().UTC()
	return cloneItem(it), nil
}

func (r *stubMenuRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrMenuItemNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubMenuRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

func (r *stubMenuRepo) Reorder(_ context.Context, entries []domain.ReorderEntry) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched int64
	for _, e := range entries {
		if r.reorderErr != nil {
			return matched, r.reorderErr
		}
		if it, ok := r.byID[e.ID]; ok {
			it.SortOrder = e.SortOrder
			matched++
		}
	}
	return matched, nil
}

// stubMenuCache stores listings keyed by generation and filter, like the
// redis adapter.
type stubMenuCache struct {
	mu          sync.Mutex
	gen         int64
	entries     map[string][]*domain.MenuItem
	invalidated int
	getErr      error
}

func newStubMenuCache() *stubMenuCache {
	return &stubMenuCache{entries: make(map[string][]*domain.MenuItem)}
}

func cacheKey(gen int64, f domain.MenuFilter) string {
	key := "all"
	if f.Category != nil {
		key = string(*f.Category)
	}
	return fmt.Sprintf("%d:%s:%t", gen, key, f.AvailableOnly)
}

func (c *stubMenuCache) Get(_ context.Context, f domain.MenuFilter) (ports.MenuListing, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return ports.MenuListing{}, c.getErr
	}
	items, ok := c.entries[cacheKey(c.gen, f)]
	return ports.MenuListing{Items: items, Hit: ok, Generation: c.gen}, nil
}

func (c *stubMenuCache) Set(_ context.Context, f domain.MenuFilter, gen int64, items []*domain.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(gen, f)] = items
	return nil
}

func (c *stubMenuCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	c.gen++
	return nil
}

func testHasher() *PasswordHasher {
	return NewPasswordHasher(bcrypt.MinCost)
}
