package api

import (
	"context"
	"sort"
	"sync"

	"github.com/maizul/restaurant-api/internal/core/domain"
)

// memUsers and memMenu are in-memory stores for end-to-end router tests.
type memUsers struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]domain.User{}} }

func (m *memUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (m *memUsers) Insert(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
	}
	m.users[user.ID] = *user
	return nil
}

func (m *memUsers) UpdateFields(_ context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Username != nil {
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
	m.users[id] = u
	return &u, nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memUsers) List(context.Context) ([]*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memUsers) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, u := range m.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type memMenu struct {
	mu    sync.Mutex
	items map[string]domain.MenuItem
}

func newMemMenu() *memMenu { return &memMenu{items: map[string]domain.MenuItem{}} }

func (m *memMenu) List(_ context.Context, filter domain.MenuFilter) ([]*domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*domain.MenuItem{}
	for _, it := range m.items {
		if filter.Category != nil && it.Category != *filter.Category {
			continue
		}
		if filter.AvailableOnly && !it.IsAvailable {
			continue
		}
		it := it
		out = append(out, &it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (m *memMenu) Get(_ context.Context, id string) (*domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	return &it, nil
}

func (m *memMenu) Insert(_ context.Context, item *domain.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = *item
	return nil
}

func (m *memMenu) Update(_ context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	if patch.Price != nil {
		it.Price = *patch.Price
	}
	if patch.IsAvailable != nil {
		it.IsAvailable = *patch.IsAvailable
	}
	if patch.SortOrder != nil {
		it.SortOrder = *patch.SortOrder
	}
	m.items[id] = it
	return &it, nil
}

func (m *memMenu) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return domain.ErrMenuItemNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memMenu) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.items)), nil
}

func (m *memMenu) Reorder(_ context.Context, entries []domain.ReorderEntry) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched int64
	for _, e := range entries {
		if it, ok := m.items[e.ID]; ok {
			it.SortOrder = e.SortOrder
			m.items[e.ID] = it
			matched++
		}
	}
	return matched, nil
}
