package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/maizul/restaurant-api/internal/api/middleware"
	"github.com/maizul/restaurant-api/internal/core/domain"
	"github.com/maizul/restaurant-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUnauthenticated
}

func (s *stubAuthService) RequireRole(*domain.User, domain.Role) error { return nil }

type stubUserService struct {
	created  ports.CreateUserInput
	updated  ports.UpdateUserInput
	deleted  [2]string
	err      error
	response *domain.User
}

func (s *stubUserService) List(context.Context) ([]*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*domain.User{s.response}, nil
}

func (s *stubUserService) Create(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
	s.created = in
	return s.response, s.err
}

func (s *stubUserService) Update(_ context.Context, _ string, in ports.UpdateUserInput) (*domain.User, error) {
	s.updated = in
	return s.response, s.err
}

func (s *stubUserService) Delete(_ context.Context, actorID, id string) error {
	s.deleted = [2]string{actorID, id}
	return s.err
}

type stubMenuService struct {
	listed   ports.ListMenuInput
	created  ports.CreateMenuItemInput
	updated  ports.UpdateMenuItemInput
	reorder  []domain.ReorderEntry
	err      error
	response *domain.MenuItem
}

func (s *stubMenuService) List(_ context.Context, in ports.ListMenuInput) ([]*domain.MenuItem, error) {
	s.listed = in
	if s.err != nil {
		return nil, s.err
	}
	return []*domain.MenuItem{}, nil
}

func (s *stubMenuService) Get(context.Context, string) (*domain.MenuItem, error) {
	return s.response, s.err
}

func (s *stubMenuService) Create(_ context.Context, in ports.CreateMenuItemInput) (*domain.MenuItem, error) {
	s.created = in
	return s.response, s.err
}

func (s *stubMenuService) Update(_ context.Context, _ string, in ports.UpdateMenuItemInput) (*domain.MenuItem, error) {
	s.updated = in
	return s.response, s.err
}

func (s *stubMenuService) Delete(context.Context, string) error { return s.err }

func (s *stubMenuService) Reorder(_ context.Context, entries []domain.ReorderEntry) error {
	s.reorder = entries
	return s.err
}

type stubSeeder struct {
	result *ports.SeedResult
	err    error
}

func (s *stubSeeder) Seed(context.Context) (*ports.SeedResult, error) { return s.result, s.err }

type stubStatus string

func (s stubStatus) Status(context.Context) string { return string(s) }

// newRequest builds an echo context with the validator installed and, when
// user is non-nil, the authenticated user already stored.
func newRequest(method, target, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.ContextKeyUser, user)
	}
	return c, rec
}
