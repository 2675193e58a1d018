package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/maizul/restaurant-api/internal/core/domain"
)

// stubGate maps tokens to users; any other token fails with err.
type stubGate struct {
	users map[string]*domain.User
	err   error
}

func (g *stubGate) Login(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, errors.New("not implemented")
}

func (g *stubGate) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if u, ok := g.users[token]; ok {
		return u, nil
	}
	if g.err != nil {
		return nil, g.err
	}
	return nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, domain.ErrInvalidToken)
}

func (g *stubGate) RequireRole(user *domain.User, role domain.Role) error {
	if user == nil {
		return domain.ErrUnauthenticated
	}
	if user.Role != role {
		return domain.ErrForbidden
	}
	return nil
}

func newGate() *stubGate {
	return &stubGate{users: map[string]*domain.User{
		"admin-token":  {ID: "a", Username: "admin", Role: domain.RoleAdmin, IsActive: true},
		"editor-token": {ID: "e", Username: "editor", Role: domain.RoleEditor, IsActive: true},
	}}
}

func newContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	c, rec := newContext("Bearer admin-token")

	called := false
	handler := Authenticate(newGate())(func(c echo.Context) error {
		called = true
		user := UserFrom(c)
		if user == nil || user.Username != "admin" {
			t.Fatalf("user not set: %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   error
	}{
		{"missing header", "", domain.ErrUnauthenticated},
		{"wrong scheme", "Token admin-token", domain.ErrUnauthenticated},
		{"empty token", "Bearer ", domain.ErrUnauthenticated},
		{"unknown token", "Bearer nope", domain.ErrInvalidToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newContext(tc.header)
			handler := Authenticate(newGate())(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAuthenticate_StoreDown(t *testing.T) {
	gate := newGate()
	gate.err = fmt.Errorf("authenticate: %w", domain.ErrUnavailable)
	c, _ := newContext("Bearer whatever")

	handler := Authenticate(gate)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestBearerToken_CaseInsensitiveScheme(t *testing.T) {
	token, err := bearerToken("bearer abc")
	if err != nil || token != "abc" {
		t.Fatalf("expected abc, got %q, %v", token, err)
	}
}
