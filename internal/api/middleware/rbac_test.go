package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/maizul/restaurant-api/internal/core/domain"
)

func TestRequireRole_Allows(t *testing.T) {
	gate := newGate()
	c, rec := newContext("")
	c.Set(ContextKeyUser, gate.users["admin-token"])

	called := false
	handler := RequireRole(gate, domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_ForbidsEditor(t *testing.T) {
	gate := newGate()
	c, _ := newContext("")
	c.Set(ContextKeyUser, gate.users["editor-token"])

	handler := RequireRole(gate, domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRole_WithoutUser(t *testing.T) {
	c, _ := newContext("")

	handler := RequireRole(newGate(), domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
