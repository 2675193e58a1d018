package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/maizul/restaurant-api/internal/core/domain"
	"github.com/maizul/restaurant-api/internal/core/ports"
	"github.com/maizul/restaurant-api/internal/pkg/metrics"
)

// RequireRole admits only users whose role equals role. It must run after
// Authenticate.
func RequireRole(gate ports.AuthService, role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := gate.RequireRole(UserFrom(c), role); err != nil {
				reason := "forbidden"
				if errors.Is(err, domain.ErrUnauthenticated) {
					reason = "missing_token"
				}
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
				return err
			}
			return next(c)
		}
	}
}
