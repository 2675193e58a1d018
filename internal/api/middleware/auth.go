package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/maizul/restaurant-api/internal/core/domain"
	"github.com/maizul/restaurant-api/internal/core/ports"
	"github.com/maizul/restaurant-api/internal/pkg/metrics"
)

// ContextKeyUser is the echo context key holding the authenticated *domain.User.
const ContextKeyUser = "user"

// Authenticate resolves the bearer token to a live user through gate and
// stores it under ContextKeyUser. Failures are returned to the HTTP error
// handler unchanged.
func Authenticate(gate ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return err
			}

			user, err := gate.Authenticate(c.Request().Context(), token)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}

			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

// UserFrom returns the user stored by Authenticate, or nil.
func UserFrom(c echo.Context) *domain.User {
	user, _ := c.Get(ContextKeyUser).(*domain.User)
	return user
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("%w: missing authorization header", domain.ErrUnauthenticated)
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("%w: invalid authorization header", domain.ErrUnauthenticated)
	}
	return strings.TrimSpace(parts[1]), nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrExpiredToken):
		return "expired"
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid"
	case errors.Is(err, domain.ErrUnauthenticated):
		return "revoked"
	default:
		return "error"
	}
}
