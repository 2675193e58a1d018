package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// StatusReporter describes a backing store in a single word or an
// "error: <cause>" string.
type StatusReporter interface {
	Status(ctx context.Context) string
}

// HealthHandler handles GET /health. It always answers 200; degraded
// dependencies show up in the body.
type HealthHandler struct {
	database StatusReporter
	cache    StatusReporter
	now      func() time.Time
}

// NewHealthHandler reports database status and, when cache is non-nil, cache status.
func NewHealthHandler(database, cache StatusReporter) *HealthHandler {
	return &HealthHandler{database: database, cache: cache, now: time.Now}
}

// Health reports process and dependency status.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	resp := healthResponse{
		Status:    "healthy",
		Database:  h.database.Status(ctx),
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}
	if h.cache != nil {
		resp.Cache = h.cache.Status(ctx)
	}
	return c.JSON(http.StatusOK, resp)
}

// Root handles GET /.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{Status: "ok", App: "Maizul Restaurant API", Version: "1.0"})
}
