package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maizul/restaurant-api/internal/core/ports"
	"github.com/maizul/restaurant-api/internal/pkg/metrics"
)

type SeedHandler struct {
	seeder ports.Seeder
}

func NewSeedHandler(seeder ports.Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// Seed handles POST /seed. It only fills gaps and never returns credentials.
//
// @Summary      Seed default data
// @Tags         seed
// @Produce      json
// @Success      200  {object}  seedResponse
// @Failure      503  {object}  errorResponse
// @Router       /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	res, err := h.seeder.Seed(c.Request().Context())
	if err != nil {
		metrics.SeedRunsTotal.WithLabelValues("error").Inc()
		return err
	}

	result := "noop"
	if res.AdminCreated || res.MenuItemsCreated > 0 {
		result = "created"
	}
	metrics.SeedRunsTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, seedResponse{
		Message:          seedMessage(res),
		AdminUsername:    res.AdminUsername,
		AdminCreated:     res.AdminCreated,
		MenuItemsCreated: res.MenuItemsCreated,
	})
}

func seedMessage(res *ports.SeedResult) string {
	switch {
	case res.AdminCreated:
		return "Database seeded successfully"
	case res.MenuItemsCreated > 0:
		return "Menu seeded successfully"
	default:
		return "Admin user already exists"
	}
}
