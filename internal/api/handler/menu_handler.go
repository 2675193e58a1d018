package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/maizul/restaurant-api/internal/core/domain"
	"github.com/maizul/restaurant-api/internal/core/ports"
	"github.com/maizul/restaurant-api/internal/pkg/metrics"
)

// MenuHandler serves the public menu listing and the staff catalog editor.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// List handles GET /menu.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Param        category        query     string  false  "breakfast, lunch or dinner"
// @Param        available_only  query     bool    false  "Only available items"  default(true)
// @Success      200             {array}   domain.MenuItem
// @Failure      400             {object}  errorResponse
// @Router       /menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	availableOnly := true
	if raw := c.QueryParam("available_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "available_only must be a boolean")
		}
		availableOnly = v
	}

	items, err := h.service.List(c.Request().Context(), ports.ListMenuInput{
		Category:      c.QueryParam("category"),
		AvailableOnly: availableOnly,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /menu/:id.
//
// @Summary      Get a menu item
// @Tags         menu
// @Produce      json
// @Param        id   path      string  true  "Menu item ID"
// @Success      200  {object}  domain.MenuItem
// @Failure      404  {object}  errorResponse
// @Router       /menu/{id} [get]
func (h *MenuHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /menu.
//
// @Summary      Create a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMenuItemRequest  true  "New menu item"
// @Success      201   {object}  domain.MenuItem
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req createMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), ports.CreateMenuItemInput{
		Category:      req.Category,
		NameES:        req.NameES,
		NameEN:        req.NameEN,
		DescriptionES: req.DescriptionES,
		DescriptionEN: req.DescriptionEN,
		Price:         *req.Price,
		Image:         req.Image,
		IsFeatured:    req.IsFeatured,
		IsAvailable:   req.IsAvailable,
		SortOrder:     req.SortOrder,
		Tags:          req.Tags,
	})
	if err != nil {
		return err
	}
	metrics.MenuMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /menu/:id.
//
// @Summary      Update a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Menu item ID"
// @Param        body  body      updateMenuItemRequest  true  "Fields to change"
// @Success      200   {object}  domain.MenuItem
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /menu/{id} [put]
func (h *MenuHandler) Update(c echo.Context) error {
	var req updateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateMenuItemInput{
		Category:      req.Category,
		NameES:        req.NameES,
		NameEN:        req.NameEN,
		DescriptionES: req.DescriptionES,
		DescriptionEN: req.DescriptionEN,
		Price:         req.Price,
		Image:         req.Image,
		IsFeatured:    req.IsFeatured,
		IsAvailable:   req.IsAvailable,
		SortOrder:     req.SortOrder,
		Tags:          req.Tags,
	})
	if err != nil {
		return err
	}
	metrics.MenuMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /menu/:id.
//
// @Summary      Delete a menu item
// @Tags         menu
// @Security     BearerAuth
// @Param        id   path  string  true  "Menu item ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.MenuMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Reorder handles PUT /menu/reorder. Unknown ids are skipped.
//
// @Summary      Reorder menu items
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []reorderEntryRequest  true  "New sort orders"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /menu/reorder [put]
func (h *MenuHandler) Reorder(c echo.Context) error {
	var req []reorderEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	entries := make([]domain.ReorderEntry, 0, len(req))
	for i := range req {
		if err := c.Validate(&req[i]); err != nil {
			return err
		}
		entries = append(entries, domain.ReorderEntry{ID: req[i].ID, SortOrder: req[i].SortOrder})
	}

	if err := h.service.Reorder(c.Request().Context(), entries); err != nil {
		return err
	}
	metrics.MenuMutationsTotal.WithLabelValues("reorder").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Order updated successfully"})
}
