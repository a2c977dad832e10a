package mockapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler implements the aggregate reporting endpoints.
type AnalyticsHandler struct {
	store *Store
}

func NewAnalyticsHandler(store *Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: store}
}

// Overview handles GET /analytics.
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Analytics())
}

// Brands handles GET /analytics/brands.
func (h *AnalyticsHandler) Brands(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Brands())
}

// Types handles GET /analytics/types.
func (h *AnalyticsHandler) Types(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Types())
}
