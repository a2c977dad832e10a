package mockapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/motobazar/admin-console/internal/core/domain"
)

// VehicleHandler implements listing retrieval and moderation endpoints.
type VehicleHandler struct {
	store *Store
}

func NewVehicleHandler(store *Store) *VehicleHandler {
	return &VehicleHandler{store: store}
}

// Pending handles GET /admin/vehicles/pending.
func (h *VehicleHandler) Pending(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.VehiclesByStatus(domain.VehiclePending))
}

// Sold handles GET /admin/vehicles/sold.
func (h *VehicleHandler) Sold(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.VehiclesByStatus(domain.VehicleSold))
}

// ListByStatus handles GET /vehicles?status=approved|rejected|pending|sold.
func (h *VehicleHandler) ListByStatus(c echo.Context) error {
	status := domain.VehicleStatus(c.QueryParam("status"))
	if !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown vehicle status")
	}
	return c.JSON(http.StatusOK, h.store.VehiclesByStatus(status))
}

// Get handles GET /vehicles/:id.
func (h *VehicleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	vehicle, err := h.store.Vehicle(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicle)
}

// Approve handles POST /admin/vehicles/:id/approve.
func (h *VehicleHandler) Approve(c echo.Context) error {
	return h.moderate(c, domain.VehicleApproved, "approve")
}

// Reject handles POST /admin/vehicles/:id/reject.
func (h *VehicleHandler) Reject(c echo.Context) error {
	return h.moderate(c, domain.VehicleRejected, "reject")
}

func (h *VehicleHandler) moderate(c echo.Context, next domain.VehicleStatus, action string) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	vehicle, err := h.store.Moderate(id, next)
	if err != nil {
		return err
	}
	ModerationsTotal.WithLabelValues(action).Inc()
	return c.JSON(http.StatusOK, vehicle)
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
