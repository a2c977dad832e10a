package mockapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/motobazar/admin-console/internal/core/domain"
)

// PaymentHandler implements payment listing, lookup, and confirmation.
type PaymentHandler struct {
	store *Store
}

func NewPaymentHandler(store *Store) *PaymentHandler {
	return &PaymentHandler{store: store}
}

// List handles GET /payments with an optional ?status= filter.
func (h *PaymentHandler) List(c echo.Context) error {
	status := domain.PaymentStatus(c.QueryParam("status"))
	switch status {
	case "", domain.PaymentPending, domain.PaymentPaid, domain.PaymentFailed:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown payment status")
	}
	return c.JSON(http.StatusOK, h.store.Payments(status))
}

// Paid handles GET /payments/paid.
func (h *PaymentHandler) Paid(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Payments(domain.PaymentPaid))
}

// ByVehicle handles GET /payments/vehicle/:id. Responds 404 when the listing
// has no payment yet; the console treats that as an empty result.
func (h *PaymentHandler) ByVehicle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	payment, err := h.store.PaymentByVehicle(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// Stats handles GET /payments/stats.
func (h *PaymentHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.PaymentStats())
}

// Confirm handles POST /payments/:id/confirm.
func (h *PaymentHandler) Confirm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	payment, err := h.store.ConfirmPayment(id)
	if err != nil {
		return err
	}
	PaymentsConfirmedTotal.Inc()
	return c.JSON(http.StatusOK, payment)
}
