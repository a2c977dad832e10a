// Package mockapi is a development stand-in for the marketplace backend.
// It serves the exact HTTP/JSON contract the console core consumes, backed
// by deterministic in-memory fixtures, so the SDK and CLI can be exercised
// without the real API.
package mockapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/motobazar/admin-console/internal/core/domain"
)

// Config captures the settings for the mock server.
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// New builds the Echo instance with all marketplace routes registered.
func New(store *Store, cfg Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = newHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	// HTTP metrics go to a per-instance registry so New can be called more
	// than once in a process; the /metrics handler also exposes the global
	// application counters.
	registry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  metricsNamespace,
		Registerer: registry,
	}))

	// --- Handlers ---
	authHandler := NewAuthHandler(store, cfg.JWTSecret, cfg.TokenTTL)
	vehicleHandler := NewVehicleHandler(store)
	paymentHandler := NewPaymentHandler(store)
	userHandler := NewUserHandler(store)
	analyticsHandler := NewAnalyticsHandler(store)

	// --- Open endpoints ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, registry},
	}))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- Authenticated endpoints ---
	authed := e.Group("", authMiddleware(cfg.JWTSecret))
	authed.GET("/vehicles", vehicleHandler.ListByStatus)
	authed.GET("/vehicles/:id", vehicleHandler.Get)
	authed.GET("/payments", paymentHandler.List)
	authed.GET("/payments/paid", paymentHandler.Paid)
	authed.GET("/payments/stats", paymentHandler.Stats)
	authed.GET("/payments/vehicle/:id", paymentHandler.ByVehicle)
	authed.POST("/payments/:id/confirm", paymentHandler.Confirm)
	authed.GET("/analytics", analyticsHandler.Overview)
	authed.GET("/analytics/brands", analyticsHandler.Brands)
	authed.GET("/analytics/types", analyticsHandler.Types)

	// --- Admin-only endpoints ---
	admin := e.Group("/admin", authMiddleware(cfg.JWTSecret), adminOnly(domain.RoleAdmin))
	admin.GET("/vehicles/pending", vehicleHandler.Pending)
	admin.GET("/vehicles/sold", vehicleHandler.Sold)
	admin.POST("/vehicles/:id/approve", vehicleHandler.Approve)
	admin.POST("/vehicles/:id/reject", vehicleHandler.Reject)
	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.Get)
	admin.DELETE("/users/:id", userHandler.Delete)

	return e
}
