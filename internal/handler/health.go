package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront-bff/internal/medusa"
	"storefront-bff/pkg/logger"
)

// HealthHandler reports service liveness and the reachability of the
// commerce platform.
type HealthHandler struct {
	gw medusa.Gateway
}

func NewHealthHandler(gw medusa.Gateway) *HealthHandler {
	return &HealthHandler{gw: gw}
}

// Health handles GET /health by pinging the platform's own health endpoint.
func (h *HealthHandler) Health(c echo.Context) error {
	platform := "ok"
	if err := h.gw.Request(c.Request().Context(), "/health", medusa.Options{}, nil); err != nil {
		logger.FromEcho(c).Warn("platform health check failed", zap.Error(err))
		platform = "unreachable"
	}

	status := http.StatusOK
	if platform != "ok" {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]string{
		"status": "ok",
		"medusa": platform,
	})
}

// Live handles GET /health/live
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /health/ready
func (h *HealthHandler) Ready(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
