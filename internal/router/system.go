package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tradepost/backend/internal/handler"
)

// registerSystemRoutes registers endpoints that are not business logic:
// health, docs UI and the static assets the docs UI loads.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Polled by load balancers and uptime monitors.
	r.GET("/status", h.Health.CheckHealth)

	// Serves openapi.json and any future docs assets.
	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
