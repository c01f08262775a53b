package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/flight-itinerary/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the business
// logic: health, docs UI and the embedded static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", h.OpenAPI.StaticFS())

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
