package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/flight-itinerary/internal/handler"
)

// registerItineraryRoutes mounts the compute endpoint at its original path
// and under the versioned API group.
func registerItineraryRoutes(r *echo.Echo, h *handler.Handlers) {
	compute := h.Itinerary.ComputeItinerary()

	r.POST("/compute", compute)

	v1 := r.Group("/api/v1")
	itinerary := v1.Group("/itinerary")
	itinerary.POST("/compute", compute)
}
