package handler

import (
	"github.com/deppfellow/flight-itinerary/internal/server"
	"github.com/deppfellow/flight-itinerary/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one value.
type Handlers struct {
	Itinerary *ItineraryHandler
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Itinerary: NewItineraryHandler(s, services.Itinerary),
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
	}
}
