package service

import (
	"github.com/deppfellow/flight-itinerary/internal/server"
)

type Services struct {
	Itinerary *ItineraryService
}

func NewServices(s *server.Server) (*Services, error) {
	return &Services{
		Itinerary: NewItineraryService(s),
	}, nil
}
