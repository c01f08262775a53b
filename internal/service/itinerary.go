package service

import (
	"context"
	"errors"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/deppfellow/flight-itinerary/internal/itinerary"
	"github.com/deppfellow/flight-itinerary/internal/server"
)

type ItineraryService struct {
	server *server.Server
}

func NewItineraryService(s *server.Server) *ItineraryService {
	return &ItineraryService{
		server: s,
	}
}

// Calculate returns [origin, destination] for paths.
//
// Pipeline failures are returned unchanged as *itinerary.Error so the caller
// can map the kind to a client error.
func (s *ItineraryService) Calculate(ctx context.Context, paths itinerary.FlightPathSet) ([]string, error) {
	logger := s.logger(ctx).With().
		Str("operation", "calculate_itinerary").
		Int("edge_count", len(paths)).
		Logger()

	logger.Info().Msg("received request to calculate flight itinerary")

	// Both calls are no-ops without a New Relic transaction.
	txn := newrelic.FromContext(ctx)
	segment := txn.StartSegment("itinerary.compute")
	result, err := itinerary.Compute(paths)
	segment.End()

	if err != nil {
		event := logger.Warn()

		var itinErr *itinerary.Error
		if errors.As(err, &itinErr) {
			event = event.Str("error_kind", string(itinErr.Kind))
			txn.AddAttribute("itinerary.error_kind", string(itinErr.Kind))
		}

		event.Str("error_message", err.Error()).Msg("failed to calculate flight itinerary")
		return nil, err
	}

	txn.AddAttribute("itinerary.origin", result[0])
	txn.AddAttribute("itinerary.destination", result[1])

	logger.Info().
		Str("origin", result[0]).
		Str("destination", result[1]).
		Msg("calculated flight itinerary")

	return result, nil
}

// logger prefers the request-scoped logger stored by the context enhancer.
func (s *ItineraryService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.server.Logger
}
