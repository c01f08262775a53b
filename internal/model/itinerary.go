// Package model holds the request and response payloads of the HTTP API.
package model

import (
	"github.com/deppfellow/flight-itinerary/internal/itinerary"
	"github.com/deppfellow/flight-itinerary/internal/validation"
)

// ComputeItineraryRequest is the body of POST /compute.
//
//	{ "flightPaths": [["MYS","SGP"],["GBB","BKK"]] }
//
// An empty list is accepted here on purpose; the itinerary pipeline reports
// it as EMPTY_FLIGHT_PATHS. Every pair holds exactly two non-empty codes; a
// JSON null decodes to "" and is rejected with them.
type ComputeItineraryRequest struct {
	FlightPaths [][]string `json:"flightPaths" validate:"required,dive,len=2,dive,required"`
}

func (r *ComputeItineraryRequest) Validate() error {
	return validation.Struct(r)
}

// FlightPathSet converts the payload into the pipeline input.
func (r *ComputeItineraryRequest) FlightPathSet() itinerary.FlightPathSet {
	return itinerary.NewFlightPathSet(r.FlightPaths)
}

// ComputeItineraryResponse is the success body of POST /compute.
type ComputeItineraryResponse struct {
	Itinerary []string `json:"itinerary"`
}
