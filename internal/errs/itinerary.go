package errs

import (
	"errors"

	"github.com/deppfellow/flight-itinerary/internal/itinerary"
)

// FromItineraryError maps a failure of the itinerary pipeline to a 400
// HTTPError whose code is the failure kind, e.g. EMPTY_FLIGHT_PATHS.
//
// It returns nil when err is not an *itinerary.Error.
func FromItineraryError(err error) *HTTPError {
	var itinErr *itinerary.Error
	if !errors.As(err, &itinErr) {
		return nil
	}

	code := itinErr.Kind.Code()

	// Pipeline messages describe the client's own input, so they are safe
	// to show as-is.
	return NewBadRequestError(itinErr.Message, true, &code, nil, nil)
}
