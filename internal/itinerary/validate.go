package itinerary

import "strings"

// Validate rejects flight path sets that cannot be processed.
//
// The empty check runs first; then paths are checked in order and the first
// self loop (origin equal to destination, ignoring case) is reported.
func Validate(paths FlightPathSet) error {
	if len(paths) == 0 {
		return newError(KindEmptyFlightPaths, msgEmptyFlightPaths)
	}

	for _, fp := range paths {
		if strings.EqualFold(fp.Origin, fp.Destination) {
			return newError(KindInvalidFlightPath, msgSameAirports)
		}
	}

	return nil
}
