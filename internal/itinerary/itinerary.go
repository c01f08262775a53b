// Package itinerary resolves the overall starting and ending airport of a
// trip from an unordered set of directed flight paths.
//
// The flight paths are treated as the edges of a directed multigraph that is
// assumed to form a single Eulerian trail. The origin is the only airport with
// one more departure than arrivals, the destination the only airport with one
// more arrival than departures.
//
// Pipeline:
//
//	FlightPathSet -> Validate -> NewGraph -> Resolve -> Endpoints.Itinerary
//
// Every stage either proceeds or stops the pipeline with an *Error. Nothing in
// this package keeps state between calls.
package itinerary

// FlightPath is a single directed edge: a flight from Origin to Destination.
type FlightPath struct {
	Origin      string
	Destination string
}

// FlightPathSet is the ordered list of flight paths submitted in one request.
type FlightPathSet []FlightPath

// NewFlightPathSet converts raw [origin, destination] pairs into a FlightPathSet.
//
// Callers are expected to have rejected pairs that do not hold exactly two
// codes; any extra entries are ignored and missing ones are left empty.
func NewFlightPathSet(pairs [][]string) FlightPathSet {
	set := make(FlightPathSet, 0, len(pairs))
	for _, pair := range pairs {
		var fp FlightPath
		if len(pair) > 0 {
			fp.Origin = pair[0]
		}
		if len(pair) > 1 {
			fp.Destination = pair[1]
		}
		set = append(set, fp)
	}
	return set
}

// Endpoints is the resolved start and end of an itinerary.
type Endpoints struct {
	Origin      string
	Destination string
}

// Itinerary projects the endpoints into the externally visible
// [origin, destination] shape.
func (e Endpoints) Itinerary() []string {
	return []string{e.Origin, e.Destination}
}

// Compute runs the full pipeline and returns [origin, destination].
func Compute(paths FlightPathSet) ([]string, error) {
	if err := Validate(paths); err != nil {
		return nil, err
	}

	endpoints, err := Resolve(NewGraph(paths))
	if err != nil {
		return nil, err
	}

	return endpoints.Itinerary(), nil
}
