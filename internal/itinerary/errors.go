package itinerary

import "strings"

// Kind classifies why an itinerary could not be resolved.
type Kind string

const (
	KindEmptyFlightPaths            Kind = "EmptyFlightPaths"
	KindInvalidFlightPath           Kind = "InvalidFlightPath"
	KindNoStartingAirportDiscovered Kind = "NoStartingAirportDiscovered"
	KindNoEndingAirportDiscovered   Kind = "NoEndingAirportDiscovered"
)

// Code returns the kind as a machine-friendly UPPER_SNAKE_CASE code,
// e.g. "NoStartingAirportDiscovered" -> "NO_STARTING_AIRPORT_DISCOVERED".
func (k Kind) Code() string {
	var b strings.Builder
	for i, r := range string(k) {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// Error is the failure outcome of any pipeline stage.
//
// All kinds are client-input errors. Two errors are considered equal by
// errors.Is when their kinds match, so callers can test against the
// Err* sentinels below.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrEmptyFlightPaths            = &Error{Kind: KindEmptyFlightPaths}
	ErrInvalidFlightPath           = &Error{Kind: KindInvalidFlightPath}
	ErrNoStartingAirportDiscovered = &Error{Kind: KindNoStartingAirportDiscovered}
	ErrNoEndingAirportDiscovered   = &Error{Kind: KindNoEndingAirportDiscovered}
)

const (
	msgEmptyFlightPaths = "Flight paths given is empty, please provide one with valid values."
	msgSameAirports     = "Some of the flight paths given has the same origin and destination airports, which is not valid."
	msgUnbalancedNode   = "Failed to calculate the starting/ending airport — some non starting/ending airport has invalid paths from them"

	msgManyStarting = "Failed to calculate the starting airport — more than 1 potential starting airport found, possibly because the flight paths don't form a single connected path."
	msgManyEnding   = "Failed to calculate the ending airport — more than 1 potential ending airport found, possibly because the flight paths don't form a single connected path."
	msgNoStarting   = "Failed to calculate the starting airport — possibly due to the starting and ending airport being the same, or the flight paths don't form a single connected path."
	msgNoEnding     = "Failed to calculate the ending airport — possibly due to the starting and ending airport being the same, or the flight paths don't form a single connected path."
)

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}
