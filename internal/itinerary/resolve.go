package itinerary

// Resolve finds the unique origin (diff +1) and destination (diff -1) of the
// graph.
//
// Every node is classified before a verdict is given. Failures are reported in
// this order:
//
//  1. more than one origin candidate      -> NoStartingAirportDiscovered
//  2. more than one destination candidate -> NoEndingAirportDiscovered
//  3. a node with diff outside {-1, 0, 1} -> InvalidFlightPath
//  4. no origin candidate                 -> NoStartingAirportDiscovered
//  5. no destination candidate            -> NoEndingAirportDiscovered
//
// Connectivity is not checked on its own: a disconnected graph shows up as
// more than one candidate, or none.
func Resolve(g *Graph) (Endpoints, error) {
	var (
		origins      []string
		destinations []string
		unbalanced   bool
	)

	for _, node := range g.nodes {
		switch g.Degree(node).Diff() {
		case 1:
			origins = append(origins, node)
		case -1:
			destinations = append(destinations, node)
		case 0:
		default:
			unbalanced = true
		}
	}

	switch {
	case len(origins) > 1:
		return Endpoints{}, newError(KindNoStartingAirportDiscovered, msgManyStarting)
	case len(destinations) > 1:
		return Endpoints{}, newError(KindNoEndingAirportDiscovered, msgManyEnding)
	case unbalanced:
		return Endpoints{}, newError(KindInvalidFlightPath, msgUnbalancedNode)
	case len(origins) == 0:
		return Endpoints{}, newError(KindNoStartingAirportDiscovered, msgNoStarting)
	case len(destinations) == 0:
		return Endpoints{}, newError(KindNoEndingAirportDiscovered, msgNoEnding)
	}

	return Endpoints{Origin: origins[0], Destination: destinations[0]}, nil
}
