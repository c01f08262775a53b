package itinerary

// Degree holds the number of outgoing and incoming edges of a node.
type Degree struct {
	Out int
	In  int
}

// Diff is out-degree minus in-degree.
func (d Degree) Diff() int {
	return d.Out - d.In
}

// Graph is a directed multigraph keyed by airport code.
//
// Nodes are kept in first-appearance order so that enumeration is stable for
// identical input. Repeated edges are counted, not collapsed.
type Graph struct {
	nodes   []string
	adj     map[string][]string
	inDeg   map[string]int
	edgeCnt int
}

// NewGraph builds a graph with one node per distinct code and one directed
// edge per flight path.
func NewGraph(paths FlightPathSet) *Graph {
	g := &Graph{
		nodes: make([]string, 0, len(paths)+1),
		adj:   make(map[string][]string, len(paths)+1),
		inDeg: make(map[string]int, len(paths)+1),
	}
	for _, fp := range paths {
		g.addEdge(fp.Origin, fp.Destination)
	}
	return g
}

func (g *Graph) addNode(code string) {
	if _, ok := g.adj[code]; ok {
		return
	}
	g.adj[code] = nil
	g.nodes = append(g.nodes, code)
}

func (g *Graph) addEdge(from, to string) {
	g.addNode(from)
	g.addNode(to)
	g.adj[from] = append(g.adj[from], to)
	g.inDeg[to]++
	g.edgeCnt++
}

// Nodes returns the airport codes in first-appearance order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Degree returns the out/in degree of code. Unknown codes have zero degree.
func (g *Graph) Degree(code string) Degree {
	return Degree{Out: len(g.adj[code]), In: g.inDeg[code]}
}

// EdgeCount is the number of flight paths the graph was built from.
func (g *Graph) EdgeCount() int {
	return g.edgeCnt
}
