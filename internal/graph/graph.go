package graph

import "fmt"

// Vertex values identify vertices of the input graph. They are opaque:
// the encoder never interprets them beyond equality.
type Vertex string

func (v Vertex) String() string {
	return string(v)
}

// Edge is an undirected edge between U and V that is "up" (survives)
// with probability P, independently of every other edge.
type Edge struct {
	U, V Vertex
	P    float64
}

// Graph is a validated K-terminal reliability instance: an undirected
// graph, a per-edge survival probability, and the set of terminal
// vertices whose mutual connectivity is under study. A Graph is
// immutable once constructed.
type Graph struct {
	vertices  []Vertex
	edges     []Edge
	terminals []Vertex
}

// New constructs a Graph from the given edges and terminals. The vertex
// set is derived from the edge endpoints, ordered by first appearance.
// Validation failures are reported as FormatError, ProbabilityError or
// TerminalError values.
func New(edges []Edge, terminals []Vertex) (*Graph, error) {
	g := &Graph{
		edges:     make([]Edge, len(edges)),
		terminals: make([]Vertex, len(terminals)),
	}
	copy(g.edges, edges)
	copy(g.terminals, terminals)

	seen := make(map[Vertex]struct{}, 2*len(edges))
	pairs := make(map[[2]Vertex]struct{}, len(edges))
	for _, e := range g.edges {
		if e.U == e.V {
			return nil, FormatError(fmt.Sprintf("self-loop on vertex %q", e.U))
		}
		if e.P < 0 || e.P > 1 {
			return nil, ProbabilityError{U: e.U, V: e.V, P: e.P}
		}
		pair := [2]Vertex{e.U, e.V}
		if e.V < e.U {
			pair = [2]Vertex{e.V, e.U}
		}
		if _, ok := pairs[pair]; ok {
			return nil, FormatError(fmt.Sprintf("duplicate edge %q %q", e.U, e.V))
		}
		pairs[pair] = struct{}{}
		for _, v := range []Vertex{e.U, e.V} {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				g.vertices = append(g.vertices, v)
			}
		}
	}

	if len(g.terminals) < 2 {
		return nil, TerminalError(fmt.Sprintf("need at least 2 terminals, got %d", len(g.terminals)))
	}
	distinct := make(map[Vertex]struct{}, len(g.terminals))
	for _, t := range g.terminals {
		if _, ok := distinct[t]; ok {
			return nil, TerminalError(fmt.Sprintf("terminal %q declared twice", t))
		}
		distinct[t] = struct{}{}
		if _, ok := seen[t]; !ok {
			return nil, TerminalError(fmt.Sprintf("terminal %q is not an endpoint of any edge", t))
		}
	}

	return g, nil
}

// Vertices returns the vertex set in first-appearance order.
func (g *Graph) Vertices() []Vertex {
	return g.vertices
}

// Edges returns the edge list in declaration order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Terminals returns the terminal vertices in declaration order. The
// first terminal serves as the root of the connectivity encoding.
func (g *Graph) Terminals() []Vertex {
	return g.terminals
}
