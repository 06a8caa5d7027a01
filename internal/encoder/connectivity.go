package encoder

import (
	"github.com/go-air/gini/z"

	"github.com/relnet-dev/relnet/internal/graph"
)

// emitConnectivity emits the component-marking clauses tying the
// edge-state literals to terminal connectivity. One marking variable
// per vertex reads "this vertex sits on the root terminal's side of the
// candidate cut"; the root is the first terminal in input order.
//
//   - the root is marked (unit clause),
//   - an up edge forces equal marks on its endpoints (two clauses per
//     edge), so the marked set is a union of up-components containing
//     the root's component,
//   - at least one non-root terminal must be unmarked (one clause).
//
// For a fixed assignment of the edge-state literals the emitted clauses
// are satisfiable iff the up edges do NOT connect every terminal: a
// terminal can escape the marked set exactly when it lies outside the
// root's up-component. Satisfying assignments therefore witness
// disconnection, and the projected model count is the unreliability
// numerator.
func emitConnectivity(lm *litMap, asm *assembler, g *graph.Graph, states []z.Lit) {
	marks := make(map[graph.Vertex]z.Lit, len(g.Vertices()))
	for _, v := range g.Vertices() {
		marks[v] = lm.mark()
	}

	for i, e := range g.Edges() {
		mu, mv := marks[e.U], marks[e.V]
		switch states[i] {
		case lm.c.F:
			// never up, constrains nothing
		case lm.c.T:
			asm.addClause(mu.Not(), mv)
			asm.addClause(mu, mv.Not())
		default:
			asm.addClause(states[i].Not(), mu.Not(), mv)
			asm.addClause(states[i].Not(), mu, mv.Not())
		}
	}

	terminals := g.Terminals()
	asm.addClause(marks[terminals[0]])
	split := make([]z.Lit, 0, len(terminals)-1)
	for _, t := range terminals[1:] {
		split = append(split, marks[t].Not())
	}
	asm.addClause(split...)
}
