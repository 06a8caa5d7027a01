// Package encoder reduces a K-terminal reliability instance to a CNF
// formula with a declared sampling set, suitable for a projected model
// counter such as ApproxMC.
//
// Each edge receives coin variables realizing its survival probability
// as an exact dyadic fraction, a comparator circuit defines the
// edge-state literal from the coins, and component-marking clauses tie
// the edge states to terminal connectivity. The whole pipeline is a
// single deterministic pass: identical inputs yield identical formulas.
//
// Polarity convention: a satisfying assignment witnesses a
// disconnection of the terminal set, so the projected count over the
// sampling set, divided by 2^|sampling set|, is the network
// UNreliability.
package encoder

import (
	"fmt"

	"github.com/go-air/gini/z"

	"github.com/relnet-dev/relnet/internal/cnf"
	"github.com/relnet-dev/relnet/internal/dyadic"
	"github.com/relnet-dev/relnet/internal/graph"
)

type Option func(*options)

type options struct {
	maxBits int
}

// WithMaxBits sets the bit budget for probability conversion.
func WithMaxBits(n int) Option {
	return func(o *options) {
		o.maxBits = n
	}
}

// Encode translates g into a CNF formula. The sampling set is exactly
// the coin variables, numbered 1..n in edge order; comparator clauses
// precede connectivity clauses. Probabilities not representable within
// the bit budget surface as a dyadic.OverflowError.
func Encode(g *graph.Graph, opts ...Option) (*cnf.Formula, error) {
	o := options{maxBits: dyadic.DefaultMaxBits}
	for _, opt := range opts {
		opt(&o)
	}

	lm := newLitMap()

	// Probability encoding: coins and edge-state comparators, in edge
	// order.
	states := make([]z.Lit, len(g.Edges()))
	for i, e := range g.Edges() {
		d, err := dyadic.FromFloat(e.P, o.maxBits)
		if err != nil {
			return nil, fmt.Errorf("edge %q %q: %w", e.U, e.V, err)
		}
		states[i] = lm.encodeEdge(d)
	}

	asm := newAssembler()
	for _, coin := range lm.coins {
		asm.reserve(coin.Var())
	}

	// Tseitin transformation of the comparator circuits, then the
	// connectivity clauses over the resulting edge-state literals.
	lm.c.ToCnf(asm)
	emitConnectivity(lm, asm, g, states)

	sampling := make([]int, len(lm.coins))
	for i := range sampling {
		sampling[i] = i + 1
	}
	return &cnf.Formula{
		NumVars:  asm.numVars,
		Clauses:  asm.clauses,
		Sampling: sampling,
	}, nil
}
