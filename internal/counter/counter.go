// Package counter turns a produced formula into a number: either
// exactly, by enumerating the sampling set against an in-process SAT
// solver, or approximately, by invoking an external ApproxMC binary.
package counter

import (
	"fmt"
	"math"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/relnet-dev/relnet/internal/cnf"
)

const satisfiable = 1

// maxBruteForceVars caps exact enumeration; beyond this the external
// counter is the only practical option.
const maxBruteForceVars = 30

// BruteForce returns the exact projected model count of f over its
// sampling set: the number of sampling-set assignments under which the
// remaining variables can be completed to a model. Each assignment is
// checked as a set of assumptions against a single incremental solver.
func BruteForce(f *cnf.Formula) (uint64, error) {
	n := len(f.Sampling)
	if n > maxBruteForceVars {
		return 0, fmt.Errorf("sampling set has %d variables, refusing to enumerate more than %d", n, maxBruteForceVars)
	}

	g := gini.New()
	for _, clause := range f.Clauses {
		for _, lit := range clause {
			g.Add(dimacsLit(lit))
		}
		g.Add(z.LitNull)
	}

	var count uint64
	assumptions := make([]z.Lit, n)
	for bits := uint64(0); bits < uint64(1)<<uint(n); bits++ {
		for i, id := range f.Sampling {
			if bits>>uint(i)&1 == 1 {
				assumptions[i] = z.Var(id).Pos()
			} else {
				assumptions[i] = z.Var(id).Neg()
			}
		}
		g.Assume(assumptions...)
		if g.Solve() == satisfiable {
			count++
		}
	}
	return count, nil
}

// dimacsLit translates a signed DIMACS literal into a solver literal.
func dimacsLit(lit int) z.Lit {
	if lit < 0 {
		return z.Var(-lit).Neg()
	}
	return z.Var(lit).Pos()
}

// Unreliability converts a projected count of count·2^exp disconnection
// witnesses over n sampling variables into the network unreliability.
func Unreliability(count uint64, exp int, n int) float64 {
	return math.Ldexp(float64(count), exp-n)
}
