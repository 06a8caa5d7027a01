package encoder

import (
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/relnet-dev/relnet/internal/dyadic"
)

// litMap owns the logic circuit in which all encoding-time literals
// live: the per-edge coin variables, the comparator gates defining the
// edge-state literals, and the per-vertex marking variables. Final
// DIMACS variable ids are assigned later by the assembler; litMap only
// guarantees that allocation order is a deterministic function of the
// input graph.
type litMap struct {
	c     *logic.C
	coins []z.Lit
}

func newLitMap() *litMap {
	return &litMap{c: logic.NewC()}
}

// encodeEdge allocates the coin variables for one edge and returns its
// edge-state literal, defined as "the coin vector, read MSB-first as an
// unsigned binary number, is less than K". Exactly K of the 2^Bits coin
// assignments make the literal true, so under uniform coins the edge is
// up with probability exactly K/2^Bits.
//
// A probability of 0 or 1 has no coins; the state literal is the
// circuit constant and is folded away at clause emission.
func (lm *litMap) encodeEdge(d dyadic.Dyadic) z.Lit {
	if d.Bits == 0 {
		if d.K == 1 {
			return lm.c.T
		}
		return lm.c.F
	}

	bits := make([]z.Lit, d.Bits)
	for i := range bits {
		bits[i] = lm.c.Lit()
		lm.coins = append(lm.coins, bits[i])
	}

	// Standard unsigned comparison against the constant K, built from
	// the least significant bit up: value < K on the suffix starting at
	// bit i holds iff bit i is below K's bit, or equal and the strictly
	// lower suffix is already below.
	lt := lm.c.F
	for i := d.Bits - 1; i >= 0; i-- {
		if d.K>>uint(d.Bits-1-i)&1 == 1 {
			lt = lm.c.Or(bits[i].Not(), lt)
		} else {
			lt = lm.c.And(bits[i].Not(), lt)
		}
	}
	return lt
}

// mark allocates a fresh marking variable. Marking variables are plain
// circuit inputs: they acquire meaning only through the clauses the
// connectivity encoder emits about them.
func (lm *litMap) mark() z.Lit {
	return lm.c.Lit()
}
