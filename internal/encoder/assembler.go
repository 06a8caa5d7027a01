package encoder

import (
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"
)

// assembler collects the final formula. It implements inter.Adder so
// the logic circuit can Tseitin-transform itself into it, and it
// performs the one renumbering pass of the pipeline: coin variables are
// reserved ids 1..n in edge order up front, and every other variable
// (Tseitin gates, marking variables, the circuit constant) receives the
// next consecutive id the first time it appears in a clause.
type assembler struct {
	ids     map[z.Var]int
	numVars int
	clauses [][]int
	cur     []int
}

var _ inter.Adder = (*assembler)(nil)

func newAssembler() *assembler {
	return &assembler{ids: make(map[z.Var]int)}
}

// reserve assigns the next id to v ahead of clause emission. Used for
// the sampling set, which must occupy ids 1..n regardless of where the
// coin variables first appear in the clause stream.
func (a *assembler) reserve(v z.Var) {
	a.idOf(v)
}

func (a *assembler) idOf(v z.Var) int {
	if id, ok := a.ids[v]; ok {
		return id
	}
	a.numVars++
	a.ids[v] = a.numVars
	return a.numVars
}

// Add appends one literal to the clause under construction; z.LitNull
// terminates the clause, mirroring the gini adder protocol.
func (a *assembler) Add(m z.Lit) {
	if m == z.LitNull {
		clause := make([]int, len(a.cur))
		copy(clause, a.cur)
		a.clauses = append(a.clauses, clause)
		a.cur = a.cur[:0]
		return
	}
	id := a.idOf(m.Var())
	if !m.IsPos() {
		id = -id
	}
	a.cur = append(a.cur, id)
}

func (a *assembler) addClause(ms ...z.Lit) {
	for _, m := range ms {
		a.Add(m)
	}
	a.Add(z.LitNull)
}
