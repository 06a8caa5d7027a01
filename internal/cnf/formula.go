// Package cnf holds the clausal-normal-form formula value produced by
// the encoder and its DIMACS serialization, including the `c ind`
// sampling-set declaration understood by projected model counters.
package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Formula is an immutable CNF formula. Variable ids are the consecutive
// integers 1..NumVars; Sampling lists the ids the counter must project
// over (for encoder output, exactly the coin variables 1..n).
type Formula struct {
	NumVars  int
	Clauses  [][]int
	Sampling []int
}

// indPerLine is how many sampling ids share one `c ind` line, matching
// the convention ApproxMC inputs commonly use.
const indPerLine = 10

// Write serializes the formula in DIMACS format: the problem header,
// the sampling-set declaration, then one 0-terminated clause per line.
// The output is a deterministic function of the receiver.
func (f *Formula) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p cnf %d %d\n", f.NumVars, len(f.Clauses))

	for start := 0; start < len(f.Sampling); start += indPerLine {
		end := start + indPerLine
		if end > len(f.Sampling) {
			end = len(f.Sampling)
		}
		bw.WriteString("c ind")
		for _, id := range f.Sampling[start:end] {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(id))
		}
		bw.WriteString(" 0\n")
	}

	for _, clause := range f.Clauses {
		for _, lit := range clause {
			bw.WriteString(strconv.Itoa(lit))
			bw.WriteByte(' ')
		}
		bw.WriteString("0\n")
	}
	return bw.Flush()
}

// Eval reports whether the full assignment satisfies every clause.
// assignment[i] is the value of variable i+1.
func (f *Formula) Eval(assignment []bool) bool {
	for _, clause := range f.Clauses {
		sat := false
		for _, lit := range clause {
			if lit > 0 && assignment[lit-1] || lit < 0 && !assignment[-lit-1] {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}
