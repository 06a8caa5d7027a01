package cnf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a DIMACS CNF formula, including `c ind` sampling-set
// declarations. It validates that clauses are 0-terminated, that every
// literal stays within the declared variable count, and that the clause
// count matches the header.
func Parse(r io.Reader) (*Formula, error) {
	reader := bufio.NewReader(r)

	f := &Formula{NumVars: -1}
	declaredClauses := 0

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error reading dimacs data: %w", err)
		}
		atEOF := errors.Is(err, io.EOF)

		fields := strings.Fields(line)
		switch {
		case len(fields) == 0:
			// blank line

		case fields[0] == "c":
			// `c ind <ids> 0` declares part of the sampling set; any
			// other comment is ignored.
			if len(fields) >= 2 && fields[1] == "ind" {
				ids, err := parseLits(fields[2:])
				if err != nil {
					return nil, fmt.Errorf("invalid sampling-set line (%s): %w", strings.TrimSpace(line), err)
				}
				f.Sampling = append(f.Sampling, ids...)
			}

		case fields[0] == "p":
			if f.NumVars >= 0 {
				return nil, fmt.Errorf("duplicate header line (%s)", strings.TrimSpace(line))
			}
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("invalid header (%s), expected 'p cnf <variables> <clauses>'", strings.TrimSpace(line))
			}
			if f.NumVars, err = strconv.Atoi(fields[2]); err != nil || f.NumVars < 0 {
				return nil, fmt.Errorf("invalid variable count (%s)", fields[2])
			}
			if declaredClauses, err = strconv.Atoi(fields[3]); err != nil || declaredClauses < 0 {
				return nil, fmt.Errorf("invalid clause count (%s)", fields[3])
			}
			f.Clauses = make([][]int, 0, declaredClauses)

		default:
			if f.NumVars < 0 {
				return nil, fmt.Errorf("missing header 'p cnf <variables> <clauses>'")
			}
			clause, err := parseLits(fields)
			if err != nil {
				return nil, fmt.Errorf("invalid clause (%s): %w", strings.TrimSpace(line), err)
			}
			for _, lit := range clause {
				if lit > f.NumVars || -lit > f.NumVars {
					return nil, fmt.Errorf("invalid clause (%s): literal %d out of range", strings.TrimSpace(line), lit)
				}
			}
			f.Clauses = append(f.Clauses, clause)
		}

		if atEOF {
			break
		}
	}

	if f.NumVars < 0 {
		return nil, fmt.Errorf("missing header 'p cnf <variables> <clauses>'")
	}
	if len(f.Clauses) != declaredClauses {
		return nil, fmt.Errorf("header declares %d clauses, found %d", declaredClauses, len(f.Clauses))
	}
	// An undeclared sampling id would silently inflate the projection
	// denominator, so the set is held to the declared variable count.
	for _, id := range f.Sampling {
		if id < 1 || id > f.NumVars {
			return nil, fmt.Errorf("sampling-set id %d out of range [1, %d]", id, f.NumVars)
		}
	}
	return f, nil
}

// parseLits parses a 0-terminated run of literals.
func parseLits(fields []string) ([]int, error) {
	if len(fields) == 0 || fields[len(fields)-1] != "0" {
		return nil, errors.New("does not end with 0")
	}
	lits := make([]int, 0, len(fields)-1)
	for _, field := range fields[:len(fields)-1] {
		lit, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%s is not a number", field)
		}
		if lit == 0 {
			return nil, errors.New("0 is not a valid literal")
		}
		lits = append(lits, lit)
	}
	return lits, nil
}
