package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a K-terminal reliability instance in the line-oriented
// SISRRA format:
//
//	c <comment>
//	p g
//	T <v1> <v2> ...
//	e <u> <v> <probability>
//
// where the probability is the survival ("up") probability of the edge,
// a decimal in [0, 1]. Exactly one `p g` line and exactly one `T` line
// are required; a second declaration of the same unordered vertex pair
// is rejected even if the probabilities agree.
func Parse(r io.Reader) (*Graph, error) {
	reader := bufio.NewReader(r)

	var (
		edges      []Edge
		terminals  []Vertex
		sawProblem bool
		lineNo     int
	)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error reading graph data: %w", err)
		}
		atEOF := errors.Is(err, io.EOF)
		lineNo++

		fields := strings.Fields(line)
		switch {
		case len(fields) == 0:
			// blank line

		case fields[0] == "c":
			// comment

		case fields[0] == "p":
			if sawProblem {
				return nil, FormatError(fmt.Sprintf("line %d: duplicate problem line", lineNo))
			}
			if len(fields) != 2 || fields[1] != "g" {
				return nil, FormatError(fmt.Sprintf("line %d: invalid problem line (%s), expected 'p g'", lineNo, strings.TrimSpace(line)))
			}
			sawProblem = true

		case fields[0] == "T":
			if terminals != nil {
				return nil, FormatError(fmt.Sprintf("line %d: duplicate terminal line", lineNo))
			}
			if len(fields) < 3 {
				return nil, TerminalError(fmt.Sprintf("line %d: need at least 2 terminals", lineNo))
			}
			for _, f := range fields[1:] {
				terminals = append(terminals, Vertex(f))
			}

		case fields[0] == "e":
			if len(fields) != 4 {
				return nil, FormatError(fmt.Sprintf("line %d: invalid edge line (%s), expected 'e <u> <v> <p>'", lineNo, strings.TrimSpace(line)))
			}
			p, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, FormatError(fmt.Sprintf("line %d: invalid probability (%s)", lineNo, fields[3]))
			}
			edges = append(edges, Edge{U: Vertex(fields[1]), V: Vertex(fields[2]), P: p})

		default:
			return nil, FormatError(fmt.Sprintf("line %d: unknown directive (%s)", lineNo, fields[0]))
		}

		if atEOF {
			break
		}
	}

	if !sawProblem {
		return nil, FormatError("missing problem line 'p g'")
	}
	if len(edges) == 0 {
		return nil, FormatError("no edges declared")
	}
	if terminals == nil {
		return nil, TerminalError("no terminal line 'T' declared")
	}

	return New(edges, terminals)
}
