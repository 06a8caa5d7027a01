package graph

import "fmt"

// FormatError reports a malformed input line, an unknown directive, a
// self-loop, or a duplicate edge declaration.
type FormatError string

func (e FormatError) Error() string {
	return fmt.Sprintf("invalid graph format: %s", string(e))
}

// ProbabilityError reports an edge probability outside [0, 1].
type ProbabilityError struct {
	U, V Vertex
	P    float64
}

func (e ProbabilityError) Error() string {
	return fmt.Sprintf("edge %q %q: probability %v is outside [0, 1]", e.U, e.V, e.P)
}

// TerminalError reports a terminal set that is too small or that names
// vertices absent from every edge.
type TerminalError string

func (e TerminalError) Error() string {
	return fmt.Sprintf("invalid terminal set: %s", string(e))
}
