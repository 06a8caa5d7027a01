package counter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// ApproxMC invokes an external approximate model counter on a formula
// file. The counter reads the `c ind` sampling-set declaration from the
// file itself, so the only inputs are the path and the PAC parameters.
type ApproxMC struct {
	// Path of the binary; "approxmc" resolves via PATH when empty.
	Path string
	// Epsilon and Delta are the tolerance and confidence parameters.
	Epsilon float64
	Delta   float64
}

// solutionsLine matches the legacy "Number of solutions is: M x 2^E"
// report; newer releases emit "s mc <count>" instead. Both are parsed.
var solutionsLine = regexp.MustCompile(`(\d+)\s*x\s*2\^(\d+)`)

// Count runs the counter and returns the reported projected count as
// mantissa and binary exponent.
func (a *ApproxMC) Count(ctx context.Context, cnfPath string) (count uint64, exp int, err error) {
	path := a.Path
	if path == "" {
		path = "approxmc"
	}
	cmd := exec.CommandContext(ctx, path,
		"--epsilon", strconv.FormatFloat(a.Epsilon, 'f', -1, 64),
		"--delta", strconv.FormatFloat(a.Delta, 'f', -1, 64),
		cnfPath)

	out, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("error running %s: %w", path, err)
	}
	return parseCount(out)
}

func parseCount(out []byte) (count uint64, exp int, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if rest, ok := strings.CutPrefix(line, "s mc "); ok {
			count, err = strconv.ParseUint(strings.TrimSpace(rest), 10, 64)
			if err != nil {
				return 0, 0, fmt.Errorf("invalid count line (%s): %w", line, err)
			}
			return count, 0, nil
		}

		if m := solutionsLine.FindStringSubmatch(line); m != nil {
			if count, err = strconv.ParseUint(m[1], 10, 64); err != nil {
				return 0, 0, fmt.Errorf("invalid count line (%s): %w", line, err)
			}
			if exp, err = strconv.Atoi(m[2]); err != nil {
				return 0, 0, fmt.Errorf("invalid count line (%s): %w", line, err)
			}
			return count, exp, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("error reading counter output: %w", err)
	}
	return 0, 0, fmt.Errorf("no count found in counter output")
}
