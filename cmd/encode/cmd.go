package encode

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relnet-dev/relnet/internal/dyadic"
	"github.com/relnet-dev/relnet/internal/encoder"
	"github.com/relnet-dev/relnet/internal/graph"
)

func NewEncodeCommand() *cobra.Command {
	var maxBits int

	cmd := &cobra.Command{
		Use:   "encode <graph> <cnf>",
		Short: "Encodes a reliability instance as a projected model counting problem",
		Long: `Encodes a K-terminal network reliability instance as a CNF formula
with a declared sampling set. The input is line-oriented:
c
c this is a comment
c problem type:
p g
c terminal vertices (at least 2):
T 1 4
c edges: endpoints and survival probability
e 1 2 0.5
e 1 3 0.625

The produced formula is satisfied by assignments under which the
terminals are NOT all connected, so the projected count over the
sampling set divided by 2^(sampling-set size) is the unreliability.`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return encode(args[0], args[1], maxBits)
		},
	}

	cmd.Flags().IntVar(&maxBits, "max-bits", dyadic.DefaultMaxBits, "maximum number of bits used to encode one edge probability")
	return cmd
}

func encode(graphPath, cnfPath string, maxBits int) error {
	graphFile, err := os.Open(graphPath)
	if err != nil {
		return fmt.Errorf("error opening graph file (%s): %w", graphPath, err)
	}
	defer graphFile.Close()

	g, err := graph.Parse(graphFile)
	if err != nil {
		return fmt.Errorf("error parsing graph file (%s): %w", graphPath, err)
	}

	formula, err := encoder.Encode(g, encoder.WithMaxBits(maxBits))
	if err != nil {
		return fmt.Errorf("error encoding graph (%s): %w", graphPath, err)
	}

	cnfFile, err := os.Create(cnfPath)
	if err != nil {
		return fmt.Errorf("error creating cnf file (%s): %w", cnfPath, err)
	}
	if err := formula.Write(cnfFile); err != nil {
		cnfFile.Close()
		return fmt.Errorf("error writing cnf file (%s): %w", cnfPath, err)
	}
	if err := cnfFile.Close(); err != nil {
		return fmt.Errorf("error writing cnf file (%s): %w", cnfPath, err)
	}

	fmt.Printf("[relnet] CNF file %q saved\n", cnfPath)
	fmt.Printf("[relnet] Number of sampling variables is %d\n", len(formula.Sampling))
	return nil
}
