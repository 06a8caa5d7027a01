package count

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relnet-dev/relnet/internal/cnf"
	"github.com/relnet-dev/relnet/internal/counter"
)

func NewCountCommand() *cobra.Command {
	var (
		exact   bool
		solver  string
		epsilon float64
		delta   float64
	)

	cmd := &cobra.Command{
		Use:   "count <cnf>",
		Short: "Counts a produced formula and reports the network (un)reliability",
		Long: `Counts the projected models of a formula produced by encode and derives
the network unreliability as count / 2^(sampling-set size).

By default the external ApproxMC binary performs the counting; --exact
enumerates the sampling set against an in-process SAT solver instead,
which is only practical for small sampling sets.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return count(cmd, args[0], exact, solver, epsilon, delta)
		},
	}

	cmd.Flags().BoolVar(&exact, "exact", false, "enumerate the sampling set with the built-in solver instead of calling ApproxMC")
	cmd.Flags().StringVar(&solver, "solver", "approxmc", "path of the ApproxMC binary")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 0.8, "ApproxMC tolerance parameter")
	cmd.Flags().Float64Var(&delta, "delta", 0.2, "ApproxMC confidence parameter")
	return cmd
}

func count(cmd *cobra.Command, cnfPath string, exact bool, solver string, epsilon, delta float64) error {
	cnfFile, err := os.Open(cnfPath)
	if err != nil {
		return fmt.Errorf("error opening cnf file (%s): %w", cnfPath, err)
	}
	defer cnfFile.Close()

	formula, err := cnf.Parse(cnfFile)
	if err != nil {
		return fmt.Errorf("error parsing cnf file (%s): %w", cnfPath, err)
	}

	var (
		models uint64
		exp    int
	)
	if exact {
		if models, err = counter.BruteForce(formula); err != nil {
			return err
		}
	} else {
		mc := &counter.ApproxMC{Path: solver, Epsilon: epsilon, Delta: delta}
		if models, exp, err = mc.Count(cmd.Context(), cnfPath); err != nil {
			return err
		}
	}

	unreliability := counter.Unreliability(models, exp, len(formula.Sampling))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "[relnet] Projected model count is %d x 2^%d over %d sampling variables\n", models, exp, len(formula.Sampling))
	fmt.Fprintf(out, "[relnet] Unreliability is %v\n", unreliability)
	fmt.Fprintf(out, "[relnet] Reliability is %v\n", 1-unreliability)
	return nil
}
