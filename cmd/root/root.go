package root

import (
	"github.com/spf13/cobra"

	"github.com/relnet-dev/relnet/cmd/count"

	"github.com/relnet-dev/relnet/cmd/encode"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "relnet",
		Short: "relnet reduces K-terminal network reliability to projected model counting",
		Long: `relnet translates a K-terminal network reliability instance into a CNF
formula with a declared sampling set, so that a projected model counter
(e.g. ApproxMC) can estimate the probability that the terminal vertices
stay connected under independent random edge failures.`,
	}

	// add sub-commands
	rootCmd.AddCommand(encode.NewEncodeCommand())
	rootCmd.AddCommand(count.NewCountCommand())

	return rootCmd
}
