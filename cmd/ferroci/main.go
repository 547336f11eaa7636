// Command ferroci is the command-line shell over the curve-analysis
// engine. Each invocation of "process" is one drop event: the engine
// decides the reference and candidate set, computes metrics and merges
// the results into the working directory's ledger. The shell only parses
// arguments, shows progress and renders tables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ferrolab/ferroci/internal/config"
)

var configPath string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ferroci",
		Short:         "Compare cyclic voltammetry sweeps against a reference",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML settings file")
	cmd.AddCommand(
		newProcessCommand(),
		newShowCommand(),
		newMetricsCommand(),
		newIntersectCommand(),
	)
	return cmd
}

func loadSettings() (config.Settings, error) {
	return config.Load(configPath)
}
