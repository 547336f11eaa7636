package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ferrolab/ferroci/internal/metrics"
)

func newMetricsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List the registered analysis metrics",
		Args:  cobra.NoArgs,
		RunE:  runMetrics,
	}
}

func runMetrics(cmd *cobra.Command, _ []string) error {
	registry := metrics.DefaultRegistry()

	rows := make([][]string, 0)
	for _, info := range registry.Describe() {
		m, _ := registry.Get(info.Name)
		rows = append(rows, []string{
			info.Name,
			info.Description,
			strconv.FormatBool(m.RequiresInterpolation()),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Description", "Interpolates"}, rows))
	return nil
}
