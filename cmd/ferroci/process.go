package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ferrolab/ferroci/internal/analyzer"
	"github.com/ferrolab/ferroci/internal/metrics"
)

func newProcessCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "process <files...>",
		Short: "Analyse dropped files against the reference and update the ledger",
		Long: "Process acts as one drop event. In a directory with no ledger the\n" +
			"first file becomes the reference and every supported file in the\n" +
			"directory is analysed; afterwards only newly dropped files are,\n" +
			"with already-recorded filenames skipped.",
		Args: cobra.MinimumNArgs(1),
		RunE: runProcess,
	}
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	paths := make([]string, len(args))
	for i, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", arg, err)
		}
		paths[i] = abs
	}
	dir := filepath.Dir(paths[0])

	an := analyzer.New(metrics.DefaultRegistry(), cfg)
	plan, err := an.PlanBatch(dir, paths)
	if err != nil {
		return err
	}
	if len(plan.Skipped) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "skipped (already processed): %s\n", strings.Join(plan.Skipped, ", "))
	}
	if err := an.SetReference(plan.Reference); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "reference: %s\n", filepath.Base(plan.Reference))

	if len(plan.Candidates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no files to process")
		return nil
	}

	bar := progressbar.NewOptions(len(plan.Candidates),
		progressbar.OptionSetDescription("processing"),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionClearOnFinish(),
	)
	processed, err := an.ProcessBatch(plan.Candidates, func(done, total int) {
		_ = bar.Set(done)
	})
	if err != nil {
		return err
	}

	csvPath, xlsxPath, err := an.SaveResults(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "processed %d of %d file(s)\n", len(processed), len(plan.Candidates))
	fmt.Fprintf(out, "results: %s\n", csvPath)
	fmt.Fprintf(out, "spreadsheet: %s\n", xlsxPath)
	return nil
}
