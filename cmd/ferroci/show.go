package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ferrolab/ferroci/internal/ledger"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [dir]",
		Short: "Render the persisted results ledger of a working directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	table, err := ledger.Load(filepath.Join(dir, cfg.LedgerFilename))
	if err != nil {
		return err
	}
	if table.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no results recorded")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(table.Columns(), table.Rows()))
	return nil
}
