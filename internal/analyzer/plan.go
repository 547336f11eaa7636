package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ferrolab/ferroci/internal/ledger"
	"github.com/ferrolab/ferroci/internal/monitoring"
)

// BatchPlan is the outcome of one drop event: which file is the
// reference, which files will be processed, and which were skipped
// because the ledger already holds them.
type BatchPlan struct {
	Reference  string
	Candidates []string
	Skipped    []string
}

// PlanBatch resolves a drop event against the working directory's state.
//
// With no persisted ledger the directory is uninitialized: the first
// dropped file becomes the reference and every supported file in the
// directory except the ledger output file is a candidate, the reference
// itself included.
//
// With a persisted ledger the reference is recovered from the record
// flagged is_reference and only the dropped files are candidates,
// excluding the reference, the ledger file, and filenames already
// present, which are reported as skipped.
//
// PlanBatch also loads the persisted table, so a following
// ProcessBatch/SaveResults cycle merges instead of overwriting.
func (a *Analyzer) PlanBatch(dir string, dropped []string) (BatchPlan, error) {
	if len(dropped) == 0 {
		return BatchPlan{}, fmt.Errorf("analyzer: empty drop")
	}

	ledgerPath := filepath.Join(dir, a.cfg.LedgerFilename)
	if _, err := os.Stat(ledgerPath); err != nil {
		if !os.IsNotExist(err) {
			return BatchPlan{}, fmt.Errorf("analyzer: checking %s: %w", ledgerPath, err)
		}
		return a.planUninitialized(dir, dropped)
	}
	return a.planInitialized(dir, dropped, ledgerPath)
}

func (a *Analyzer) planUninitialized(dir string, dropped []string) (BatchPlan, error) {
	plan := BatchPlan{Reference: dropped[0]}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return BatchPlan{}, fmt.Errorf("analyzer: scanning %s: %w", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !a.cfg.Supported(name) {
			continue
		}
		if strings.EqualFold(name, a.cfg.LedgerFilename) {
			continue
		}
		plan.Candidates = append(plan.Candidates, filepath.Join(dir, name))
	}

	monitoring.Infof("new working directory %s: %d candidate file(s), reference %s",
		dir, len(plan.Candidates), filepath.Base(plan.Reference))
	return plan, nil
}

func (a *Analyzer) planInitialized(dir string, dropped []string, ledgerPath string) (BatchPlan, error) {
	table, err := ledger.Load(ledgerPath)
	if err != nil {
		return BatchPlan{}, err
	}
	a.table = table

	refName, ok := table.FindReference()
	if !ok {
		return BatchPlan{}, fmt.Errorf("%w: persisted ledger has no reference record", ErrNoReference)
	}
	refPath := filepath.Join(dir, refName)
	if _, err := os.Stat(refPath); err != nil {
		return BatchPlan{}, fmt.Errorf("%w: reference file %s not found in %s", ErrNoReference, refName, dir)
	}

	plan := BatchPlan{Reference: refPath}
	for _, path := range dropped {
		base := filepath.Base(path)
		switch {
		case base == refName:
			// The reference is never reprocessed once recorded.
		case strings.EqualFold(base, a.cfg.LedgerFilename):
			// The ledger output file is not input.
		case table.Has(base):
			plan.Skipped = append(plan.Skipped, base)
		default:
			plan.Candidates = append(plan.Candidates, path)
		}
	}

	if len(plan.Skipped) > 0 {
		monitoring.Infof("skipping already processed: %s", strings.Join(plan.Skipped, ", "))
	}
	return plan, nil
}
