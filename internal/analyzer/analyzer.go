// Package analyzer drives the batch pipeline: parse each candidate file,
// compute every registered metric against the active reference curve, and
// merge the results into the working directory's ledger. Per-file failures
// are logged and skipped; a batch succeeds partially rather than
// all-or-nothing.
package analyzer

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ferrolab/ferroci/internal/config"
	"github.com/ferrolab/ferroci/internal/curve"
	"github.com/ferrolab/ferroci/internal/cvfile"
	"github.com/ferrolab/ferroci/internal/ledger"
	"github.com/ferrolab/ferroci/internal/metrics"
	"github.com/ferrolab/ferroci/internal/monitoring"
)

// ErrNoReference is returned when a batch is started before a reference
// curve is available.
var ErrNoReference = errors.New("analyzer: no reference curve set")

// NamedSeries pairs a parsed curve with its source filename, handed back
// to the shell for display.
type NamedSeries struct {
	Filename string
	Series   curve.Series
}

// ProgressFunc receives (completed, total) after each file in a batch. It
// is invoked synchronously; the batch does not continue until it returns.
type ProgressFunc func(completed, total int)

// Analyzer orchestrates parsing, metric calculation and ledger merging
// for one working directory. It is single-threaded: callers must serialize
// batches.
type Analyzer struct {
	registry *metrics.Registry
	cfg      config.Settings

	refPath   string
	refMeta   *cvfile.Metadata
	refSeries curve.Series

	table     *ledger.Table
	pending   []*ledger.Record
	processed []NamedSeries
}

// New creates an analyzer over the given metric registry and settings.
func New(registry *metrics.Registry, cfg config.Settings) *Analyzer {
	return &Analyzer{
		registry: registry,
		cfg:      cfg,
		table:    ledger.NewTable(),
	}
}

// SetReference parses path and pins it as the reference curve for
// subsequent batches.
func (a *Analyzer) SetReference(path string) error {
	meta, series, err := cvfile.ParseFile(path)
	if err != nil {
		return fmt.Errorf("analyzer: loading reference: %w", err)
	}
	a.refPath = path
	a.refMeta = meta
	a.refSeries = series
	return nil
}

// Reference returns the active reference curve and its filename.
func (a *Analyzer) Reference() (curve.Series, string) {
	return a.refSeries, filepath.Base(a.refPath)
}

// ProcessBatch runs every path through parse and metric calculation
// against the active reference, accumulating one ledger record per
// successfully processed file. Files that fail to parse or process are
// logged and excluded; processing continues. onProgress, if non-nil, is
// called synchronously after each file.
//
// The returned slice holds the parsed curves of this batch for display.
func (a *Analyzer) ProcessBatch(paths []string, onProgress ProgressFunc) ([]NamedSeries, error) {
	if a.refPath == "" {
		return nil, ErrNoReference
	}
	refName := filepath.Base(a.refPath)
	batchID := uuid.NewString()[:8]
	monitoring.Infof("batch %s: processing %d file(s) against %s", batchID, len(paths), refName)

	var batch []NamedSeries
	for i, path := range paths {
		if err := a.processFile(path, refName); err != nil {
			monitoring.Errorf("batch %s: processing %s: %v", batchID, path, err)
		} else {
			batch = append(batch, a.processed[len(a.processed)-1])
		}
		if onProgress != nil {
			onProgress(i+1, len(paths))
		}
	}

	monitoring.Infof("batch %s: %d of %d file(s) processed", batchID, len(batch), len(paths))
	return batch, nil
}

// processFile parses one file, computes all metrics and stages the
// resulting record for the next merge.
func (a *Analyzer) processFile(path, refName string) error {
	meta, series, err := cvfile.ParseFile(path)
	if err != nil {
		return err
	}

	values := a.registry.CalculateAll(series, a.refSeries)

	rec := ledger.NewRecord()
	for _, key := range meta.Keys() {
		v, _ := meta.Lookup(key)
		rec.Set(key, v)
	}
	for _, name := range a.registry.Names() {
		rec.Set(name, values[name])
	}
	rec.Set(ledger.ReferenceFlagColumn, meta.Filename() == refName)
	rec.Set(ledger.ReferenceFilenameColumn, refName)

	a.pending = append(a.pending, rec)
	a.processed = append(a.processed, NamedSeries{Filename: meta.Filename(), Series: series})
	return nil
}

// ResultsTable merges all staged records into the accumulated table and
// returns it. Records for filenames already present are dropped with a
// log entry; the candidate selection in PlanBatch makes that unreachable
// in normal operation.
func (a *Analyzer) ResultsTable() *ledger.Table {
	for _, rec := range a.pending {
		if err := a.table.Append(rec); err != nil {
			monitoring.Errorf("merging results: %v", err)
		}
	}
	a.pending = nil
	return a.table
}

// SaveResults merges and persists the ledger into dir, returning the CSV
// and spreadsheet paths.
func (a *Analyzer) SaveResults(dir string) (string, string, error) {
	table := a.ResultsTable()
	return table.Save(dir, a.cfg.LedgerFilename, a.cfg.SpreadsheetFilename)
}

// Processed returns every curve parsed by this analyzer across batches.
func (a *Analyzer) Processed() []NamedSeries {
	out := make([]NamedSeries, len(a.processed))
	copy(out, a.processed)
	return out
}
