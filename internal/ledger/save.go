package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/xuri/excelize/v2"

	"github.com/ferrolab/ferroci/internal/monitoring"
)

// Save persists the table into dir as a CSV file plus a spreadsheet
// mirror, and returns both paths. The CSV is the authoritative form:
// failing to write it fails the save. The spreadsheet mirror is
// best-effort, logged and skipped on failure.
//
// The ledger file is exclusively owned for the duration of one
// merge-and-save cycle; an advisory file lock enforces that callers
// running against the same working directory serialize their batches.
func (t *Table) Save(dir, csvName, xlsxName string) (string, string, error) {
	lock := flock.New(filepath.Join(dir, "."+csvName+".lock"))
	if err := lock.Lock(); err != nil {
		return "", "", fmt.Errorf("ledger: locking %s: %w", dir, err)
	}
	defer lock.Unlock()

	csvPath := filepath.Join(dir, csvName)
	if err := t.writeCSV(csvPath); err != nil {
		return "", "", err
	}

	xlsxPath := filepath.Join(dir, xlsxName)
	if err := t.writeXLSX(xlsxPath); err != nil {
		// The mirror is convenience output only.
		monitoring.Warnf("saving spreadsheet mirror %s: %v", xlsxPath, err)
	}

	return csvPath, xlsxPath, nil
}

func (t *Table) writeCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ledger: creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.columns); err != nil {
		f.Close()
		return fmt.Errorf("ledger: writing header: %w", err)
	}
	for _, row := range t.Rows() {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("ledger: writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("ledger: flushing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ledger: closing %s: %w", path, err)
	}
	return nil
}

func (t *Table) writeXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for j, col := range t.columns {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}
	for i, row := range t.Rows() {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}
