package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrDuplicateFilename is returned by Append when a record's filename is
// already present in the table.
var ErrDuplicateFilename = errors.New("ledger: duplicate filename")

// Table is an ordered set of records, unique by filename. Columns are the
// union of every key ever seen: loaded-file column order first, then new
// keys in first-seen order.
type Table struct {
	columns []string
	seen    map[string]bool
	records []*Record
	byName  map[string]*Record
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		seen:   make(map[string]bool),
		byName: make(map[string]*Record),
	}
}

// Load reads a persisted ledger CSV. A missing file yields an empty table:
// the working directory is simply uninitialized.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewTable(), nil
		}
		return nil, fmt.Errorf("ledger: opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return NewTable(), nil
		}
		return nil, fmt.Errorf("ledger: reading header of %s: %w", path, err)
	}

	t := NewTable()
	for _, col := range header {
		t.addColumn(col)
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ledger: reading %s: %w", path, err)
		}
		rec := NewRecord()
		for i, col := range header {
			if i < len(row) {
				rec.Set(col, row[i])
			}
		}
		if err := t.Append(rec); err != nil {
			return nil, fmt.Errorf("ledger: %s: %w", path, err)
		}
	}
	return t, nil
}

// Append adds a record, enforcing the filename-uniqueness invariant and
// folding any new keys into the column union.
func (t *Table) Append(rec *Record) error {
	name := rec.Filename()
	if name != "" {
		if _, ok := t.byName[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateFilename, name)
		}
		t.byName[name] = rec
	}
	for _, key := range rec.Keys() {
		t.addColumn(key)
	}
	t.records = append(t.records, rec)
	return nil
}

// Has reports whether a filename is already present.
func (t *Table) Has(filename string) bool {
	_, ok := t.byName[filename]
	return ok
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// Columns returns the current column union in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Records returns the records in append order.
func (t *Table) Records() []*Record {
	out := make([]*Record, len(t.records))
	copy(out, t.records)
	return out
}

// Rows returns every record serialized against the full column union,
// missing values as empty strings.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.records))
	for i, rec := range t.records {
		row := make([]string, len(t.columns))
		for j, col := range t.columns {
			row[j] = rec.Field(col)
		}
		rows[i] = row
	}
	return rows
}

// FindReference returns the filename of the record flagged as the batch
// reference, if any.
func (t *Table) FindReference() (string, bool) {
	for _, rec := range t.records {
		if rec.IsReference() {
			return rec.Filename(), true
		}
	}
	return "", false
}

func (t *Table) addColumn(name string) {
	if t.seen[name] {
		return
	}
	t.seen[name] = true
	t.columns = append(t.columns, name)
}
