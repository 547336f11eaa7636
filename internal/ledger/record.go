// Package ledger accumulates per-file analysis results into an append-only
// table keyed by filename, persisted as a CSV file with a spreadsheet
// mirror. The table grows monotonically across batches; a filename already
// present is never reprocessed or duplicated.
package ledger

import (
	"math"
	"strconv"
)

// Well-known column names.
const (
	FilenameColumn          = "Filename"
	ReferenceFlagColumn     = "is_reference"
	ReferenceFilenameColumn = "ReferenceFilename"
)

// Record is one row of the ledger: the metadata fields of a processed file
// merged with its metric values and the reference bookkeeping columns.
// Records are immutable once appended to a table.
type Record struct {
	keys   []string
	values map[string]interface{}
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]interface{})}
}

// Set stores a value under key, preserving first-insertion order.
func (r *Record) Set(key string, value interface{}) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the raw value stored under key.
func (r *Record) Get(key string) (interface{}, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Field returns the serialized form of the value under key. Missing values
// serialize as the empty string, the placeholder that keeps manually added
// spreadsheet columns intact across merges.
func (r *Record) Field(key string) string {
	v, ok := r.values[key]
	if !ok {
		return ""
	}
	return formatValue(v)
}

// Keys returns the record's keys in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Filename returns the record's filename key value.
func (r *Record) Filename() string {
	return r.Field(FilenameColumn)
}

// IsReference reports whether this record marks the batch reference file.
// Both Go and spreadsheet-tool boolean spellings are accepted.
func (r *Record) IsReference() bool {
	switch r.Field(ReferenceFlagColumn) {
	case "true", "True", "TRUE":
		return true
	}
	return false
}

// formatValue serializes a single cell. NaN metric values become the
// empty-string placeholder.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		if math.IsNaN(val) {
			return ""
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return ""
	}
}
