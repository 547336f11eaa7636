// Package cvfile parses the semi-structured text exports produced by
// potentiostat instruments: a header region of key/value declarations
// followed by a "Potential/V" sentinel line and a data region of
// potential,current pairs.
package cvfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ferrolab/ferroci/internal/curve"
)

var (
	// ErrNoDataHeader is returned when the "Potential/V" sentinel line that
	// opens the data region never appears. The data region is mandatory.
	ErrNoDataHeader = errors.New("cvfile: data header 'Potential/V' not found")

	// ErrNoData is returned when the data region yields no usable samples.
	ErrNoData = errors.New("cvfile: data region contains no numeric pairs")
)

// Section markers that carry no metadata and are skipped outright.
var sectionMarkers = map[string]bool{
	"Results:":   true,
	"Channel 1:": true,
	"Header:":    true,
	"Note:":      true,
}

const techniqueMarker = "Cyclic Voltammetry"

// ParseFile reads and parses one instrument export. The recorded Filename
// is the basename of path.
func ParseFile(path string) (*Metadata, curve.Series, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cvfile: reading %s: %w", path, err)
	}
	return Parse(string(data), filepath.Base(path))
}

// Parse splits text into a metadata record and the numeric series.
//
// Header lines are classified with an ordered rule set, first match wins.
// Every header line has commas replaced by dots before classification, as
// source files may use comma decimals; data rows are split on the original
// commas. A line contributes a sample only when it splits into exactly two
// float tokens; malformed rows are skipped silently.
func Parse(text, filename string) (*Metadata, curve.Series, error) {
	lines := strings.Split(text, "\n")
	meta := NewMetadata()

	dataStart := -1
	for idx, raw := range lines {
		line := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")

		if strings.HasPrefix(line, "Potential/V") {
			dataStart = idx + 1
			break
		}
		if line == "" || sectionMarkers[line] || strings.HasPrefix(line, "Segment") {
			continue
		}

		switch {
		case strings.Contains(line, "="):
			key, value, _ := strings.Cut(line, "=")
			meta.Set(strings.TrimSpace(key), coerce(strings.TrimSpace(value)))

		case strings.Contains(line, ":") && !strings.Contains(line, "   "):
			key, value, _ := strings.Cut(line, ":")
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			if key == "File" {
				meta.Set("File_Path", value)
			} else if !strings.Contains(line, techniqueMarker) {
				if key == "" {
					continue
				}
				meta.Set(key, value)
			}

		default:
			switch {
			case idx == 0:
				meta.Set("DateTime", line)
			case strings.Contains(line, techniqueMarker):
				meta.Set("Technique", line)
			case idx < 10:
				if strings.Contains(line, "Data Source") {
					if _, v, ok := strings.Cut(line, ":"); ok {
						meta.Set("Data_Source", strings.TrimSpace(v))
					}
				} else if strings.Contains(line, "Instrument Model") {
					if _, v, ok := strings.Cut(line, ":"); ok {
						meta.Set("Instrument_Model", strings.TrimSpace(v))
					}
				}
			}
		}
	}

	meta.Set("Filename", filename)

	if dataStart < 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoDataHeader, filename)
	}

	var series curve.Series
	for _, raw := range lines[dataStart:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			continue
		}
		potential, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		current, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		series = append(series, curve.Point{Potential: potential, Current: current})
	}

	if len(series) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoData, filename)
	}

	return meta, series, nil
}

// coerce converts a header value to float64 when it uses scientific
// notation or a decimal point, to int64 when purely integral, and keeps
// the string otherwise.
func coerce(value string) interface{} {
	switch {
	case strings.ContainsAny(value, "eE"):
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	case strings.Contains(value, "."):
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	default:
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return value
}
