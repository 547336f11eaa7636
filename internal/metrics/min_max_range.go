package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/ferrolab/ferroci/internal/curve"
)

// MinMaxRange measures the spread of the current difference between the
// test curve and the reference resampled directly onto the test potential
// grid, without sweep splitting. The deliberate asymmetry with
// SumAbsDifference's per-sweep alignment is part of the metric's
// definition.
type MinMaxRange struct{}

// Name returns the ledger column header for this metric.
func (MinMaxRange) Name() string { return "Min_Max_Range" }

// Description returns a human-readable summary.
func (MinMaxRange) Description() string {
	return "Range (max - min) of differences between test and reference curves"
}

// RequiresInterpolation reports that the reference is resampled.
func (MinMaxRange) RequiresInterpolation() bool { return true }

// Compute calculates the metric value.
func (MinMaxRange) Compute(test, reference curve.Series) (float64, error) {
	if len(test) == 0 || len(reference) == 0 {
		return 0, fmt.Errorf("empty curve: %w", curve.ErrEmptySeries)
	}

	refCurrent := curve.Resample(test.Potentials(), reference.Potentials(), reference.Currents())

	diff := make([]float64, len(test))
	for i, p := range test {
		diff[i] = p.Current - refCurrent[i]
	}
	return floats.Max(diff) - floats.Min(diff), nil
}
