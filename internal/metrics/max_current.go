package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/ferrolab/ferroci/internal/curve"
)

// MaxCurrent reports the peak current of the test curve. It ignores the
// reference entirely and exercises the no-interpolation metric path.
type MaxCurrent struct{}

// Name returns the ledger column header for this metric.
func (MaxCurrent) Name() string { return "Max_Current" }

// Description returns a human-readable summary.
func (MaxCurrent) Description() string {
	return "Maximum current of the test curve"
}

// RequiresInterpolation reports that no resampling happens.
func (MaxCurrent) RequiresInterpolation() bool { return false }

// Compute calculates the metric value.
func (MaxCurrent) Compute(test, _ curve.Series) (float64, error) {
	if len(test) == 0 {
		return 0, fmt.Errorf("empty curve: %w", curve.ErrEmptySeries)
	}
	return floats.Max(test.Currents()), nil
}
