package metrics

import (
	"fmt"
	"math"

	"github.com/ferrolab/ferroci/internal/curve"
)

// SumAbsDifference integrates the absolute current difference between the
// test and reference curves, sweep by sweep. Both curves are split at
// their turning points, each reference sweep is resampled onto the
// matching test sweep's potential grid, and the absolute difference is
// integrated over potential with the trapezoidal rule. The result is the
// sum of the absolute forward and backward integrals.
type SumAbsDifference struct{}

// Name returns the ledger column header for this metric.
func (SumAbsDifference) Name() string { return "Sum_Abs_Difference" }

// Description returns a human-readable summary.
func (SumAbsDifference) Description() string {
	return "Integrated absolute difference between test and reference curves, per sweep"
}

// RequiresInterpolation reports that the reference is resampled.
func (SumAbsDifference) RequiresInterpolation() bool { return true }

// Compute calculates the metric value.
func (SumAbsDifference) Compute(test, reference curve.Series) (float64, error) {
	testPair, err := curve.Split(test)
	if err != nil {
		return 0, fmt.Errorf("splitting test curve: %w", err)
	}
	refPair, err := curve.Split(reference)
	if err != nil {
		return 0, fmt.Errorf("splitting reference curve: %w", err)
	}

	forward := sweepAbsIntegral(testPair.Forward, refPair.Forward)
	backward := sweepAbsIntegral(testPair.Backward, refPair.Backward)
	return math.Abs(forward) + math.Abs(backward), nil
}

// sweepAbsIntegral resamples the reference sweep onto the test sweep's
// potential grid and integrates the pointwise absolute difference.
func sweepAbsIntegral(test, reference curve.Series) float64 {
	grid := test.Potentials()
	refCurrent := curve.Resample(grid, reference.Potentials(), reference.Currents())

	absDiff := make([]float64, len(grid))
	for i, p := range test {
		absDiff[i] = math.Abs(p.Current - refCurrent[i])
	}
	return curve.Trapezoid(grid, absDiff)
}
