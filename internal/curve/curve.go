// Package curve holds the numeric core shared by the metrics and annotation
// code: the potential/current series type produced by the file parser, the
// sweep splitter that separates a cyclic scan into its two monotonic halves,
// linear resampling between potential grids, and trapezoidal integration.
package curve

import (
	"errors"
	"sort"
)

// ErrEmptySeries is returned by operations that need at least one sample.
var ErrEmptySeries = errors.New("curve: empty series")

// Point is a single voltammetry sample.
type Point struct {
	Potential float64
	Current   float64
}

// Series is an ordered sequence of samples in file order. The order is not
// guaranteed to be monotonic in potential. A Series is never mutated after
// it is produced by the parser.
type Series []Point

// Len returns the number of samples.
func (s Series) Len() int { return len(s) }

// Potentials returns the potential values in sample order.
func (s Series) Potentials() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Potential
	}
	return out
}

// Currents returns the current values in sample order.
func (s Series) Currents() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Current
	}
	return out
}

// SweepPair is a derived, non-owning view of a Series split at the scan
// turning point. Forward and Backward overlap by exactly one sample: the
// transition point belongs to both halves.
type SweepPair struct {
	Forward  Series
	Backward Series
}

// Split locates the turning point of a cyclic scan and returns the two
// sweep halves. The scan direction is not assumed: if the index of the
// global maximum potential falls within the first or last floor(0.1*n)
// samples the scan is classified inverted (high-low-high) and the split
// happens at the global minimum; otherwise the scan is standard
// (low-high-low) and the split happens at the global maximum.
func Split(s Series) (SweepPair, error) {
	if len(s) == 0 {
		return SweepPair{}, ErrEmptySeries
	}

	maxIdx, minIdx := 0, 0
	for i, p := range s {
		if p.Potential > s[maxIdx].Potential {
			maxIdx = i
		}
		if p.Potential < s[minIdx].Potential {
			minIdx = i
		}
	}

	n := len(s)
	edge := n / 10

	// A maximum sitting at either edge of the record means the scan started
	// near its highest potential, so the turning point is the minimum.
	transition := maxIdx
	if maxIdx < edge || maxIdx >= n-edge {
		transition = minIdx
	}

	return SweepPair{
		Forward:  s[:transition+1],
		Backward: s[transition:],
	}, nil
}

// Resample evaluates a piecewise-linear function through (xSource, ySource)
// at each point of xTarget. Targets outside the source range are
// extrapolated linearly from the nearest segment, never clamped: test and
// reference sweeps are not required to share a potential range. The source
// grid does not have to be sorted; pairs are ordered by x internally, so
// descending (backward-sweep) grids interpolate correctly.
func Resample(xTarget, xSource, ySource []float64) []float64 {
	out := make([]float64, len(xTarget))
	n := len(xSource)
	if n == 0 {
		return out
	}
	if n == 1 {
		for i := range out {
			out[i] = ySource[0]
		}
		return out
	}

	// Identity law: resampling a curve onto its own grid returns its own
	// values, even when the grid is a cyclic (non-monotonic) scan.
	if equalGrids(xTarget, xSource) {
		copy(out, ySource)
		return out
	}

	xs, ys := sortedPairs(xSource, ySource)

	for i, xt := range xTarget {
		// Locate the first knot >= xt, then pick the segment to its left.
		j := sort.SearchFloat64s(xs, xt)
		switch {
		case j <= 0:
			j = 1
		case j >= n:
			j = n - 1
		}
		x0, x1 := xs[j-1], xs[j]
		y0, y1 := ys[j-1], ys[j]
		if x1 == x0 {
			out[i] = y0
			continue
		}
		out[i] = y0 + (xt-x0)*(y1-y0)/(x1-x0)
	}
	return out
}

func equalGrids(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sortedPairs returns copies of x and y ordered by ascending x. The sort is
// stable so duplicate potentials keep their file order.
func sortedPairs(x, y []float64) ([]float64, []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	xs := make([]float64, len(x))
	ys := make([]float64, len(y))
	for i, j := range idx {
		xs[i] = x[j]
		ys[i] = y[j]
	}
	return xs, ys
}

// Trapezoid integrates y over x using the trapezoidal rule. The grid may
// run in either direction; integrating over a descending grid yields a
// negative area, which sweep metrics fold with an absolute value.
func Trapezoid(x, y []float64) float64 {
	var sum float64
	for i := 1; i < len(x) && i < len(y); i++ {
		sum += (x[i] - x[i-1]) * (y[i] + y[i-1]) / 2
	}
	return sum
}
