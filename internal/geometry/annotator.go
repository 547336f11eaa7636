package geometry

import "github.com/ferrolab/ferroci/internal/curve"

// Annotator accumulates the curves on display and the segments a user has
// drawn over them, and computes all crossings on demand. It is the surface
// the UI shell calls when a line is drawn.
type Annotator struct {
	curves   []NamedCurve
	segments []LineSegment
	points   []IntersectionPoint
}

// NewAnnotator returns an empty annotator.
func NewAnnotator() *Annotator {
	return &Annotator{}
}

// AddCurve registers a curve under the given name. Registration order
// determines reporting order.
func (a *Annotator) AddCurve(name string, s curve.Series) {
	a.curves = append(a.curves, NamedCurve{Name: name, Series: s})
}

// OnLineDrawn records a segment drawn in curve coordinates.
func (a *Annotator) OnLineDrawn(x0, y0, x1, y1 float64) {
	a.segments = append(a.segments, LineSegment{X0: x0, Y0: y0, X1: x1, Y1: y1})
}

// CalculateAllIntersections recomputes the crossings of every drawn
// segment against every registered curve and returns how many were found.
// The points themselves are available through Points.
func (a *Annotator) CalculateAllIntersections() int {
	a.points = nil
	for _, seg := range a.segments {
		a.points = append(a.points, Intersections(seg, a.curves)...)
	}
	return len(a.points)
}

// Points returns the crossings found by the last CalculateAllIntersections.
func (a *Annotator) Points() []IntersectionPoint {
	out := make([]IntersectionPoint, len(a.points))
	copy(out, a.points)
	return out
}

// ClearSegments discards all drawn segments and their computed crossings.
func (a *Annotator) ClearSegments() {
	a.segments = nil
	a.points = nil
}
