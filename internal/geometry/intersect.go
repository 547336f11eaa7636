// Package geometry finds intersections between user-drawn line segments
// and stored curves, the basis of interactive plot annotation. Results are
// ephemeral: they are produced for a presentation layer and never enter
// the ledger.
package geometry

import (
	"math"

	"github.com/ferrolab/ferroci/internal/curve"
)

// parallelEps is the denominator threshold below which two segments are
// treated as parallel or coincident and no intersection is reported.
const parallelEps = 1e-10

// LineSegment is a segment in curve coordinate space (potential, current).
type LineSegment struct {
	X0, Y0 float64
	X1, Y1 float64
}

// IntersectionPoint is one qualifying crossing of a segment with a curve.
type IntersectionPoint struct {
	Curve string
	X, Y  float64
}

// NamedCurve pairs a curve with the name used to report crossings.
type NamedCurve struct {
	Name   string
	Series curve.Series
}

// Intersections returns every crossing of seg with the given curves, one
// entry per curve per qualifying crossing. Ordering is deterministic:
// curves in the given order, then segment-index order within each curve.
// Every consecutive sample pair of every curve is checked.
func Intersections(seg LineSegment, curves []NamedCurve) []IntersectionPoint {
	var points []IntersectionPoint
	for _, c := range curves {
		for i := 1; i < len(c.Series); i++ {
			p, ok := segmentCrossing(seg,
				c.Series[i-1].Potential, c.Series[i-1].Current,
				c.Series[i].Potential, c.Series[i].Current)
			if ok {
				points = append(points, IntersectionPoint{Curve: c.Name, X: p[0], Y: p[1]})
			}
		}
	}
	return points
}

// segmentCrossing intersects the user segment (x1,y1)-(x2,y2) with one
// curve segment (x3,y3)-(x4,y4). A crossing exists only when both line
// parameters lie in [0, 1] inclusive.
func segmentCrossing(seg LineSegment, x3, y3, x4, y4 float64) ([2]float64, bool) {
	x1, y1, x2, y2 := seg.X0, seg.Y0, seg.X1, seg.Y1

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < parallelEps {
		return [2]float64{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return [2]float64{}, false
	}

	return [2]float64{x1 + t*(x2-x1), y1 + t*(y2-y1)}, true
}
