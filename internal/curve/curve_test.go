package curve

import (
	"math"
	"testing"
)

// triangle builds a scan that sweeps start->apex->start in steps.
func triangle(start, apex float64, steps int) Series {
	var s Series
	delta := (apex - start) / float64(steps)
	for i := 0; i <= steps; i++ {
		p := start + delta*float64(i)
		s = append(s, Point{Potential: p, Current: p * 2e-6})
	}
	for i := steps - 1; i >= 0; i-- {
		p := start + delta*float64(i)
		s = append(s, Point{Potential: p, Current: p * 1e-6})
	}
	return s
}

func TestSplitStandardScan(t *testing.T) {
	s := triangle(0, 0.5, 10) // low-high-low
	pair, err := Split(s)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	if got := pair.Forward.Len() + pair.Backward.Len(); got != s.Len()+1 {
		t.Errorf("forward+backward = %d, want n+1 = %d", got, s.Len()+1)
	}
	// The transition sample belongs to both halves.
	last := pair.Forward[pair.Forward.Len()-1]
	first := pair.Backward[0]
	if last != first {
		t.Errorf("transition sample not shared: %+v vs %+v", last, first)
	}
	if last.Potential != 0.5 {
		t.Errorf("transition potential = %v, want apex 0.5", last.Potential)
	}
}

func TestSplitInvertedScan(t *testing.T) {
	s := triangle(0.5, -0.5, 10) // high-low-high
	pair, err := Split(s)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	if got := pair.Forward.Len() + pair.Backward.Len(); got != s.Len()+1 {
		t.Errorf("forward+backward = %d, want n+1 = %d", got, s.Len()+1)
	}
	turn := pair.Forward[pair.Forward.Len()-1].Potential
	if turn != -0.5 {
		t.Errorf("transition potential = %v, want minimum -0.5", turn)
	}
}

func TestSplitLengthProperty(t *testing.T) {
	for _, steps := range []int{1, 2, 5, 20, 100} {
		s := triangle(-0.2, 0.6, steps)
		pair, err := Split(s)
		if err != nil {
			t.Fatalf("steps=%d: %v", steps, err)
		}
		if got := pair.Forward.Len() + pair.Backward.Len(); got != s.Len()+1 {
			t.Errorf("steps=%d: forward+backward = %d, want %d", steps, got, s.Len()+1)
		}
	}
}

func TestSplitEmpty(t *testing.T) {
	if _, err := Split(nil); err == nil {
		t.Error("expected error for empty series")
	}
}

func TestResampleIdentity(t *testing.T) {
	testCases := []struct {
		name string
		x    []float64
		y    []float64
	}{
		{"monotonic", []float64{0, 0.1, 0.2, 0.3}, []float64{1, 4, 9, 16}},
		{"cyclic_scan", []float64{0, 0.1, 0.2, 0.1, 0}, []float64{1, 2, 3, 4, 5}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resample(tc.x, tc.x, tc.y)
			for i := range tc.y {
				if got[i] != tc.y[i] {
					t.Errorf("identity law violated at %d: got %v, want %v", i, got[i], tc.y[i])
				}
			}
		})
	}
}

func TestResampleIdempotent(t *testing.T) {
	xSrc := []float64{0, 1, 2}
	ySrc := []float64{0, 10, 0}
	xDst := []float64{0.5, 1.5}

	once := Resample(xDst, xSrc, ySrc)
	twice := Resample(xDst, xDst, once)
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("resample not idempotent at %d: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestResampleExtrapolatesLinearly(t *testing.T) {
	xSrc := []float64{0, 1}
	ySrc := []float64{0, 2}

	testCases := []struct {
		name string
		x    float64
		want float64
	}{
		{"inside", 0.5, 1},
		{"beyond_right", 2, 4},
		{"beyond_left", -1, -2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resample([]float64{tc.x}, xSrc, ySrc)[0]
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Resample(%v) = %v, want %v", tc.x, got, tc.want)
			}
		})
	}
}

func TestResampleDescendingSource(t *testing.T) {
	// Backward sweeps present descending potential grids.
	xSrc := []float64{1, 0.5, 0}
	ySrc := []float64{2, 1, 0}
	got := Resample([]float64{0.25, 0.75}, xSrc, ySrc)
	want := []float64{0.5, 1.5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("at %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResampleSinglePoint(t *testing.T) {
	got := Resample([]float64{-5, 0, 5}, []float64{1}, []float64{3})
	for i, v := range got {
		if v != 3 {
			t.Errorf("at %d: got %v, want constant 3", i, v)
		}
	}
}

func TestTrapezoid(t *testing.T) {
	testCases := []struct {
		name string
		x    []float64
		y    []float64
		want float64
	}{
		{"unit_square", []float64{0, 1}, []float64{1, 1}, 1},
		{"ramp", []float64{0, 1}, []float64{0, 1}, 0.5},
		{"two_segments", []float64{0, 1, 2}, []float64{0, 1, 0}, 1},
		{"descending_grid", []float64{1, 0}, []float64{1, 1}, -1},
		{"single_point", []float64{1}, []float64{5}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Trapezoid(tc.x, tc.y)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Trapezoid = %v, want %v", got, tc.want)
			}
		})
	}
}
