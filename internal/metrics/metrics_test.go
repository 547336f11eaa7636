package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrolab/ferroci/internal/curve"
	"github.com/ferrolab/ferroci/internal/monitoring"
)

func muteLogs(t *testing.T) {
	t.Helper()
	prev := monitoring.Logf
	monitoring.SetLogger(t.Logf)
	t.Cleanup(func() { monitoring.SetLogger(prev) })
}

// scan builds a triangular cyclic scan with currents scaled by a factor.
func scan(scale float64) curve.Series {
	var s curve.Series
	for i := 0; i <= 20; i++ {
		p := float64(i) * 0.025
		s = append(s, curve.Point{Potential: p, Current: scale * p})
	}
	for i := 19; i >= 0; i-- {
		p := float64(i) * 0.025
		s = append(s, curve.Point{Potential: p, Current: scale * p * 0.5})
	}
	return s
}

func TestSumAbsDifferenceIdenticalCurves(t *testing.T) {
	s := scan(1e-5)
	v, err := SumAbsDifference{}.Compute(s, s)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-12)
}

func TestSumAbsDifferenceScaledCurves(t *testing.T) {
	ref := scan(1e-5)
	test := scan(2e-5)
	v, err := SumAbsDifference{}.Compute(test, ref)
	require.NoError(t, err)
	assert.Greater(t, v, 0.0)
}

func TestMinMaxRangeIdenticalCurves(t *testing.T) {
	s := scan(1e-5)
	v, err := MinMaxRange{}.Compute(s, s)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-12)
}

func TestMinMaxRangeConstantOffset(t *testing.T) {
	ref := scan(1e-5)
	test := make(curve.Series, len(ref))
	for i, p := range ref {
		test[i] = curve.Point{Potential: p.Potential, Current: p.Current + 3e-6}
	}
	// A constant offset has zero spread.
	v, err := MinMaxRange{}.Compute(test, ref)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-12)
}

func TestMaxCurrentIgnoresReference(t *testing.T) {
	test := curve.Series{{Potential: 0, Current: 1e-6}, {Potential: 0.1, Current: 5e-6}, {Potential: 0.2, Current: 3e-6}}
	v, err := MaxCurrent{}.Compute(test, nil)
	require.NoError(t, err)
	assert.Equal(t, 5e-6, v)
	assert.False(t, MaxCurrent{}.RequiresInterpolation())
}

type failingMetric struct{}

func (failingMetric) Name() string                { return "Always_Fails" }
func (failingMetric) Description() string         { return "fails on every curve pair" }
func (failingMetric) RequiresInterpolation() bool { return false }
func (failingMetric) Compute(_, _ curve.Series) (float64, error) {
	return 0, errors.New("division by zero")
}

func TestCalculateAllIsolatesFailures(t *testing.T) {
	muteLogs(t)

	reg := NewRegistry()
	reg.Register(SumAbsDifference{})
	reg.Register(failingMetric{})
	reg.Register(MinMaxRange{})

	s := scan(1e-5)
	results := reg.CalculateAll(s, s)

	require.Len(t, results, 3)
	assert.True(t, math.IsNaN(results["Always_Fails"]), "failed metric must yield NaN")
	assert.False(t, math.IsNaN(results["Sum_Abs_Difference"]))
	assert.False(t, math.IsNaN(results["Min_Max_Range"]))
}

type explodingMetric struct{}

func (explodingMetric) Name() string                { return "Always_Explodes" }
func (explodingMetric) Description() string         { return "panics outright" }
func (explodingMetric) RequiresInterpolation() bool { return false }
func (explodingMetric) Compute(_, _ curve.Series) (float64, error) {
	panic("metric exploded")
}

func TestCalculateAllRecoversPanics(t *testing.T) {
	muteLogs(t)

	reg := NewRegistry()
	reg.Register(explodingMetric{})
	reg.Register(MaxCurrent{})

	s := scan(1e-5)
	results := reg.CalculateAll(s, s)

	require.Len(t, results, 2)
	assert.True(t, math.IsNaN(results["Always_Explodes"]))
	assert.False(t, math.IsNaN(results["Max_Current"]))
}

func TestRegistryOrderAndReplacement(t *testing.T) {
	reg := NewRegistry()
	reg.Register(MinMaxRange{})
	reg.Register(MaxCurrent{})
	reg.Register(MinMaxRange{}) // replaced in place, order unchanged

	assert.Equal(t, []string{"Min_Max_Range", "Max_Current"}, reg.Names())

	m, ok := reg.Get("Max_Current")
	require.True(t, ok)
	assert.Equal(t, "Max_Current", m.Name())
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	assert.Equal(t, []string{"Sum_Abs_Difference", "Min_Max_Range", "Max_Current"}, reg.Names())

	infos := reg.Describe()
	require.Len(t, infos, 3)
	for _, info := range infos {
		assert.NotEmpty(t, info.Description)
	}
}
