// Package metrics defines the scalar descriptors computed for each test
// curve against the active reference, and the registry that runs them with
// per-metric failure isolation.
package metrics

import (
	"fmt"
	"math"
	"sync"

	"github.com/ferrolab/ferroci/internal/curve"
	"github.com/ferrolab/ferroci/internal/monitoring"
)

// Metric is a named scalar function of a test curve and a reference curve.
// Any value exposing this contract can be registered; concrete metrics are
// independent and share no state. Name must be a unique, column-safe
// identifier: it is used verbatim as the ledger column header.
type Metric interface {
	Name() string
	Description() string
	// RequiresInterpolation reports whether the metric resamples the
	// reference onto the test grid. Metrics that ignore the reference
	// return false.
	RequiresInterpolation() bool
	Compute(test, reference curve.Series) (float64, error)
}

// Info is a summary of a registered metric.
type Info struct {
	Name        string
	Description string
}

// Registry holds registered metrics. It is an explicit instance passed to
// the orchestrator; there is no process-wide registry, so tests can run
// with disjoint metric sets.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	metrics map[string]Metric
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{metrics: make(map[string]Metric)}
}

// Register adds a metric to the registry. If a metric with the same name
// already exists, it is replaced in place.
func (r *Registry) Register(m Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.metrics[m.Name()]; !ok {
		r.order = append(r.order, m.Name())
	}
	r.metrics[m.Name()] = m
}

// Get retrieves a metric by name.
func (r *Registry) Get(name string) (Metric, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.metrics[name]
	return m, ok
}

// Names returns the metric names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Describe returns a summary of every registered metric in registration
// order.
func (r *Registry) Describe() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Info{Name: name, Description: r.metrics[name].Description()})
	}
	return out
}

// CalculateAll computes every registered metric for the given curve pair.
// A metric that fails, for any reason, contributes NaN and a log entry;
// the remaining metrics still run. A single bad metric or malformed curve
// never aborts the batch.
func (r *Registry) CalculateAll(test, reference curve.Series) map[string]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make(map[string]float64, len(r.order))
	for _, name := range r.order {
		value, err := compute(r.metrics[name], test, reference)
		if err != nil {
			monitoring.Errorf("calculating %s: %v", name, err)
			value = math.NaN()
		}
		results[name] = value
	}
	return results
}

// compute invokes a metric, converting a panic into an error so one
// misbehaving metric cannot take down the batch.
func compute(m Metric, test, reference curve.Series) (value float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return m.Compute(test, reference)
}

// DefaultRegistry returns a registry pre-loaded with the built-in metrics.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(SumAbsDifference{})
	reg.Register(MinMaxRange{})
	reg.Register(MaxCurrent{})
	return reg
}
