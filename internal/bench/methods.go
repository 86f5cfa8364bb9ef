// Package bench produces benchmark observations by timing a registry of
// built-in data-transformation methods across a ladder of input sizes.
// Its output is the raw material the analysis core characterizes.
package bench

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Method is one benchmarkable data transformation. Transform must be a
// pure function of its input slice; it may allocate but must not retain
// the input.
type Method struct {
	Name        string
	Description string
	Transform   func(values []float64) []float64
}

// The registry is fixed at startup. Order matters only for display.
var methods = []Method{
	{
		Name:        "equal_width_binning",
		Description: "replace each value with the midpoint of its bin over an equal-width grid",
		Transform:   equalWidthBinning,
	},
	{
		Name:        "value_grouping",
		Description: "sort values and replace each group of neighbors with the group mean",
		Transform:   valueGrouping,
	},
	{
		Name:        "noise_perturbation",
		Description: "add Laplace-distributed noise to every value",
		Transform:   noisePerturbation,
	},
	{
		Name:        "reservoir_sampling",
		Description: "draw a fixed-size uniform sample from the values",
		Transform:   reservoirSampling,
	},
	{
		Name:        "pairwise_ranking",
		Description: "rank every value by pairwise comparison against all others",
		Transform:   pairwiseRanking,
	},
}

// Methods returns the registered methods in display order.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// Lookup returns the method with the given name.
func Lookup(name string) (Method, bool) {
	for _, m := range methods {
		if m.Name == name {
			return m, true
		}
	}
	return Method{}, false
}

const (
	binCount      = 32
	groupWidth    = 8
	noiseScale    = 0.5
	reservoirSize = 256
)

func equalWidthBinning(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	width := (hi - lo) / binCount
	if width == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}

	out := make([]float64, len(values))
	for i, v := range values {
		bin := int((v - lo) / width)
		if bin >= binCount {
			bin = binCount - 1
		}
		out[i] = lo + (float64(bin)+0.5)*width
	}
	return out
}

func valueGrouping(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	out := make([]float64, len(sorted))
	for start := 0; start < len(sorted); start += groupWidth {
		end := start + groupWidth
		if end > len(sorted) {
			end = len(sorted)
		}
		var sum float64
		for _, v := range sorted[start:end] {
			sum += v
		}
		mean := sum / float64(end-start)
		for i := start; i < end; i++ {
			out[i] = mean
		}
	}
	return out
}

func noisePerturbation(values []float64) []float64 {
	// Seeded per call so a method's cost does not depend on call order.
	rng := rand.New(rand.NewSource(int64(len(values))))

	out := make([]float64, len(values))
	for i, v := range values {
		u := rng.Float64() - 0.5
		noise := -noiseScale * sign(u) * math.Log(1-2*math.Abs(u))
		out[i] = v + noise
	}
	return out
}

func reservoirSampling(values []float64) []float64 {
	k := reservoirSize
	if k > len(values) {
		k = len(values)
	}
	rng := rand.New(rand.NewSource(int64(len(values))))

	out := make([]float64, k)
	copy(out, values[:k])
	for i := k; i < len(values); i++ {
		if j := rng.Intn(i + 1); j < k {
			out[j] = values[i]
		}
	}
	return out
}

// pairwiseRanking is deliberately quadratic; it anchors the upper end of
// the catalog in end-to-end runs.
func pairwiseRanking(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		rank := 0
		for _, w := range values {
			if w < v {
				rank++
			}
		}
		out[i] = float64(rank)
	}
	return out
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// MethodNames returns every registered method name, for validation
// messages and CLI listings.
func MethodNames() []string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.Name
	}
	return names
}

// Resolve maps requested names onto methods, failing on unknown names.
// An empty request selects the whole registry.
func Resolve(requested []string) ([]Method, error) {
	if len(requested) == 0 {
		return Methods(), nil
	}
	out := make([]Method, 0, len(requested))
	for _, name := range requested {
		m, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("bench: unknown method %q (known: %v)", name, MethodNames())
		}
		out = append(out, m)
	}
	return out, nil
}
