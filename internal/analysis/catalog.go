package analysis

import "math"

// ModelSpec is one entry of the growth-model catalog: a named parametric
// function mapping input size to predicted time. The catalog is fixed at
// startup and read-only; Rank records the declared catalog order and is
// used only for tie-breaking and display, never for scoring.
type ModelSpec struct {
	// Name is the stable identifier models are looked up by, e.g. "linear".
	Name string `json:"name"`
	// Label is the canonical complexity class, e.g. "O(n)".
	Label string `json:"label"`
	// ParamNames names the free parameters in order, e.g. ["a", "b"].
	ParamNames []string `json:"param_names"`
	// Rank is the position in the declared catalog order.
	Rank int `json:"rank"`

	eval func(n float64, p []float64) float64
}

// ParamCount returns the number of free parameters of the model.
func (s ModelSpec) ParamCount() int {
	return len(s.ParamNames)
}

// Evaluate computes the model's predicted time at size n for the given
// parameter vector. params must have exactly ParamCount entries.
func (s ModelSpec) Evaluate(n float64, params []float64) float64 {
	return s.eval(n, params)
}

// The log(n+1) offset keeps the argument defined and non-negative for
// every valid size, including very small ones.
var catalog = []ModelSpec{
	{
		Name:       "linear",
		Label:      "O(n)",
		ParamNames: []string{"a", "b"},
		Rank:       0,
		eval: func(n float64, p []float64) float64 {
			return p[0]*n + p[1]
		},
	},
	{
		Name:       "quadratic",
		Label:      "O(n²)",
		ParamNames: []string{"a", "b", "c"},
		Rank:       1,
		eval: func(n float64, p []float64) float64 {
			return p[0]*n*n + p[1]*n + p[2]
		},
	},
	{
		Name:       "linearithmic",
		Label:      "O(n log n)",
		ParamNames: []string{"a", "b"},
		Rank:       2,
		eval: func(n float64, p []float64) float64 {
			return p[0]*n*math.Log(n+1) + p[1]
		},
	},
	{
		Name:       "logarithmic",
		Label:      "O(log n)",
		ParamNames: []string{"a", "b"},
		Rank:       3,
		eval: func(n float64, p []float64) float64 {
			return p[0]*math.Log(n+1) + p[1]
		},
	},
}

// Catalog returns the model catalog in declared order. The returned slice
// is a copy; the specs themselves are immutable.
func Catalog() []ModelSpec {
	out := make([]ModelSpec, len(catalog))
	copy(out, catalog)
	return out
}

// LookupModel returns the catalog entry with the given name.
func LookupModel(name string) (ModelSpec, bool) {
	for _, spec := range catalog {
		if spec.Name == name {
			return spec, true
		}
	}
	return ModelSpec{}, false
}
