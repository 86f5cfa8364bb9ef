package analysis

// Selection identifies the winning model for one method.
type Selection struct {
	Model    string  `json:"model"`
	Label    string  `json:"label"`
	RSquared float64 `json:"r_squared"`
}

// SelectBest picks the model with maximal R² among non-failed fits.
// Results must be given in catalog order.
//
// Ties on exact R² equality go to the model with fewer free parameters
// (the simpler explanation wins); a remaining tie goes to the model
// appearing earlier in the catalog. The second argument is false when
// every fit failed, which callers must surface, never default away.
func SelectBest(results []FitResult) (Selection, bool) {
	bestIdx := -1
	for i, r := range results {
		if r.Failed() {
			continue
		}
		if bestIdx < 0 {
			bestIdx = i
			continue
		}
		best := results[bestIdx]
		switch {
		case r.RSquared > best.RSquared:
			bestIdx = i
		case r.RSquared == best.RSquared && len(r.ParamNames) < len(best.ParamNames):
			bestIdx = i
			// equal score and parameter count: catalog order stands
		}
	}

	if bestIdx < 0 {
		return Selection{}, false
	}
	best := results[bestIdx]
	return Selection{Model: best.Model, Label: best.Label, RSquared: best.RSquared}, true
}
