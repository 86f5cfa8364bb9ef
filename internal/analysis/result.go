package analysis

import (
	"sort"
	"time"
)

// ModelScore is one row of a method's ranked model table.
type ModelScore struct {
	Model    string  `json:"model"`
	Label    string  `json:"label"`
	RSquared float64 `json:"r_squared"`
	RMSE     float64 `json:"rmse"`
	Failed   bool    `json:"failed,omitempty"`
	Failure  string  `json:"failure,omitempty"`
}

// CurvePoint is one sample of a fitted model's curve, resampled over the
// observed size range for plotting.
type CurvePoint struct {
	Size   float64 `json:"size"`
	TimeMS float64 `json:"time_ms"`
}

// MethodAnalysis is the terminal artifact of the core for one method:
// every fit attempt, the ranked score table, the resampled curves and the
// selected model. Packaging only; no numeric work happens here.
type MethodAnalysis struct {
	Method string            `json:"method"`
	Points []AggregatedPoint `json:"points"`

	// Fits maps model name to its fit attempt, failed or not.
	Fits map[string]FitResult `json:"fits"`
	// Ranking lists every attempted model best-first; failed fits sink
	// to the bottom in catalog order.
	Ranking []ModelScore `json:"ranking"`
	// Curves maps model name to its dense predicted curve. Failed fits
	// have no curve.
	Curves map[string][]CurvePoint `json:"curves,omitempty"`

	// Selected is empty when no model could be fitted; HasSelection
	// distinguishes that case explicitly so downstream consumers cannot
	// mistake it for a model named "".
	Selected     string  `json:"selected,omitempty"`
	SelectedLbl  string  `json:"selected_label,omitempty"`
	SelectedR2   float64 `json:"selected_r_squared,omitempty"`
	HasSelection bool    `json:"has_selection"`
}

// Result is a full analysis run over one observation collection.
type Result struct {
	RunID       string           `json:"run_id,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
	TimeUnit    string           `json:"time_unit"`
	Host        *HostInfo        `json:"host,omitempty"`
	Methods     []MethodAnalysis `json:"methods"`
}

// HostInfo describes the machine the observations were collected on.
// Recorded by the benchmark runner, carried through for report headers.
type HostInfo struct {
	Hostname  string `json:"hostname,omitempty"`
	OS        string `json:"os,omitempty"`
	CPUModel  string `json:"cpu_model,omitempty"`
	CPUCores  int    `json:"cpu_cores,omitempty"`
	MemoryMB  uint64 `json:"memory_mb,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
}

// Method returns the analysis for the named method.
func (r *Result) Method(name string) (MethodAnalysis, bool) {
	for _, m := range r.Methods {
		if m.Method == name {
			return m, true
		}
	}
	return MethodAnalysis{}, false
}

// assembleMethod packages one method's fit attempts into its final
// MethodAnalysis. fits must be in catalog order.
func assembleMethod(series MethodSeries, fits []FitResult, curves map[string][]CurvePoint) MethodAnalysis {
	byName := make(map[string]FitResult, len(fits))
	for _, f := range fits {
		byName[f.Model] = f
	}

	ma := MethodAnalysis{
		Method: series.Method,
		Points: series.Points,
		Fits:   byName,
		Curves: curves,
	}

	if sel, ok := SelectBest(fits); ok {
		ma.Selected = sel.Model
		ma.SelectedLbl = sel.Label
		ma.SelectedR2 = sel.RSquared
		ma.HasSelection = true
	}

	ma.Ranking = rankFits(fits)
	return ma
}

// rankFits orders fit attempts best-first using the selection rule, with
// failed attempts last in catalog order.
func rankFits(fits []FitResult) []ModelScore {
	ordered := make([]FitResult, len(fits))
	copy(ordered, fits)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Failed() != b.Failed() {
			return !a.Failed()
		}
		if a.Failed() {
			return false // keep catalog order among failures
		}
		if a.RSquared != b.RSquared {
			return a.RSquared > b.RSquared
		}
		return len(a.ParamNames) < len(b.ParamNames)
	})

	scores := make([]ModelScore, len(ordered))
	for i, f := range ordered {
		s := ModelScore{
			Model:    f.Model,
			Label:    f.Label,
			RSquared: f.RSquared,
			RMSE:     f.RMSE,
		}
		if f.Failed() {
			s.Failed = true
			s.Failure = string(f.Err.Reason)
		}
		scores[i] = s
	}
	return scores
}
