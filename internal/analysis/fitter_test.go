package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticSeries builds a noiseless series from an exact model.
func syntheticSeries(t *testing.T, model string, params []float64, sizes []int) MethodSeries {
	t.Helper()
	spec, ok := LookupModel(model)
	require.True(t, ok)

	points := make([]AggregatedPoint, len(sizes))
	for i, n := range sizes {
		v := spec.Evaluate(float64(n), params)
		points[i] = AggregatedPoint{Size: n, MeanMS: v, MinMS: v, MaxMS: v, Count: 1}
	}
	return MethodSeries{Method: "synthetic", Points: points}
}

func fitAndScore(t *testing.T, series MethodSeries, model string) FitResult {
	t.Helper()
	spec, ok := LookupModel(model)
	require.True(t, ok)

	fit := NewFitter(FitConfig{}).Fit(series, spec)
	require.False(t, fit.Failed(), "fit failed: %v", fit.Err)

	var err error
	fit.RSquared, err = RSquared(series.MeanTimes(), fit.Predicted)
	require.NoError(t, err)
	fit.RMSE, err = RMSE(series.MeanTimes(), fit.Predicted)
	require.NoError(t, err)
	return fit
}

func TestFitRecoversExactModels(t *testing.T) {
	sizes := []int{100, 200, 400, 800, 1600, 3200}

	tests := []struct {
		model  string
		params []float64
	}{
		{"linear", []float64{2, 5}},
		{"quadratic", []float64{0.5, 3, 10}},
		{"linearithmic", []float64{1.5, 4}},
		{"logarithmic", []float64{20, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			series := syntheticSeries(t, tt.model, tt.params, sizes)
			fit := fitAndScore(t, series, tt.model)

			assert.GreaterOrEqual(t, fit.RSquared, 0.999,
				"noiseless %s data must be recovered", tt.model)

			for i, want := range tt.params {
				assert.InDelta(t, want, fit.Params[i], 5e-2*math.Max(1, math.Abs(want)),
					"parameter %s", fit.ParamNames[i])
			}
		})
	}
}

func TestFitLinearParamMap(t *testing.T) {
	series := syntheticSeries(t, "linear", []float64{2, 5}, []int{10, 20, 30, 40})
	fit := fitAndScore(t, series, "linear")

	pm := fit.ParamMap()
	require.Contains(t, pm, "a")
	require.Contains(t, pm, "b")
	assert.InDelta(t, 2.0, pm["a"], 1e-6)
	assert.InDelta(t, 5.0, pm["b"], 1e-4)
}

func TestFitDegenerateTooFewPoints(t *testing.T) {
	// One point cannot constrain a three-parameter quadratic.
	series := MethodSeries{
		Method: "m",
		Points: []AggregatedPoint{{Size: 100, MeanMS: 5, Count: 1}},
	}
	spec, _ := LookupModel("quadratic")

	fit := NewFitter(FitConfig{}).Fit(series, spec)
	require.True(t, fit.Failed())
	assert.Equal(t, FailureDegenerate, fit.Err.Reason)
	assert.Nil(t, fit.Params)
}

func TestFitDegenerateNonFinite(t *testing.T) {
	series := MethodSeries{
		Method: "m",
		Points: []AggregatedPoint{
			{Size: 100, MeanMS: 5},
			{Size: 200, MeanMS: math.NaN()},
			{Size: 300, MeanMS: 9},
		},
	}
	spec, _ := LookupModel("linear")

	fit := NewFitter(FitConfig{}).Fit(series, spec)
	require.True(t, fit.Failed())
	assert.Equal(t, FailureDegenerate, fit.Err.Reason)
}

func TestFitConstantSeries(t *testing.T) {
	// All times identical still fits (slope 0, intercept at the level);
	// scoring then applies the SStot = 0 convention.
	series := MethodSeries{
		Method: "m",
		Points: []AggregatedPoint{
			{Size: 100, MeanMS: 4},
			{Size: 200, MeanMS: 4},
			{Size: 300, MeanMS: 4},
		},
	}
	spec, _ := LookupModel("linear")

	fit := NewFitter(FitConfig{}).Fit(series, spec)
	require.False(t, fit.Failed())

	r2, err := RSquared(series.MeanTimes(), fit.Predicted)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r2)
}

func TestFitDeterministic(t *testing.T) {
	series := syntheticSeries(t, "linearithmic", []float64{0.8, 12}, []int{100, 500, 1000, 5000})
	spec, _ := LookupModel("linearithmic")

	first := NewFitter(FitConfig{}).Fit(series, spec)
	second := NewFitter(FitConfig{}).Fit(series, spec)
	require.False(t, first.Failed())
	assert.Equal(t, first.Params, second.Params)
	assert.Equal(t, first.Predicted, second.Predicted)
}

func TestFitBudgetExhaustion(t *testing.T) {
	// A vanishingly small budget cannot finish even one damped step.
	series := syntheticSeries(t, "linear", []float64{2, 5}, []int{10, 20, 30})
	spec, _ := LookupModel("linear")

	fit := NewFitter(FitConfig{MaxEvaluations: 2}).Fit(series, spec)
	require.True(t, fit.Failed())
	assert.Equal(t, FailureNonConvergence, fit.Err.Reason)
}

func TestSolveLinearSystem(t *testing.T) {
	// 2x + y = 5, x + 3y = 10 -> x = 1, y = 3
	a := [][]float64{{2, 1}, {1, 3}}
	b := []float64{5, 10}

	x, ok := solveLinearSystem(a, b)
	require.True(t, ok)
	assert.InDelta(t, 1.0, x[0], 1e-12)
	assert.InDelta(t, 3.0, x[1], 1e-12)
}

func TestSolveLinearSystemSingular(t *testing.T) {
	a := [][]float64{{1, 1}, {1, 1}}
	b := []float64{1, 2}

	_, ok := solveLinearSystem(a, b)
	assert.False(t, ok)
}
