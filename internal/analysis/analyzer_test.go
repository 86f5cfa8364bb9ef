package analysis

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestAnalyzerEndToEndNoisyLinearMethod(t *testing.T) {
	// Near-linear measurements with per-size repetition noise.
	obs := []Observation{
		{Method: "A", Size: 100, TimeMS: 10},
		{Method: "A", Size: 100, TimeMS: 12},
		{Method: "A", Size: 200, TimeMS: 20},
		{Method: "A", Size: 200, TimeMS: 22},
		{Method: "A", Size: 400, TimeMS: 41},
		{Method: "A", Size: 400, TimeMS: 39},
	}

	a := New(Config{}, testLogger())
	result, err := a.Run(obs)
	require.NoError(t, err)
	require.Len(t, result.Methods, 1)

	ma := result.Methods[0]
	assert.Equal(t, "A", ma.Method)

	require.Len(t, ma.Points, 3)
	assert.InDelta(t, 11.0, ma.Points[0].MeanMS, 1e-9)
	assert.InDelta(t, 21.0, ma.Points[1].MeanMS, 1e-9)
	assert.InDelta(t, 40.0, ma.Points[2].MeanMS, 1e-9)

	linear := ma.Fits["linear"]
	require.False(t, linear.Failed())
	assert.Greater(t, linear.RSquared, 0.99)

	// Whatever wins must explain the data at least as well as linear.
	require.True(t, ma.HasSelection)
	assert.GreaterOrEqual(t, ma.SelectedR2, linear.RSquared)
}

func TestAnalyzerNoiselessLinearSelectedByTieBreak(t *testing.T) {
	// t = 2n + 5 with no noise: linear and quadratic both reach an exact
	// fit (R² = 1), and the simpler model must win the tie.
	var obs []Observation
	for _, n := range []int{100, 200, 400, 800} {
		obs = append(obs, Observation{Method: "A", Size: n, TimeMS: 2*float64(n) + 5})
	}

	a := New(Config{}, testLogger())
	result, err := a.Run(obs)
	require.NoError(t, err)

	ma := result.Methods[0]
	require.True(t, ma.HasSelection)
	assert.Equal(t, "linear", ma.Selected)
	assert.Equal(t, "O(n)", ma.SelectedLbl)
	assert.GreaterOrEqual(t, ma.SelectedR2, 0.999)

	quadratic := ma.Fits["quadratic"]
	require.False(t, quadratic.Failed())
	assert.GreaterOrEqual(t, quadratic.RSquared, 0.999)
}

func TestAnalyzerNoModelSelected(t *testing.T) {
	// A single point cannot constrain any catalog model; the method must
	// carry an explicit no-selection marker, not a default winner.
	obs := []Observation{{Method: "tiny", Size: 100, TimeMS: 5}}

	a := New(Config{}, testLogger())
	result, err := a.Run(obs)
	require.NoError(t, err)
	require.Len(t, result.Methods, 1)

	ma := result.Methods[0]
	assert.False(t, ma.HasSelection)
	assert.Empty(t, ma.Selected)

	for name, fit := range ma.Fits {
		assert.True(t, fit.Failed(), "model %s should have failed", name)
	}
	for _, score := range ma.Ranking {
		assert.True(t, score.Failed)
	}
}

func TestAnalyzerFailureIsolation(t *testing.T) {
	// One method with an unusable series must not poison the other.
	obs := []Observation{
		{Method: "bad", Size: 100, TimeMS: 5},
		{Method: "good", Size: 100, TimeMS: 10},
		{Method: "good", Size: 200, TimeMS: 20},
		{Method: "good", Size: 400, TimeMS: 40},
		{Method: "good", Size: 800, TimeMS: 80},
	}

	a := New(Config{}, testLogger())
	result, err := a.Run(obs)
	require.NoError(t, err)
	require.Len(t, result.Methods, 2)

	bad, ok := result.Method("bad")
	require.True(t, ok)
	assert.False(t, bad.HasSelection)

	good, ok := result.Method("good")
	require.True(t, ok)
	require.True(t, good.HasSelection)
	assert.Equal(t, "linear", good.Selected)
}

func TestAnalyzerEmptyInput(t *testing.T) {
	a := New(Config{}, testLogger())
	_, err := a.Run(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestAnalyzerIdempotent(t *testing.T) {
	obs := []Observation{
		{Method: "A", Size: 100, TimeMS: 11},
		{Method: "A", Size: 200, TimeMS: 23},
		{Method: "A", Size: 400, TimeMS: 47},
		{Method: "B", Size: 100, TimeMS: 3},
		{Method: "B", Size: 200, TimeMS: 3.2},
		{Method: "B", Size: 400, TimeMS: 3.4},
	}

	a := New(Config{}, testLogger())
	first, err := a.Run(obs)
	require.NoError(t, err)
	second, err := a.Run(obs)
	require.NoError(t, err)

	// No hidden randomness: everything except the timestamp is identical.
	assert.Equal(t, first.Methods, second.Methods)
}

func TestAnalyzerCurvesForSuccessfulFits(t *testing.T) {
	obs := []Observation{
		{Method: "A", Size: 100, TimeMS: 10},
		{Method: "A", Size: 200, TimeMS: 20},
		{Method: "A", Size: 400, TimeMS: 40},
		{Method: "A", Size: 800, TimeMS: 80},
	}

	a := New(Config{ResamplePoints: 50}, testLogger())
	result, err := a.Run(obs)
	require.NoError(t, err)

	ma := result.Methods[0]
	for name, fit := range ma.Fits {
		if fit.Failed() {
			assert.NotContains(t, ma.Curves, name)
			continue
		}
		curve := ma.Curves[name]
		require.Len(t, curve, 50, "model %s", name)
		assert.Equal(t, 100.0, curve[0].Size)
		assert.Equal(t, 800.0, curve[len(curve)-1].Size)
	}
}
