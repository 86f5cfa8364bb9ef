package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogOrderAndArity(t *testing.T) {
	specs := Catalog()
	require.Len(t, specs, 4)

	expected := []struct {
		name   string
		label  string
		params int
	}{
		{"linear", "O(n)", 2},
		{"quadratic", "O(n²)", 3},
		{"linearithmic", "O(n log n)", 2},
		{"logarithmic", "O(log n)", 2},
	}

	for i, e := range expected {
		assert.Equal(t, e.name, specs[i].Name)
		assert.Equal(t, e.label, specs[i].Label)
		assert.Equal(t, e.params, specs[i].ParamCount())
		assert.Equal(t, i, specs[i].Rank)
	}
}

func TestModelEvaluation(t *testing.T) {
	linear, ok := LookupModel("linear")
	require.True(t, ok)
	assert.InDelta(t, 25.0, linear.Evaluate(10, []float64{2, 5}), 1e-12)

	quadratic, ok := LookupModel("quadratic")
	require.True(t, ok)
	assert.InDelta(t, 3*100+2*10+1, quadratic.Evaluate(10, []float64{3, 2, 1}), 1e-12)

	linearithmic, ok := LookupModel("linearithmic")
	require.True(t, ok)
	assert.InDelta(t, 2*10*math.Log(11)+1, linearithmic.Evaluate(10, []float64{2, 1}), 1e-12)

	logarithmic, ok := LookupModel("logarithmic")
	require.True(t, ok)
	assert.InDelta(t, 4*math.Log(11)+3, logarithmic.Evaluate(10, []float64{4, 3}), 1e-12)
}

func TestLogModelsDefinedAtZero(t *testing.T) {
	// The +1 offset keeps the log argument positive for n = 0, so
	// evaluating at the origin is defined and finite.
	for _, name := range []string{"linearithmic", "logarithmic"} {
		spec, ok := LookupModel(name)
		require.True(t, ok)
		v := spec.Evaluate(0, []float64{1, 1})
		assert.True(t, isFinite(v), "model %s at n=0", name)
		assert.InDelta(t, 1.0, v, 1e-12) // ln(1) = 0, only the offset remains
	}
}

func TestLookupModelUnknown(t *testing.T) {
	_, ok := LookupModel("cubic")
	assert.False(t, ok)
}
