package bench

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordolab/ordo/internal/config"
)

func testBenchConfig() config.BenchConfig {
	return config.BenchConfig{
		Sizes:       []int{50, 100},
		Repetitions: 2,
		Methods:     []string{"equal_width_binning", "reservoir_sampling"},
		WarmupRuns:  1,
		Seed:        1,
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunnerProducesFullMatrix(t *testing.T) {
	runner := NewRunner(testBenchConfig(), quietLogger())
	result, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.False(t, result.StartedAt.IsZero())
	require.NotNil(t, result.Host)
	assert.NotEmpty(t, result.Host.GoVersion)

	// 2 methods x 2 sizes x 2 repetitions.
	require.Len(t, result.Observations, 8)
	for _, obs := range result.Observations {
		assert.GreaterOrEqual(t, obs.TimeMS, 0.0)
		assert.Contains(t, []int{50, 100}, obs.Size)
		assert.Contains(t, []int{1, 2}, obs.Run)
	}
}

func TestRunnerUnknownMethod(t *testing.T) {
	cfg := testBenchConfig()
	cfg.Methods = []string{"missing"}

	runner := NewRunner(cfg, quietLogger())
	_, err := runner.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestRunnerNoSizes(t *testing.T) {
	cfg := testBenchConfig()
	cfg.Sizes = nil

	runner := NewRunner(cfg, quietLogger())
	_, err := runner.Run(context.Background())
	require.Error(t, err)
}

func TestRunnerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(testBenchConfig(), quietLogger())
	_, err := runner.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateDatasetDeterministic(t *testing.T) {
	a := generateDataset(100, 1)
	b := generateDataset(100, 1)
	assert.Equal(t, a, b)

	c := generateDataset(100, 2)
	assert.NotEqual(t, a, c, "different seeds should give different data")
}
