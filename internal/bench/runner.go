package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ordolab/ordo/internal/analysis"
	"github.com/ordolab/ordo/internal/config"
)

// RunResult bundles the observations of one benchmark run with the
// metadata needed to archive and compare runs.
type RunResult struct {
	RunID        string                 `json:"run_id"`
	StartedAt    time.Time              `json:"started_at"`
	Duration     time.Duration          `json:"duration"`
	Host         *analysis.HostInfo     `json:"host,omitempty"`
	Observations []analysis.Observation `json:"observations"`
}

// Runner times registered methods across the configured size ladder.
type Runner struct {
	cfg     config.BenchConfig
	logger  *slog.Logger
	nowFunc func() time.Time
}

// NewRunner creates a runner for the given benchmark configuration.
func NewRunner(cfg config.BenchConfig, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, logger: logger, nowFunc: time.Now}
}

// Run executes the full benchmark matrix: every resolved method at every
// configured size, repeated Repetitions times after WarmupRuns discarded
// passes. The context is checked between timed passes so a run can be
// cancelled without losing the process.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	selected, err := Resolve(r.cfg.Methods)
	if err != nil {
		return nil, err
	}
	if len(r.cfg.Sizes) == 0 {
		return nil, fmt.Errorf("bench: no sizes configured")
	}

	result := &RunResult{
		RunID:     uuid.NewString(),
		StartedAt: r.nowFunc(),
		Host:      CollectHostInfo(),
	}

	r.logger.Info("benchmark run starting",
		"run_id", result.RunID,
		"methods", len(selected),
		"sizes", len(r.cfg.Sizes),
		"repetitions", r.cfg.Repetitions)

	for _, size := range r.cfg.Sizes {
		values := generateDataset(size, r.cfg.Seed)
		for _, method := range selected {
			obs, err := r.timeMethod(ctx, method, size, values)
			if err != nil {
				return nil, err
			}
			result.Observations = append(result.Observations, obs...)
		}
	}

	result.Duration = r.nowFunc().Sub(result.StartedAt)
	r.logger.Info("benchmark run complete",
		"run_id", result.RunID,
		"observations", len(result.Observations),
		"duration", result.Duration)
	return result, nil
}

func (r *Runner) timeMethod(ctx context.Context, method Method, size int, values []float64) ([]analysis.Observation, error) {
	for i := 0; i < r.cfg.WarmupRuns; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		method.Transform(values)
	}

	obs := make([]analysis.Observation, 0, r.cfg.Repetitions)
	for run := 1; run <= r.cfg.Repetitions; run++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		method.Transform(values)
		elapsed := time.Since(start)

		obs = append(obs, analysis.Observation{
			Method: method.Name,
			Size:   size,
			TimeMS: float64(elapsed.Nanoseconds()) / 1e6,
			Run:    run,
		})
	}

	r.logger.Debug("method timed", "method", method.Name, "size", size, "repetitions", r.cfg.Repetitions)
	return obs, nil
}

// generateDataset builds the input for one size. The generator is
// re-seeded per size so every method at a given size sees identical data
// regardless of execution order.
func generateDataset(size int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed + int64(size)))
	values := make([]float64, size)
	for i := range values {
		values[i] = rng.Float64() * 1000
	}
	return values
}
