package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ordolab/ordo/internal/bench"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the built-in methods across input sizes",
	Long: `Run the built-in data-transformation methods across the configured
input sizes, timing every repetition, and write the measurements as a
CSV file that 'ordo analyze' consumes.`,
	Example: `  ordo bench
  ordo bench --methods reservoir_sampling,equal_width_binning
  ordo bench --sizes 1000,2000,4000 --repetitions 5`,
	RunE: runBench,
}

var (
	benchSizes      []int
	benchReps       int
	benchMethods    []string
	benchAndAnalyze bool
)

func init() {
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", nil, "input sizes to measure (overrides config)")
	benchCmd.Flags().IntVar(&benchReps, "repetitions", 0, "timed repetitions per cell (overrides config)")
	benchCmd.Flags().StringSliceVar(&benchMethods, "methods", nil, "methods to benchmark (default: all)")
	benchCmd.Flags().BoolVar(&benchAndAnalyze, "analyze", false, "analyze the measurements immediately")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := newLogger(cfg)

	if len(benchSizes) > 0 {
		cfg.Bench.Sizes = benchSizes
	}
	if benchReps > 0 {
		cfg.Bench.Repetitions = benchReps
	}
	if len(benchMethods) > 0 {
		cfg.Bench.Methods = benchMethods
	}

	runner := bench.NewRunner(cfg.Bench, log)
	result, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	path, err := bench.WriteCSVFile(cfg.Ingest.Dir, result.RunID, result.Observations)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d observations written to %s\n", result.RunID, len(result.Observations), path)

	if benchAndAnalyze {
		return analyzeObservations(cfg, log, result.Observations, result.RunID, result.Host)
	}
	return nil
}
