package cli

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ordolab/ordo/internal/analysis"
	"github.com/ordolab/ordo/internal/config"
	"github.com/ordolab/ordo/internal/ingest"
	"github.com/ordolab/ordo/internal/report"
	"github.com/ordolab/ordo/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Fit growth models to benchmark measurements",
	Long: `Read benchmark measurements from a CSV file, fit the model catalog to
every method's timing series, and print the report. Without an argument
the most recent benchmark file in the configured directory is used.

The result is archived under the server data directory so it can be
browsed later with 'ordo report' or 'ordo tui'.`,
	Example: `  ordo analyze
  ordo analyze output/complexity_benchmark_1a2b3c.csv
  ordo analyze --no-save --csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeNoSave bool
	analyzeCSV    bool
)

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "do not archive the result")
	analyzeCmd.Flags().BoolVar(&analyzeCSV, "csv", false, "write CSV exports to the report output dir")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := newLogger(cfg)

	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		latest, err := ingest.FindLatest(cfg.Ingest.Dir, cfg.Ingest.Pattern)
		if err != nil {
			return fmt.Errorf("no input file given and none found in %s: %w", cfg.Ingest.Dir, err)
		}
		path = latest
	}

	reader, err := ingest.NewReader(cfg.Ingest)
	if err != nil {
		return err
	}

	observations, err := reader.ReadFile(path)
	if err != nil {
		return err
	}
	log.Info("measurements loaded", "path", path, "observations", len(observations))

	return analyzeObservations(cfg, log, observations, uuid.NewString(), nil)
}

// analyzeObservations runs the analysis pipeline and handles output and
// archiving. Shared between 'analyze' and 'bench --analyze'.
func analyzeObservations(cfg *config.Config, log *slog.Logger, observations []analysis.Observation, runID string, host *analysis.HostInfo) error {
	analyzer := analysis.New(analysis.Config{
		Fit: analysis.FitConfig{
			MaxEvaluations: cfg.Fit.MaxEvaluations,
			Tolerance:      cfg.Fit.Tolerance,
		},
		ResamplePoints: cfg.Fit.ResamplePoints,
	}, log)

	result, err := analyzer.Run(observations)
	if err != nil {
		return err
	}
	result.RunID = runID
	result.Host = host

	fmt.Println(report.NewRenderer(cfg.Report.Color).Render(result))

	if analyzeCSV {
		paths, err := report.WriteFiles(cfg.Report.OutputDir, result)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("wrote %s\n", p)
		}
	}

	if !analyzeNoSave {
		archive, err := store.New(cfg.Server.DataDir, log)
		if err != nil {
			return err
		}
		if err := archive.Save(result); err != nil {
			return err
		}
		log.Info("result archived", "run_id", result.RunID, "dir", cfg.Server.DataDir)
	}
	return nil
}
