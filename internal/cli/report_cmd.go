package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ordolab/ordo/internal/analysis"
	"github.com/ordolab/ordo/internal/report"
	"github.com/ordolab/ordo/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report [run-id]",
	Short: "Print the report of an archived run",
	Long: `Render an archived analysis run. Without an argument the most recent
run is shown. Use 'ordo report --list' to see what is archived.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

var reportList bool

func init() {
	reportCmd.Flags().BoolVar(&reportList, "list", false, "list archived runs instead of rendering")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := newLogger(cfg)

	archive, err := store.New(cfg.Server.DataDir, log)
	if err != nil {
		return err
	}

	if reportList {
		entries := archive.List()
		if len(entries) == 0 {
			fmt.Println("no archived runs")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %s  %d methods\n", e.RunID, e.GeneratedAt.Format("2006-01-02 15:04:05"), len(e.Methods))
		}
		return nil
	}

	result, err := loadRun(archive, args)
	if err != nil {
		return err
	}

	fmt.Println(report.NewRenderer(cfg.Report.Color).Render(result))
	return nil
}

func loadRun(archive *store.Store, args []string) (*analysis.Result, error) {
	if len(args) == 1 {
		r, err := archive.Load(args[0])
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("run %q is not archived", args[0])
		}
		return r, err
	}

	r, err := archive.Latest()
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("no archived runs; run 'ordo analyze' first")
	}
	return r, err
}
