package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ordolab/ordo/internal/cli/tui"
)

var refreshInterval time.Duration

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse archived runs interactively",
	Long: `Launch a terminal UI listing the archived analysis runs of a running
server. Select a run to read its full report.

Examples:
  ordo tui                    # Connect to the local server
  ordo tui --host 10.0.0.1    # Connect to a remote server
  ordo tui --refresh 5s       # Re-list runs every 5 seconds`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().DurationVar(&refreshInterval, "refresh", 10*time.Second, "run list refresh interval")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	config := tui.Config{
		ServerURL:       GetServerURL(),
		RefreshInterval: refreshInterval,
	}

	return tui.Run(config)
}
