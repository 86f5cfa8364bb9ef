// Package cli wires the ordo commands: benchmarking, analysis,
// reporting, the HTTP server and the interactive run browser.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ordolab/ordo/internal/config"
	"github.com/ordolab/ordo/internal/logger"
)

var (
	// Global flags
	cfgFile string
	host    string
	port    int
	verbose bool

	// Version info (set from main)
	Version = "0.1.0"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ordo",
	Short: "Empirical time-complexity analysis for benchmarked code",
	Long: `Ordo measures how the running time of data-transformation methods grows
with input size, fits a catalog of growth models (linear, quadratic,
linearithmic, logarithmic) to the measurements by least squares, and
reports which model explains each method best.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&host, "host", "localhost", "server host")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 8090, "server port")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

// GetServerURL returns the server URL based on flags
func GetServerURL() string {
	return fmt.Sprintf("http://%s:%d", host, port)
}

// loadConfig loads the config file given with --config, or defaults.
func loadConfig() *config.Config {
	cfg := config.LoadOrDefault(cfgFile)
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.Logging.Level, cfg.Logging.Format)
}
