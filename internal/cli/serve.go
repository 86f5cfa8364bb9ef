package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ordolab/ordo/internal/analysis"
	"github.com/ordolab/ordo/internal/server"
	"github.com/ordolab/ordo/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis API over HTTP",
	Long: `Start the HTTP server in foreground mode. Clients POST observations to
/analyze and read archived runs via /runs.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	// Override bind address if given via flag
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = host
	}

	log := newLogger(cfg)

	log.Info("ordo starting", "version", Version, "config", cfgFile)

	analyzer := analysis.New(analysis.Config{
		Fit: analysis.FitConfig{
			MaxEvaluations: cfg.Fit.MaxEvaluations,
			Tolerance:      cfg.Fit.Tolerance,
		},
		ResamplePoints: cfg.Fit.ResamplePoints,
	}, log)

	archive, err := store.New(cfg.Server.DataDir, log)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}

	srv := server.New(cfg, analyzer, archive, log, Version)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown error", "error", err)
		}
	}()

	log.Info("ordo ready", "addr", srv.Addr())

	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("ordo stopped")
	return nil
}
