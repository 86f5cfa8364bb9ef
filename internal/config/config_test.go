package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ordo.yaml")

	content := `
bench:
  sizes: [10, 20, 30]
  repetitions: 5
fit:
  max_evaluations: 500
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Bench.Sizes) != 3 || cfg.Bench.Sizes[2] != 30 {
		t.Errorf("sizes not applied: %v", cfg.Bench.Sizes)
	}
	if cfg.Bench.Repetitions != 5 {
		t.Errorf("expected 5 repetitions, got %d", cfg.Bench.Repetitions)
	}
	if cfg.Fit.MaxEvaluations != 500 {
		t.Errorf("expected 500 max evaluations, got %d", cfg.Fit.MaxEvaluations)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging not applied: %+v", cfg.Logging)
	}

	// Untouched sections keep defaults.
	if cfg.Ingest.Pattern != "complexity_benchmark_*.csv" {
		t.Errorf("ingest default lost: %q", cfg.Ingest.Pattern)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/ordo.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadOrDefaultFallback(t *testing.T) {
	cfg := LoadOrDefault("")
	if cfg.Bench.Repetitions != 3 {
		t.Errorf("expected default repetitions, got %d", cfg.Bench.Repetitions)
	}

	cfg = LoadOrDefault("/nonexistent/ordo.yaml")
	if cfg.Fit.MaxEvaluations != 10000 {
		t.Errorf("expected default max evaluations, got %d", cfg.Fit.MaxEvaluations)
	}
}

func TestLoadEnvSubstitution(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ordo.yaml")

	t.Setenv("ORDO_TEST_OUTPUT", "/tmp/ordo-out")

	content := "report:\n  output_dir: ${ORDO_TEST_OUTPUT}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Report.OutputDir != "/tmp/ordo-out" {
		t.Errorf("env substitution failed: %q", cfg.Report.OutputDir)
	}
}
