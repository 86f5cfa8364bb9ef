package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ordolab/ordo/internal/analysis"
)

var csvHeader = []string{"method", "num_instances", "run", "time_ms"}

// WriteCSV writes observations in the same schema the ingest reader
// consumes, so archived runs can be re-analyzed later.
func WriteCSV(w io.Writer, observations []analysis.Observation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("bench: write header: %w", err)
	}

	for _, obs := range observations {
		record := []string{
			obs.Method,
			strconv.Itoa(obs.Size),
			strconv.Itoa(obs.Run),
			strconv.FormatFloat(obs.TimeMS, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("bench: write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes observations to dir, named after the run ID. The
// file lands atomically via a temp file in the same directory.
func WriteCSVFile(dir, runID string, observations []analysis.Observation) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("bench: create output dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("complexity_benchmark_%s.csv", runID))
	tmp, err := os.CreateTemp(dir, ".benchmark-*.csv")
	if err != nil {
		return "", fmt.Errorf("bench: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteCSV(tmp, observations); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("bench: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("bench: rename temp file: %w", err)
	}
	return path, nil
}
