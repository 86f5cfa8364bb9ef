// Package ingest reads benchmark observations from CSV files produced by
// external collectors. It maps configurable column names onto the
// observation shape and converts times to milliseconds before the
// analyzer sees them; the analysis core never deals in other units.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ordolab/ordo/internal/analysis"
	"github.com/ordolab/ordo/internal/config"
)

// timeToMS converts one unit of the named time unit to milliseconds.
var timeToMS = map[string]float64{
	"ns": 1e-6,
	"us": 1e-3,
	"ms": 1,
	"s":  1000,
}

// Reader decodes observation CSV files according to its column mapping.
type Reader struct {
	columns  config.ColumnsConfig
	unitToMS float64
}

// NewReader creates a Reader for the configured column names and time
// unit.
func NewReader(cfg config.IngestConfig) (*Reader, error) {
	factor, ok := timeToMS[cfg.TimeUnit]
	if !ok {
		return nil, fmt.Errorf("ingest: unsupported time unit %q", cfg.TimeUnit)
	}
	if cfg.Columns.Method == "" || cfg.Columns.Size == "" || cfg.Columns.Time == "" {
		return nil, fmt.Errorf("ingest: method, size and time columns are required")
	}
	return &Reader{columns: cfg.Columns, unitToMS: factor}, nil
}

// ReadFile reads every observation from the named CSV file.
func (r *Reader) ReadFile(path string) ([]analysis.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	obs, err := r.Read(f)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", path, err)
	}
	return obs, nil
}

// Read reads observations from CSV data. The first record must be a
// header containing the mapped columns; unknown columns are ignored.
func (r *Reader) Read(src io.Reader) ([]analysis.Observation, error) {
	cr := csv.NewReader(src)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	methodIdx, ok := index[r.columns.Method]
	if !ok {
		return nil, fmt.Errorf("missing column %q", r.columns.Method)
	}
	sizeIdx, ok := index[r.columns.Size]
	if !ok {
		return nil, fmt.Errorf("missing column %q", r.columns.Size)
	}
	timeIdx, ok := index[r.columns.Time]
	if !ok {
		return nil, fmt.Errorf("missing column %q", r.columns.Time)
	}
	runIdx := -1
	if r.columns.Run != "" {
		if i, ok := index[r.columns.Run]; ok {
			runIdx = i
		}
	}

	var observations []analysis.Observation
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		size, err := strconv.Atoi(record[sizeIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad size %q: %w", line, record[sizeIdx], err)
		}

		timeVal, err := strconv.ParseFloat(record[timeIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad time %q: %w", line, record[timeIdx], err)
		}

		obs := analysis.Observation{
			Method: record[methodIdx],
			Size:   size,
			TimeMS: timeVal * r.unitToMS,
		}
		if runIdx >= 0 && runIdx < len(record) {
			if run, err := strconv.Atoi(record[runIdx]); err == nil {
				obs.Run = run
			}
		}
		observations = append(observations, obs)
	}

	if len(observations) == 0 {
		return nil, fmt.Errorf("no data rows")
	}
	return observations, nil
}
