package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/ordolab/ordo/internal/analysis"
)

// WriteSeriesCSV writes a size-versus-mean-time pivot: one row per
// observed size, one column per method. Sizes a method was not measured
// at leave its cell empty.
func WriteSeriesCSV(w io.Writer, result *analysis.Result) error {
	methods := make([]string, 0, len(result.Methods))
	bySize := map[int]map[string]float64{}
	for _, m := range result.Methods {
		methods = append(methods, m.Method)
		for _, p := range m.Points {
			if bySize[p.Size] == nil {
				bySize[p.Size] = map[string]float64{}
			}
			bySize[p.Size][m.Method] = p.MeanMS
		}
	}

	sizes := make([]int, 0, len(bySize))
	for size := range bySize {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"num_instances"}, methods...)); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	for _, size := range sizes {
		record := make([]string, 0, len(methods)+1)
		record = append(record, strconv.Itoa(size))
		for _, method := range methods {
			if mean, ok := bySize[size][method]; ok {
				record = append(record, strconv.FormatFloat(mean, 'f', -1, 64))
			} else {
				record = append(record, "")
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("report: write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCurvesCSV writes one method's fitted curves: one row per resample
// point, one column per successfully fitted model.
func WriteCurvesCSV(w io.Writer, m *analysis.MethodAnalysis) error {
	models := make([]string, 0, len(m.Curves))
	for model := range m.Curves {
		models = append(models, model)
	}
	sort.Strings(models)

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"size"}, models...)); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	var rows int
	for _, model := range models {
		if len(m.Curves[model]) > rows {
			rows = len(m.Curves[model])
		}
	}

	for i := 0; i < rows; i++ {
		var size string
		times := make([]string, 0, len(models))
		for _, model := range models {
			curve := m.Curves[model]
			if i >= len(curve) {
				times = append(times, "")
				continue
			}
			size = strconv.FormatFloat(curve[i].Size, 'f', -1, 64)
			times = append(times, strconv.FormatFloat(curve[i].TimeMS, 'f', -1, 64))
		}
		record := append([]string{size}, times...)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("report: write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFiles writes the series pivot and per-method curve files into
// dir, returning the paths written.
func WriteFiles(dir string, result *analysis.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: create output dir: %w", err)
	}

	var paths []string

	seriesPath := filepath.Join(dir, "size_vs_time.csv")
	if err := writeWith(seriesPath, func(f *os.File) error {
		return WriteSeriesCSV(f, result)
	}); err != nil {
		return nil, err
	}
	paths = append(paths, seriesPath)

	for i := range result.Methods {
		m := &result.Methods[i]
		if len(m.Curves) == 0 {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("curves_%s.csv", m.Method))
		if err := writeWith(path, func(f *os.File) error {
			return WriteCurvesCSV(f, m)
		}); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeWith(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", filepath.Base(path), err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
