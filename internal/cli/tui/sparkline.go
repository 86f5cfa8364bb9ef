package tui

import (
	"fmt"
	"strings"

	"github.com/ordolab/ordo/internal/analysis"
)

// Eight block glyphs give eight value levels per column.
var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

const sparkWidth = 40

// sparkline renders values as a row of block glyphs, downsampled to at
// most width columns. All series of one method share the min/max range
// so measured and fitted rows are visually comparable.
func sparkline(values []float64, lo, hi float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	cols := len(values)
	if cols > width {
		cols = width
	}

	span := hi - lo
	var b strings.Builder
	for i := 0; i < cols; i++ {
		// Evenly spaced pick across the series.
		idx := i * (len(values) - 1) / max(cols-1, 1)

		level := 0
		if span > 0 {
			level = int((values[idx] - lo) / span * float64(len(sparkGlyphs)-1))
		}
		if level < 0 {
			level = 0
		}
		if level >= len(sparkGlyphs) {
			level = len(sparkGlyphs) - 1
		}
		b.WriteRune(sparkGlyphs[level])
	}
	return b.String()
}

// renderSparklines builds the measured-versus-fitted curve rows for one
// method. The selected model's row is highlighted; other fitted models
// are listed dimmed below it.
func renderSparklines(m *analysis.MethodAnalysis) string {
	measured := make([]float64, len(m.Points))
	for i, p := range m.Points {
		measured[i] = p.MeanMS
	}
	if len(measured) == 0 {
		return ""
	}

	lo, hi := seriesRange(measured)
	for _, curve := range m.Curves {
		for _, p := range curve {
			if p.TimeMS < lo {
				lo = p.TimeMS
			}
			if p.TimeMS > hi {
				hi = p.TimeMS
			}
		}
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("  %-14s %s", "measured", runStyle.Render(sparkline(measured, lo, hi, sparkWidth))))

	if m.HasSelection {
		if curve, ok := m.Curves[m.Selected]; ok {
			row := sparkline(curveTimes(curve), lo, hi, sparkWidth)
			lines = append(lines, fmt.Sprintf("  %-14s %s", m.SelectedLbl, selectedRunStyle.Render(row)))
		}
	}

	for _, score := range m.Ranking {
		if score.Model == m.Selected || score.Failed {
			continue
		}
		curve, ok := m.Curves[score.Model]
		if !ok {
			continue
		}
		row := sparkline(curveTimes(curve), lo, hi, sparkWidth)
		lines = append(lines, fmt.Sprintf("  %-14s %s", score.Label, runMetaStyle.Render(row)))
	}

	return strings.Join(lines, "\n")
}

func curveTimes(curve []analysis.CurvePoint) []float64 {
	times := make([]float64, len(curve))
	for i, p := range curve {
		times[i] = p.TimeMS
	}
	return times
}

func seriesRange(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
