// Package report renders analysis results for humans (styled terminal
// text) and for tooling (CSV exports of the aggregated series and the
// fitted curves).
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ordolab/ordo/internal/analysis"
)

// Renderer formats analysis results as terminal text.
type Renderer struct {
	styles styles
	color  bool
}

// NewRenderer creates a renderer. With color disabled all styling is
// dropped, which keeps the output pipe- and diff-friendly.
func NewRenderer(color bool) *Renderer {
	return &Renderer{styles: newStyles(color), color: color}
}

// Render produces the full report for a result.
func (r *Renderer) Render(result *analysis.Result) string {
	var b strings.Builder

	b.WriteString(r.styles.title.Render("Empirical Complexity Analysis"))
	b.WriteString("\n")
	r.writeHeader(&b, result)

	if len(result.Methods) == 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.warning.Render("No methods analyzed."))
		b.WriteString("\n")
		return b.String()
	}

	for i := range result.Methods {
		b.WriteString("\n")
		r.writeMethod(&b, &result.Methods[i])
	}

	b.WriteString("\n")
	r.writeGuide(&b)
	return b.String()
}

func (r *Renderer) writeHeader(b *strings.Builder, result *analysis.Result) {
	if result.RunID != "" {
		fmt.Fprintf(b, "%s %s\n", r.styles.label.Render("Run:"), result.RunID)
	}
	if !result.GeneratedAt.IsZero() {
		fmt.Fprintf(b, "%s %s\n", r.styles.label.Render("Generated:"), result.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Fprintf(b, "%s %s\n", r.styles.label.Render("Time unit:"), result.TimeUnit)

	if h := result.Host; h != nil {
		host := h.Hostname
		if h.CPUModel != "" {
			host = fmt.Sprintf("%s (%s, %d cores)", host, h.CPUModel, h.CPUCores)
		}
		fmt.Fprintf(b, "%s %s\n", r.styles.label.Render("Host:"), host)
	}
}

func (r *Renderer) writeMethod(b *strings.Builder, m *analysis.MethodAnalysis) {
	b.WriteString(r.styles.section.Render(fmt.Sprintf("== %s ==", m.Method)))
	b.WriteString("\n\n")

	r.writePointsTable(b, m.Points)
	b.WriteString("\n")
	r.writeRankingTable(b, m.Ranking)
	b.WriteString("\n")

	if m.HasSelection {
		line := fmt.Sprintf("Best fit: %s  (R² = %.4f)", m.SelectedLbl, m.SelectedR2)
		b.WriteString(r.styles.selected.Render(line))
		b.WriteString("\n")
		if params := r.formatParams(m.Fits[m.Selected]); params != "" {
			b.WriteString(r.styles.label.Render(params))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(r.styles.warning.Render("No model could be fitted to this method."))
		b.WriteString("\n")
	}
}

// formatParams renders a fit's parameters in declared order.
func (r *Renderer) formatParams(fit analysis.FitResult) string {
	if len(fit.Params) == 0 {
		return ""
	}

	byName := fit.ParamMap()
	parts := make([]string, 0, len(fit.ParamNames))
	for _, name := range fit.ParamNames {
		parts = append(parts, fmt.Sprintf("%s = %.6g", name, byName[name]))
	}
	return "Parameters: " + strings.Join(parts, ", ")
}

func (r *Renderer) writePointsTable(b *strings.Builder, points []analysis.AggregatedPoint) {
	header := fmt.Sprintf("%10s %14s %12s %8s", "size", "mean (ms)", "stddev", "runs")
	b.WriteString(r.styles.header.Render(header))
	b.WriteString("\n")
	for _, p := range points {
		fmt.Fprintf(b, "%10d %14.4f %12.4f %8d\n", p.Size, p.MeanMS, p.StdDevMS, p.Count)
	}
}

func (r *Renderer) writeRankingTable(b *strings.Builder, ranking []analysis.ModelScore) {
	header := fmt.Sprintf("%-14s %-14s %10s %12s", "model", "form", "R²", "RMSE")
	b.WriteString(r.styles.header.Render(header))
	b.WriteString("\n")

	for _, score := range ranking {
		if score.Failed {
			line := fmt.Sprintf("%-14s %-14s %10s %12s", score.Model, score.Label, "-", score.Failure)
			b.WriteString(r.styles.failed.Render(line))
			b.WriteString("\n")
			continue
		}

		line := fmt.Sprintf("%-14s %-14s %10.4f %12.4f", score.Model, score.Label, score.RSquared, score.RMSE)
		if r.color {
			line = lipgloss.NewStyle().Foreground(fitQualityColor(score.RSquared)).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func (r *Renderer) writeGuide(b *strings.Builder) {
	b.WriteString(r.styles.section.Render("Reading the results"))
	b.WriteString("\n")
	for _, line := range []string{
		"R² close to 1.0 means the model explains the timing data well.",
		"When several models score alike, the one with fewer parameters wins.",
		"Timings below ~1ms are dominated by noise; prefer larger inputs.",
	} {
		fmt.Fprintf(b, "  %s\n", r.styles.label.Render(line))
	}
}
