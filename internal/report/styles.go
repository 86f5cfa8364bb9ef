package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("86")  // Cyan
	colorSuccess = lipgloss.Color("82")  // Green
	colorWarning = lipgloss.Color("214") // Orange
	colorDanger  = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("245") // Light gray
)

type styles struct {
	title    lipgloss.Style
	section  lipgloss.Style
	header   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	selected lipgloss.Style
	warning  lipgloss.Style
	failed   lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			title: plain, section: plain, header: plain, label: plain,
			value: plain, selected: plain, warning: plain, failed: plain,
		}
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		section:  lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		header:   lipgloss.NewStyle().Bold(true).Foreground(colorMuted),
		label:    lipgloss.NewStyle().Foreground(colorMuted),
		value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(colorSuccess),
		warning:  lipgloss.NewStyle().Foreground(colorWarning),
		failed:   lipgloss.NewStyle().Foreground(colorDanger),
	}
}

// fitQualityColor grades an R² value for display.
func fitQualityColor(r2 float64) lipgloss.Color {
	switch {
	case r2 >= 0.95:
		return colorSuccess
	case r2 >= 0.7:
		return colorWarning
	default:
		return colorDanger
	}
}
