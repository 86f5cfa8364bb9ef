package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderTitleBar())

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listStyle.Render(m.renderRunList()),
		m.renderDetail(),
	)
	sections = append(sections, body)

	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("ORDO RUNS")

	status := ""
	if m.loading {
		status = "loading..."
	}

	help := helpStyle.Render("q:quit r:refresh ↑↓:select enter:open pgup/pgdn:scroll")

	rightPart := strings.TrimSpace(fmt.Sprintf("%s %s", status, help))
	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(rightPart) - 2
	if spacing < 1 {
		spacing = 1
	}

	return fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", spacing), rightPart)
}

func (m Model) renderRunList() string {
	if len(m.runs) == 0 {
		return runMetaStyle.Render("no archived runs")
	}

	maxVisible := m.height - 4
	if maxVisible < 1 {
		maxVisible = 1
	}

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(m.runs) {
		end = len(m.runs)
	}

	var lines []string
	for i, run := range m.runs[start:end] {
		idx := start + i

		id := run.RunID
		if len(id) > 12 {
			id = id[:12]
		}
		line := fmt.Sprintf("%-12s %s", id, run.GeneratedAt.Format("01-02 15:04"))

		if idx == m.cursor {
			lines = append(lines, selectedRunStyle.Render("> "+line))
		} else {
			lines = append(lines, runStyle.Render("  "+line))
		}
	}

	if len(m.runs) > maxVisible {
		lines = append(lines, runMetaStyle.Render(fmt.Sprintf("[%d-%d of %d]", start+1, end, len(m.runs))))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	if m.result == nil {
		return runMetaStyle.Render("  select a run and press enter")
	}
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}

func (m Model) renderFooter() string {
	if m.lastUpdated.IsZero() {
		return ""
	}
	return helpStyle.Render(fmt.Sprintf(
		"  Runs: %d │ Updated: %s",
		len(m.runs),
		m.lastUpdated.Format("15:04:05"),
	))
}
