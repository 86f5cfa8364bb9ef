package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ordolab/ordo/internal/report"
)

const listWidth = 34

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{fetchRuns(m.config)}
	if m.config.RefreshInterval > 0 {
		cmds = append(cmds, tick(m.config.RefreshInterval))
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpWidth := m.width - listWidth - 3
		vpHeight := m.height - 4
		if vpWidth < 20 {
			vpWidth = 20
		}
		if vpHeight < 5 {
			vpHeight = 5
		}

		if !m.ready {
			m.viewport = viewport.New(vpWidth, vpHeight)
			m.ready = true
			m.refreshViewport()
		} else {
			m.viewport.Width = vpWidth
			m.viewport.Height = vpHeight
		}
		return m, nil

	case runsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.runs = msg.runs
			m.lastUpdated = time.Now()
			if m.cursor >= len(m.runs) {
				m.cursor = 0
			}
		}
		return m, nil

	case resultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.result = msg.result
			m.refreshViewport()
		}
		return m, nil

	case tickMsg:
		m.loading = true
		cmds := []tea.Cmd{fetchRuns(m.config)}
		if m.config.RefreshInterval > 0 {
			cmds = append(cmds, tick(m.config.RefreshInterval))
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		m.loading = true
		return m, fetchRuns(m.config)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.runs)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if run, ok := m.selectedRun(); ok {
			m.loading = true
			return m, fetchResult(m.config, run.RunID)
		}
		return m, nil

	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// refreshViewport re-renders the opened run into the viewport: the
// standard report followed by per-method curve sparklines.
func (m *Model) refreshViewport() {
	if !m.ready || m.result == nil {
		return
	}

	var b strings.Builder
	b.WriteString(report.NewRenderer(true).Render(m.result))

	for i := range m.result.Methods {
		method := &m.result.Methods[i]
		rows := renderSparklines(method)
		if rows == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf("Curves: %s", method.Method)))
		b.WriteString("\n")
		b.WriteString(rows)
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}
