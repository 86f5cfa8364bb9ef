package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/ordolab/ordo/internal/analysis"
	"github.com/ordolab/ordo/internal/store"
)

// Config holds TUI configuration.
type Config struct {
	ServerURL       string
	RefreshInterval time.Duration
}

// Model represents the TUI state: the run list on the left, the report
// of the opened run in a scrollable viewport on the right.
type Model struct {
	config Config

	// Data from API
	runs   []store.Entry
	result *analysis.Result

	// UI state
	cursor      int
	viewport    viewport.Model
	ready       bool
	width       int
	height      int
	loading     bool
	err         error
	lastUpdated time.Time
}

// NewModel creates a new TUI model.
func NewModel(cfg Config) Model {
	return Model{
		config:  cfg,
		loading: true,
	}
}

// selectedRun returns the run under the cursor.
func (m Model) selectedRun() (store.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.runs) {
		return store.Entry{}, false
	}
	return m.runs[m.cursor], true
}
