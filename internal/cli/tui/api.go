package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ordolab/ordo/internal/analysis"
	"github.com/ordolab/ordo/internal/store"
)

// Messages for tea.Cmd
type runsMsg struct {
	runs []store.Entry
	err  error
}

type resultMsg struct {
	result *analysis.Result
	err    error
}

type tickMsg time.Time

type runListResponse struct {
	Runs []store.Entry `json:"runs"`
}

// API client for TUI
type apiClient struct {
	baseURL string
	client  *http.Client
}

func newAPIClient(cfg Config) *apiClient {
	return &apiClient{
		baseURL: cfg.ServerURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *apiClient) get(path string) ([]byte, error) {
	resp, err := c.client.Get(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// fetchRuns lists archived runs as a tea.Cmd.
func fetchRuns(cfg Config) tea.Cmd {
	return func() tea.Msg {
		client := newAPIClient(cfg)
		data, err := client.get("/runs")
		if err != nil {
			return runsMsg{err: err}
		}

		var resp runListResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return runsMsg{err: fmt.Errorf("failed to parse run list: %w", err)}
		}

		return runsMsg{runs: resp.Runs}
	}
}

// fetchResult loads one archived run as a tea.Cmd.
func fetchResult(cfg Config, runID string) tea.Cmd {
	return func() tea.Msg {
		client := newAPIClient(cfg)
		data, err := client.get("/runs/" + runID)
		if err != nil {
			return resultMsg{err: err}
		}

		var result analysis.Result
		if err := json.Unmarshal(data, &result); err != nil {
			return resultMsg{err: fmt.Errorf("failed to parse result: %w", err)}
		}

		return resultMsg{result: &result}
	}
}

// tick creates a periodic refresh command.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
