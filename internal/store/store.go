// Package store archives analysis results on disk as versioned JSON so
// runs can be listed, reloaded, and compared after the fact.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/ordolab/ordo/internal/analysis"
)

const (
	currentVersion = 1
	indexFileName  = "runs.json"
)

// ErrNotFound is returned when a requested run is not in the archive.
var ErrNotFound = errors.New("store: run not found")

// Entry summarizes one archived run in the index.
type Entry struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Methods     []string  `json:"methods"`
	File        string    `json:"file"`
}

type index struct {
	Version   int              `json:"version"`
	UpdatedAt time.Time        `json:"updated_at"`
	Runs      map[string]Entry `json:"runs"`
}

func newEmptyIndex() *index {
	return &index{
		Version: currentVersion,
		Runs:    make(map[string]Entry),
	}
}

// Store is a directory-backed archive of analysis results.
type Store struct {
	dataDir string
	logger  *slog.Logger

	mu  sync.RWMutex
	idx *index
}

// New opens the archive rooted at dataDir, reading the index if one
// exists. A missing or unreadable index starts fresh; an index written
// by a newer release also starts fresh rather than guessing its layout.
func New(dataDir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{dataDir: dataDir, logger: logger, idx: newEmptyIndex()}

	path := filepath.Join(dataDir, indexFileName)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("store: open index: %w", err)
	}
	defer file.Close()

	var idx index
	if err := json.NewDecoder(file).Decode(&idx); err != nil {
		logger.Warn("index file unreadable, starting fresh", "path", path, "error", err)
		return s, nil
	}
	if idx.Version > currentVersion {
		logger.Warn("index version newer than supported, starting fresh",
			"file_version", idx.Version, "supported_version", currentVersion)
		return s, nil
	}
	if idx.Runs == nil {
		idx.Runs = make(map[string]Entry)
	}

	s.idx = &idx
	logger.Info("archive opened", "path", dataDir, "runs", len(idx.Runs))
	return s, nil
}

// Save archives a result and updates the index. Both writes land via
// temp file plus rename so a crash never leaves a torn file behind.
func (s *Store) Save(result *analysis.Result) error {
	if result == nil || result.RunID == "" {
		return fmt.Errorf("store: result must have a run ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("store: create data dir: %w", err)
	}

	fileName := fmt.Sprintf("result_%s.json", result.RunID)
	if err := writeJSONAtomic(filepath.Join(s.dataDir, fileName), result); err != nil {
		return err
	}

	methods := make([]string, len(result.Methods))
	for i, m := range result.Methods {
		methods[i] = m.Method
	}

	s.idx.Runs[result.RunID] = Entry{
		RunID:       result.RunID,
		GeneratedAt: result.GeneratedAt,
		Methods:     methods,
		File:        fileName,
	}
	s.idx.UpdatedAt = time.Now()

	if err := writeJSONAtomic(filepath.Join(s.dataDir, indexFileName), s.idx); err != nil {
		return err
	}

	s.logger.Debug("run archived", "run_id", result.RunID, "methods", len(methods))
	return nil
}

// Load reads one archived result back.
func (s *Store) Load(runID string) (*analysis.Result, error) {
	s.mu.RLock()
	entry, ok := s.idx.Runs[runID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	file, err := os.Open(filepath.Join(s.dataDir, entry.File))
	if err != nil {
		return nil, fmt.Errorf("store: open result: %w", err)
	}
	defer file.Close()

	var result analysis.Result
	if err := json.NewDecoder(file).Decode(&result); err != nil {
		return nil, fmt.Errorf("store: decode result %s: %w", runID, err)
	}
	return &result, nil
}

// List returns index entries, most recent first.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.idx.Runs))
	for _, e := range s.idx.Runs {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].GeneratedAt.Equal(entries[j].GeneratedAt) {
			return entries[i].GeneratedAt.After(entries[j].GeneratedAt)
		}
		return entries[i].RunID < entries[j].RunID
	})
	return entries
}

// Latest loads the most recently generated result.
func (s *Store) Latest() (*analysis.Result, error) {
	entries := s.List()
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return s.Load(entries[0].RunID)
}

// Count returns the number of archived runs.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.idx.Runs)
}

func writeJSONAtomic(path string, v any) error {
	tempPath := path + ".tmp"

	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("store: encode %s: %w", filepath.Base(path), err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}
