package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/ordolab/ordo/internal/analysis"
	"github.com/ordolab/ordo/internal/store"
)

type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ModelInfo struct {
	Name   string   `json:"name"`
	Label  string   `json:"label"`
	Params []string `json:"params"`
}

type AnalyzeRequest struct {
	// TimeUnit must be "ms" or empty; clients convert before submitting.
	TimeUnit     string                 `json:"time_unit,omitempty"`
	Observations []analysis.Observation `json:"observations"`
}

type RunListResponse struct {
	Runs []store.Entry `json:"runs"`
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	resp := InfoResponse{
		Name:    "ordo",
		Version: s.version,
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	catalog := analysis.Catalog()

	models := make([]ModelInfo, len(catalog))
	for i, spec := range catalog {
		models[i] = ModelInfo{
			Name:   spec.Name,
			Label:  spec.Label,
			Params: spec.ParamNames,
		}
	}

	s.writeJSON(w, http.StatusOK, models)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.TimeUnit != "" && req.TimeUnit != "ms" {
		http.Error(w, "time_unit must be ms", http.StatusBadRequest)
		return
	}

	result, err := s.analyzer.Run(req.Observations)
	if err != nil {
		// Run fails only on invalid input; fit failures land in the result.
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result.RunID = uuid.NewString()
	if s.archive != nil {
		if err := s.archive.Save(result); err != nil {
			s.logger.Error("failed to archive result", "run_id", result.RunID, "error", err)
		}
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		s.writeJSON(w, http.StatusOK, RunListResponse{Runs: []store.Entry{}})
		return
	}

	entries := s.archive.List()
	if entries == nil {
		entries = []store.Entry{}
	}
	s.writeJSON(w, http.StatusOK, RunListResponse{Runs: entries})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		http.Error(w, "archive not configured", http.StatusNotFound)
		return
	}

	result, err := s.archive.Load(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "run not found", http.StatusNotFound)
			return
		}
		s.logger.Error("failed to load run", "error", err)
		http.Error(w, "failed to load run", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
