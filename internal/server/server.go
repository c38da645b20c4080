// Package server exposes the trade-study calculators as JSON over HTTP for
// interactive exploration. The scenario is reloaded on every request so
// edits to scenario.yaml show up without a restart.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/dysonworks/occulter/pkg/reflector"
	"github.com/dysonworks/occulter/pkg/roadmap"
	"github.com/dysonworks/occulter/pkg/scenario"
	"github.com/dysonworks/occulter/pkg/stationkeeping"
	"github.com/dysonworks/occulter/pkg/sunshade"
	"github.com/dysonworks/occulter/pkg/validation"
)

// Server is the local development server for interactive trade studies.
type Server struct {
	projectPath string
	port        int
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/scenario", s.handleScenario)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/sunshade", s.handleSunshade)
	mux.HandleFunc("GET /api/stationkeeping", s.handleStationkeeping)
	mux.HandleFunc("GET /api/reflector", s.handleReflector)
	mux.HandleFunc("GET /api/roadmap", s.handleRoadmap)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("occulter server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

// load reloads and validates the scenario for one request.
func (s *Server) load(w http.ResponseWriter) (*scenario.Scenario, bool) {
	scn, err := scenario.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("loading scenario: %v", err))
		return nil, false
	}
	if report := validation.ValidateSchema(scn); !report.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":      "scenario has validation errors",
			"validation": report,
		})
		return nil, false
	}
	return scn, true
}

func (s *Server) handleScenario(w http.ResponseWriter, _ *http.Request) {
	scn, err := scenario.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("loading scenario: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, scn)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	scn, err := scenario.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("loading scenario: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, validation.ValidateSchema(scn))
}

func (s *Server) handleSunshade(w http.ResponseWriter, _ *http.Request) {
	scn, ok := s.load(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sunshade.SizeAll(scn))
}

func (s *Server) handleStationkeeping(w http.ResponseWriter, _ *http.Request) {
	scn, ok := s.load(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stationkeeping.BudgetAll(scn))
}

func (s *Server) handleReflector(w http.ResponseWriter, _ *http.Request) {
	scn, ok := s.load(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, reflector.OptimizeAll(scn))
}

func (s *Server) handleRoadmap(w http.ResponseWriter, _ *http.Request) {
	scn, ok := s.load(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, roadmap.BuildAll(scn))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
