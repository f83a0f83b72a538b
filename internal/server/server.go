// Package server exposes the engine over HTTP for interactive regeneration.
// A single regeneration may run at a time; requests arriving while one is in
// progress are dropped with 409, matching the engine's re-entrancy rule.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/RoyceNZ/lagom-map/internal/archive"
	"github.com/RoyceNZ/lagom-map/pkg/catalog"
	"github.com/RoyceNZ/lagom-map/pkg/engine"
	"github.com/RoyceNZ/lagom-map/pkg/scene"
	"github.com/RoyceNZ/lagom-map/pkg/validation"
	"github.com/RoyceNZ/lagom-map/pkg/worldspec"
)

// Server is the local development server for interactive regeneration.
type Server struct {
	projectPath string
	port        int

	busy atomic.Bool

	mu       sync.RWMutex
	lastRes  *engine.Result
	lastDoc  *scene.Document
	lastSpec *worldspec.WorldSpec

	hub *hub
	db  *archive.DB
}

// New creates a server for the given project directory. The archive may be
// nil to disable run recording.
func New(projectPath string, port int, db *archive.DB) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		hub:         newHub(),
		db:          db,
	}
}

// Start launches the HTTP server and generates an initial map.
func (s *Server) Start() error {
	// First map so /api/scene has something to serve immediately.
	if err := s.regenerate(); err != nil {
		return fmt.Errorf("initial generation: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/runs", s.handleRuns)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /ws", s.hub.handleWS)

	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("lagom-map server starting", "addr", addr, "project", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

// regenerate loads the project spec and runs the engine once.
func (s *Server) regenerate() error {
	spec, err := worldspec.LoadProject(s.projectPath)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(s.projectPath, spec)
	if err != nil {
		return err
	}
	if spec.Terrain.Seed == 0 {
		spec.Terrain.Seed = engine.SessionSeed()
	}

	res, err := engine.Generate(spec, cat)
	if err != nil {
		return err
	}
	doc := scene.Assemble(res, cat, spec.SpecVersion, time.Now())

	s.mu.Lock()
	s.lastRes = res
	s.lastDoc = doc
	s.lastSpec = spec
	s.mu.Unlock()

	if s.db != nil {
		if _, err := s.db.RecordRun(context.Background(), res); err != nil {
			slog.Warn("recording run failed", "error", err)
		}
	}

	slog.Info("map generated",
		"size", res.Grid.Size,
		"seed", res.Seed,
		"year", res.Year,
		"warnings", len(res.Report.Warnings),
		"elapsed", res.Elapsed)

	s.hub.broadcast(runSummary{
		Size:     res.Grid.Size,
		Seed:     res.Seed,
		Year:     res.Year,
		Summary:  res.Report.Summary,
		Counts:   res.Counts,
		Elapsed:  res.Elapsed.Milliseconds(),
		Finished: time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

func (s *Server) handleGenerate(w http.ResponseWriter, _ *http.Request) {
	// Drop, do not queue: a request arriving mid-computation is rejected.
	if !s.busy.CompareAndSwap(false, true) {
		writeJSON(w, http.StatusConflict, map[string]string{
			"status": "generation already in progress",
		})
		return
	}

	go func() {
		defer s.busy.Store(false)
		if err := s.regenerate(); err != nil {
			slog.Error("regeneration failed", "error", err)
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	doc := s.lastDoc
	s.mu.RUnlock()
	if doc == nil {
		http.Error(w, "no map generated yet", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	spec := s.lastSpec
	s.mu.RUnlock()
	if spec == nil {
		http.Error(w, "no spec loaded yet", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	res := s.lastRes
	s.mu.RUnlock()
	if res == nil {
		writeJSON(w, http.StatusOK, validation.NewReport())
		return
	}
	writeJSON(w, http.StatusOK, res.Report)
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusOK, []archive.Run{})
		return
	}
	runs, err := s.db.RecentRuns(r.Context(), 50)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []archive.Run{}
	}
	writeJSON(w, http.StatusOK, runs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// loadCatalog resolves the project's catalog override, falling back to the
// built-in table.
func loadCatalog(projectPath string, spec *worldspec.WorldSpec) (*catalog.Catalog, error) {
	if spec.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(filepath.Join(projectPath, spec.CatalogPath))
}
