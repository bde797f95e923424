// Package web exposes the stepwise solver contract over HTTP: sessions are
// created, stepped and inspected via JSON, so an external visualizer can
// drive either solver one search edge at a time.
package web

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/ehrlich-b/puzzlebox/internal/dodeca"
	"github.com/ehrlich-b/puzzlebox/internal/obslog"
	"github.com/ehrlich-b/puzzlebox/internal/volume"
)

// Server hosts both solvers' HTTP session APIs.
type Server struct {
	router *mux.Router

	volumeMu  sync.Mutex
	volumeSes map[string]*volumeSession

	dodecaMu  sync.Mutex
	dodecaSes map[string]*dodecaSession
}

// volumeSession guards one volumetric solver with its own mutex — the
// solver itself is single-threaded, but net/http dispatches handlers on
// arbitrary goroutines, so each session serializes its own step calls.
type volumeSession struct {
	mu     sync.Mutex
	solver *volume.Solver
}

type dodecaSession struct {
	mu     sync.Mutex
	solver *dodeca.Solver
}

// NewServer builds a Server with its routes registered.
func NewServer() *Server {
	s := &Server{
		router:    mux.NewRouter(),
		volumeSes: make(map[string]*volumeSession),
		dodecaSes: make(map[string]*dodecaSession),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	api.HandleFunc("/volume/sessions", s.handleCreateVolumeSession).Methods("POST")
	api.HandleFunc("/volume/sessions/{id}/step", s.handleVolumeStep).Methods("POST")
	api.HandleFunc("/volume/sessions/{id}/step-to-solution", s.handleVolumeStepToSolution).Methods("POST")
	api.HandleFunc("/volume/sessions/{id}/solutions", s.handleVolumeSolutions).Methods("GET")

	api.HandleFunc("/dodeca/sessions", s.handleCreateDodecaSession).Methods("POST")
	api.HandleFunc("/dodeca/sessions/{id}/step", s.handleDodecaStep).Methods("POST")
	api.HandleFunc("/dodeca/sessions/{id}/step-to-solution", s.handleDodecaStepToSolution).Methods("POST")
	api.HandleFunc("/dodeca/sessions/{id}/facets", s.handleDodecaFacets).Methods("GET")
}

// Start serves on addr until the process is killed or http.Server returns.
func (s *Server) Start(addr string) error {
	obslog.Log.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, s.router)
}
