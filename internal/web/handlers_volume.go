package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ehrlich-b/puzzlebox/internal/stepper"
	"github.com/ehrlich-b/puzzlebox/internal/volume"
)

type createVolumeSessionRequest struct {
	ShapeOnly bool `json:"shape_only"`
}

type createVolumeSessionResponse struct {
	ID string `json:"id"`
}

type volumeStackEntryResponse struct {
	Label  string `json:"label"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Z      int    `json:"z"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
	Depth  int    `json:"depth"`
}

type volumeStepResponse struct {
	Done  bool                       `json:"done"`
	Stack []volumeStackEntryResponse `json:"stack"`
}

type volumeSolutionsResponse struct {
	Solutions []string `json:"solutions"`
}

func (s *Server) handleCreateVolumeSession(w http.ResponseWriter, r *http.Request) {
	var req createVolumeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	id := uuid.NewString()
	sess := &volumeSession{solver: volume.New(req.ShapeOnly)}

	s.volumeMu.Lock()
	s.volumeSes[id] = sess
	s.volumeMu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(createVolumeSessionResponse{ID: id})
}

func (s *Server) lookupVolumeSession(w http.ResponseWriter, r *http.Request) *volumeSession {
	id := mux.Vars(r)["id"]

	s.volumeMu.Lock()
	sess, ok := s.volumeSes[id]
	s.volumeMu.Unlock()

	if !ok {
		http.Error(w, "unknown session id", http.StatusNotFound)
		return nil
	}
	return sess
}

func volumeStackResponse(sess *volumeSession) volumeStepResponse {
	stack := sess.solver.Stack()
	entries := make([]volumeStackEntryResponse, len(stack))
	for i, e := range stack {
		entries[i] = volumeStackEntryResponse{
			Label: e.Block.Label, X: e.X, Y: e.Y, Z: e.Z,
			Height: e.Block.Height, Width: e.Block.Width, Depth: e.Block.Depth,
		}
	}
	return volumeStepResponse{Done: sess.solver.Done(), Stack: entries}
}

func (s *Server) handleVolumeStep(w http.ResponseWriter, r *http.Request) {
	sess := s.lookupVolumeSession(w, r)
	if sess == nil {
		return
	}

	sess.mu.Lock()
	stepper.Step(sess.solver)
	resp := volumeStackResponse(sess)
	sess.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleVolumeStepToSolution(w http.ResponseWriter, r *http.Request) {
	sess := s.lookupVolumeSession(w, r)
	if sess == nil {
		return
	}

	sess.mu.Lock()
	stepper.StepToSolution(sess.solver)
	resp := volumeStackResponse(sess)
	sess.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleVolumeSolutions(w http.ResponseWriter, r *http.Request) {
	sess := s.lookupVolumeSession(w, r)
	if sess == nil {
		return
	}

	sess.mu.Lock()
	solutions := sess.solver.Solutions()
	sess.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(volumeSolutionsResponse{Solutions: solutions})
}
