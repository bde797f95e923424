package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ehrlich-b/puzzlebox/internal/dodeca"
	"github.com/ehrlich-b/puzzlebox/internal/stepper"
)

type createDodecaSessionRequest struct {
	Pentagons [][5]int `json:"pentagons,omitempty"`
}

type createDodecaSessionResponse struct {
	ID string `json:"id"`
}

type dodecaStackEntryResponse struct {
	PentagonID int    `json:"pentagon_id"`
	Rotation   int    `json:"rotation"`
	Slot       int    `json:"slot"`
	Labels     [5]int `json:"labels"`
}

type dodecaStepResponse struct {
	Done  bool                       `json:"done"`
	Stack []dodecaStackEntryResponse `json:"stack"`
}

type dodecaSolutionsResponse struct {
	Solutions []string `json:"solutions"`
}

func (s *Server) handleCreateDodecaSession(w http.ResponseWriter, r *http.Request) {
	var req createDodecaSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var pentagons [dodeca.PentagonCount][5]int
	if len(req.Pentagons) == dodeca.PentagonCount {
		copy(pentagons[:], req.Pentagons)
	} else {
		pentagons = dodeca.DefaultPentagons()
	}

	id := uuid.NewString()
	sess := &dodecaSession{solver: dodeca.New(pentagons)}

	s.dodecaMu.Lock()
	s.dodecaSes[id] = sess
	s.dodecaMu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(createDodecaSessionResponse{ID: id})
}

func (s *Server) lookupDodecaSession(w http.ResponseWriter, r *http.Request) *dodecaSession {
	id := mux.Vars(r)["id"]

	s.dodecaMu.Lock()
	sess, ok := s.dodecaSes[id]
	s.dodecaMu.Unlock()

	if !ok {
		http.Error(w, "unknown session id", http.StatusNotFound)
		return nil
	}
	return sess
}

func dodecaStackResponse(sess *dodecaSession) dodecaStepResponse {
	stack := sess.solver.Stack()
	entries := make([]dodecaStackEntryResponse, len(stack))
	for i, e := range stack {
		entries[i] = dodecaStackEntryResponse{
			PentagonID: e.PentagonID, Rotation: e.Rotation, Slot: e.Slot, Labels: e.Labels,
		}
	}
	return dodecaStepResponse{Done: sess.solver.Done(), Stack: entries}
}

func (s *Server) handleDodecaStep(w http.ResponseWriter, r *http.Request) {
	sess := s.lookupDodecaSession(w, r)
	if sess == nil {
		return
	}

	sess.mu.Lock()
	stepper.Step(sess.solver)
	resp := dodecaStackResponse(sess)
	sess.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleDodecaStepToSolution(w http.ResponseWriter, r *http.Request) {
	sess := s.lookupDodecaSession(w, r)
	if sess == nil {
		return
	}

	sess.mu.Lock()
	stepper.StepToSolution(sess.solver)
	resp := dodecaStackResponse(sess)
	sess.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleDodecaFacets(w http.ResponseWriter, r *http.Request) {
	sess := s.lookupDodecaSession(w, r)
	if sess == nil {
		return
	}

	sess.mu.Lock()
	resp := dodecaStackResponse(sess)
	solutions := dodecaSolutionsResponse{Solutions: sess.solver.Solutions()}
	sess.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		dodecaStepResponse
		dodecaSolutionsResponse
	}{resp, solutions})
}
