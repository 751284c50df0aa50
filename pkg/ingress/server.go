// Package ingress implements the natural-language front-end's HTTP
// facade: add_requirement and get_ast exposed over a single
// process-wide current AST, with three routes and a
// {success, data, message} envelope on every response.
package ingress

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/AbS224/Intent-coding/pkg/ast"
	log "github.com/sirupsen/logrus"
)

// envelope is the {success, data, message} wire shape every route
// returns.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// requirementRequest is the POST /api/requirements body.
type requirementRequest struct {
	Content string `json:"content"`
}

// Server wraps a process-wide current AST behind mutual exclusion.
type Server struct {
	mu  sync.Mutex
	ast *ast.IntentAst

	mux *http.ServeMux
}

// NewServer constructs a Server with an empty current AST and the
// three routes registered.
func NewServer() *Server {
	s := &Server{
		ast: ast.NewAst(),
		mux: http.NewServeMux(),
	}

	s.mux.HandleFunc("/", s.handleHealth)
	s.mux.HandleFunc("/api/requirements", s.handleAddRequirement)
	s.mux.HandleFunc("/api/ast", s.handleGetAST)

	return s
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// AddRequirement appends a content-only requirement to the current
// AST and returns it. It performs no parsing of content into
// constraints — that grammar is an external collaborator's
// responsibility; a requirement constructed this way
// carries an empty Constraints slice until something else populates
// it via the AST directly.
func (s *Server) AddRequirement(content string) ast.Requirement {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := ast.NewRequirement(content)
	s.ast.AddRequirement(req)

	return req
}

// GetAST returns a snapshot of the current process-wide AST.
func (s *Server) GetAST() ast.IntentAst {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.ast
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    "Intent-coding ingress facade",
		Message: "System operational",
	})
}

func (s *Server) handleAddRequirement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, envelope{Message: "method not allowed"})
		return
	}

	var body requirementRequest

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Warnf("ingress: malformed requirement body: %v", err)
		writeJSON(w, http.StatusBadRequest, envelope{Message: "malformed request body"})

		return
	}

	if body.Content == "" {
		writeJSON(w, http.StatusBadRequest, envelope{Message: "content must not be empty"})
		return
	}

	req := s.AddRequirement(body.Content)

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    req,
		Message: "Requirement added",
	})
}

func (s *Server) handleGetAST(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, envelope{Message: "method not allowed"})
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    s.GetAST(),
		Message: "Intent-AST retrieved",
	})
}

func writeJSON(w http.ResponseWriter, status int, e envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(e); err != nil {
		log.Errorf("ingress: failed to encode response: %v", err)
	}
}
