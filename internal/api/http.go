package api

import (
	"encoding/json"
	"net/http"

	"github.com/hashicorp/raft"
	"github.com/setkv/setkv/pkg/kv"
)

// Server wraps a kv.Store and exposes HTTP endpoints for set operations.
// The Store can be backed by a Raft-replicated implementation; in that
// case non-leader nodes answer with a redirect to the current leader.
type Server struct {
	Store kv.Store
	Raft  *raft.Raft
}

// NewServer creates a new HTTP server with the given store.
func NewServer(store kv.Store, raftNode *raft.Raft) *Server {
	return &Server{
		Store: store,
		Raft:  raftNode,
	}
}

// RegisterRoutes registers all HTTP handlers on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/exists", s.handleExists)
	mux.HandleFunc("/members", s.handleMembers)
	mux.HandleFunc("/cardinality", s.handleCardinality)
	mux.HandleFunc("/add", s.handleAdd)
	mux.HandleFunc("/remove", s.handleRemove)
	mux.HandleFunc("/delete", s.handleDelete)
	mux.HandleFunc("/flush", s.handleFlush)
}

// redirectIfFollower sends a leader redirect when this node is part of a
// Raft cluster but not its leader. Returns true if the request was handled.
func (s *Server) redirectIfFollower(w http.ResponseWriter, path string) bool {
	if s.Raft == nil || s.Raft.State() == raft.Leader {
		return false
	}
	leader := s.Raft.Leader()
	if leader == "" {
		http.Error(w, "Not leader and no leader known", http.StatusServiceUnavailable)
		return true
	}
	w.Header().Set("Location", "http://"+string(leader)+":8080"+path)
	http.Error(w, "Not leader. Redirect to leader.", http.StatusTemporaryRedirect)
	return true
}

// handleExists handles GET /exists?key=foo requests.
func (s *Server) handleExists(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.redirectIfFollower(w, "/exists") {
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"exists": s.Store.Exists(key)})
}

// handleMembers handles GET /members?key=foo requests.
// Returns the member list as JSON; absent keys yield 404.
func (s *Server) handleMembers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.redirectIfFollower(w, "/members") {
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	if !s.Store.Exists(key) {
		http.Error(w, "Key not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"members":     s.Store.Members(key),
		"cardinality": s.Store.Cardinality(key),
	})
}

// handleCardinality handles GET /cardinality?key=foo requests.
func (s *Server) handleCardinality(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.redirectIfFollower(w, "/cardinality") {
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"cardinality": s.Store.Cardinality(key)})
}

// handleAdd handles POST /add requests with JSON body.
// Expects: {"key": "colors", "members": ["red", "green"]}
func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.redirectIfFollower(w, "/add") {
		return
	}

	var req struct {
		Key     string   `json:"key"`
		Members []string `json:"members"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Key == "" {
		http.Error(w, "Missing key field", http.StatusBadRequest)
		return
	}
	if len(req.Members) == 0 {
		http.Error(w, "Missing members field", http.StatusBadRequest)
		return
	}

	added, err := s.Store.AddMembers(req.Key, req.Members)
	if err != nil {
		http.Error(w, "Failed to add members", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"added": added})
}

// handleRemove handles POST /remove requests with JSON body.
// Expects: {"key": "colors", "member": "red"}
func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.redirectIfFollower(w, "/remove") {
		return
	}

	var req struct {
		Key    string `json:"key"`
		Member string `json:"member"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Key == "" || req.Member == "" {
		http.Error(w, "Missing key or member field", http.StatusBadRequest)
		return
	}

	removed, err := s.Store.RemoveMember(req.Key, req.Member)
	if err != nil {
		http.Error(w, "Failed to remove member", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"removed": removed})
}

// handleDelete handles POST /delete requests with JSON body.
// Expects: {"key": "colors"}
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.redirectIfFollower(w, "/delete") {
		return
	}

	var req struct {
		Key string `json:"key"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Key == "" {
		http.Error(w, "Missing key field", http.StatusBadRequest)
		return
	}

	deleted, err := s.Store.DeleteKey(req.Key)
	if err != nil {
		http.Error(w, "Failed to delete key", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"deleted": deleted})
}

// handleFlush handles POST /flush requests. Destroys every key.
func (s *Server) handleFlush(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.redirectIfFollower(w, "/flush") {
		return
	}

	if err := s.Store.FlushAll(); err != nil {
		http.Error(w, "Failed to flush store", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
