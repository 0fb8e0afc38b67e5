// Package registry implements the soft-state discovery service the
// cluster nodes use to find the current leader and to hand off join
// requests. It holds no durable state and is not part of Raft
// correctness: the leader re-announces itself on a short interval and
// every record here expires.
package registry

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"
)

// TTLs sized against the nodes' 3s announce interval: a leader record
// survives three missed announcements before lookups start failing.
const (
	LeaderTTL      = 10 * time.Second
	JoinRequestTTL = 30 * time.Second
)

// Leader is the record the current raft leader publishes about itself.
// Clients resolve the gRPC address from it; joining nodes resolve the
// raft address.
type Leader struct {
	ID        string    `json:"id"`
	RaftAddr  string    `json:"addr"`
	HTTPAddr  string    `json:"http_addr"`
	GRPCAddr  string    `json:"grpc_addr"`
	Term      uint64    `json:"term"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Join is a pending request by a node to be added to the cluster as a
// voter. The leader drains these and deletes each one it has acted on.
type Join struct {
	ID        string    `json:"id"`
	RaftAddr  string    `json:"addr"`
	StartedAt time.Time `json:"started_at"`
}

// Registry is safe for concurrent use by the HTTP handlers and the
// sweep loop.
type Registry struct {
	mu     sync.Mutex
	leader *Leader
	joins  map[string]Join
}

func New() *Registry {
	return &Registry{joins: make(map[string]Join)}
}

// Handler returns the HTTP surface: /leader (GET, PUT) and
// /join-requests (GET, POST, DELETE).
func (reg *Registry) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/leader", reg.handleLeader)
	mux.HandleFunc("/join-requests", reg.handleJoins)
	return mux
}

func (reg *Registry) handleLeader(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		reg.mu.Lock()
		leader := reg.leader
		reg.mu.Unlock()

		if leader == nil || time.Since(leader.UpdatedAt) > LeaderTTL {
			http.Error(w, "no current leader", http.StatusNotFound)
			return
		}
		writeJSON(w, leader)

	case http.MethodPut:
		var l Leader
		if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if l.ID == "" || l.GRPCAddr == "" {
			http.Error(w, "leader announcement needs id and grpc_addr", http.StatusBadRequest)
			return
		}
		l.UpdatedAt = time.Now()

		reg.mu.Lock()
		changed := reg.leader == nil || reg.leader.ID != l.ID || reg.leader.Term != l.Term
		reg.leader = &l
		reg.mu.Unlock()

		if changed {
			log.Printf("leader is now %s (term %d, grpc %s)", l.ID, l.Term, l.GRPCAddr)
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (reg *Registry) handleJoins(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		reg.mu.Lock()
		list := make([]Join, 0, len(reg.joins))
		for _, j := range reg.joins {
			list = append(list, j)
		}
		reg.mu.Unlock()
		writeJSON(w, list)

	case http.MethodPost:
		var j Join
		if err := json.NewDecoder(r.Body).Decode(&j); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if j.ID == "" || j.RaftAddr == "" {
			http.Error(w, "join request needs id and addr", http.StatusBadRequest)
			return
		}
		j.StartedAt = time.Now()

		reg.mu.Lock()
		_, known := reg.joins[j.ID]
		reg.joins[j.ID] = j
		reg.mu.Unlock()

		if !known {
			log.Printf("join request from %s at %s", j.ID, j.RaftAddr)
		}
		w.WriteHeader(http.StatusNoContent)

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		reg.mu.Lock()
		delete(reg.joins, id)
		reg.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// Sweep drops the leader record and any join requests whose TTL has
// passed as of now. The binary runs it on a ticker.
func (reg *Registry) Sweep(now time.Time) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.leader != nil && now.Sub(reg.leader.UpdatedAt) > LeaderTTL {
		log.Printf("leader record for %s expired", reg.leader.ID)
		reg.leader = nil
	}
	for id, j := range reg.joins {
		if now.Sub(j.StartedAt) > JoinRequestTTL {
			delete(reg.joins, id)
		}
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
