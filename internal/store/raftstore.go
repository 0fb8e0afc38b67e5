package store

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hashicorp/raft"
	"github.com/setkv/setkv/pkg/kv"
)

// GetRaft returns the underlying raft.Raft pointer (for API layer leader checks)
func (rs *RaftStore) GetRaft() *raft.Raft {
	return rs.raft
}

// RaftCommand represents a mutating set operation to be applied via Raft.
type RaftCommand struct {
	Op      string   `json:"op"` // "add", "remove", "delete" or "flush"
	Key     string   `json:"key,omitempty"`
	Member  string   `json:"member,omitempty"`
	Members []string `json:"members,omitempty"`
}

// RaftStore wraps a MemStore and applies changes via Raft consensus.
// Reads are served from the local store; writes go through the log.
type RaftStore struct {
	store *MemStore
	raft  *raft.Raft
}

// Compile-time check to ensure RaftStore implements kv.Store.
var _ kv.Store = (*RaftStore)(nil)

func NewRaftStore(store *MemStore, r *raft.Raft) *RaftStore {
	return &RaftStore{store: store, raft: r}
}

// SetRaft attaches the raft node after construction. The FSM has to be
// built before raft.NewRaft can be called, so wiring happens in two steps.
func (rs *RaftStore) SetRaft(r *raft.Raft) {
	rs.raft = r
}

// Apply applies a Raft log entry to the local store.
func (rs *RaftStore) Apply(log *raft.Log) interface{} {
	var cmd RaftCommand
	if err := json.Unmarshal(log.Data, &cmd); err != nil {
		return err
	}
	switch cmd.Op {
	case "add":
		added, err := rs.store.AddMembers(cmd.Key, cmd.Members)
		if err != nil {
			return err
		}
		return added
	case "remove":
		removed, err := rs.store.RemoveMember(cmd.Key, cmd.Member)
		if err != nil {
			return err
		}
		return removed
	case "delete":
		deleted, err := rs.store.DeleteKey(cmd.Key)
		if err != nil {
			return err
		}
		return deleted
	case "flush":
		return rs.store.FlushAll()
	}
	return fmt.Errorf("unknown raft command op %q", cmd.Op)
}

// Snapshot captures the full set contents for log compaction.
func (rs *RaftStore) Snapshot() (raft.FSMSnapshot, error) {
	return &setSnapshot{sets: rs.store.dump()}, nil
}

// Restore replaces the local store from a snapshot stream.
func (rs *RaftStore) Restore(rc io.ReadCloser) error {
	defer rc.Close()
	var sets map[string][]string
	if err := json.NewDecoder(rc).Decode(&sets); err != nil {
		return err
	}
	rs.store.load(sets)
	return nil
}

type setSnapshot struct {
	sets map[string][]string
}

func (s *setSnapshot) Persist(sink raft.SnapshotSink) error {
	if err := json.NewEncoder(sink).Encode(s.sets); err != nil {
		sink.Cancel()
		return err
	}
	return sink.Close()
}

func (s *setSnapshot) Release() {}

func (rs *RaftStore) apply(cmd RaftCommand) (interface{}, error) {
	data, err := json.Marshal(cmd)
	if err != nil {
		return nil, err
	}
	f := rs.raft.Apply(data, 0)
	if err := f.Error(); err != nil {
		return nil, err
	}
	resp := f.Response()
	if err, ok := resp.(error); ok {
		return nil, err
	}
	return resp, nil
}

// AddMembers submits an add command to Raft.
func (rs *RaftStore) AddMembers(key string, members []string) (int, error) {
	resp, err := rs.apply(RaftCommand{Op: "add", Key: key, Members: members})
	if err != nil {
		return 0, err
	}
	return resp.(int), nil
}

// RemoveMember submits a remove command to Raft.
func (rs *RaftStore) RemoveMember(key, member string) (bool, error) {
	resp, err := rs.apply(RaftCommand{Op: "remove", Key: key, Member: member})
	if err != nil {
		return false, err
	}
	return resp.(bool), nil
}

// DeleteKey submits a delete command to Raft.
func (rs *RaftStore) DeleteKey(key string) (bool, error) {
	resp, err := rs.apply(RaftCommand{Op: "delete", Key: key})
	if err != nil {
		return false, err
	}
	return resp.(bool), nil
}

// FlushAll submits a flush command to Raft.
func (rs *RaftStore) FlushAll() error {
	_, err := rs.apply(RaftCommand{Op: "flush"})
	return err
}

// Exists reads directly from the local store.
func (rs *RaftStore) Exists(key string) bool {
	return rs.store.Exists(key)
}

// Members reads directly from the local store.
func (rs *RaftStore) Members(key string) []string {
	return rs.store.Members(key)
}

// Cardinality reads directly from the local store.
func (rs *RaftStore) Cardinality(key string) int {
	return rs.store.Cardinality(key)
}
