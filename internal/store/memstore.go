package store

import (
	"sync"

	"github.com/setkv/setkv/pkg/kv"
)

// MemStore is an in-memory implementation of the kv.Store interface.
// It keeps one membership map per key, protected by a RWMutex for
// thread-safe operations.
type MemStore struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

// Compile-time check to ensure MemStore implements kv.Store.
var _ kv.Store = (*MemStore)(nil)

// NewMemStore creates and returns a new MemStore instance.
func NewMemStore() *MemStore {
	return &MemStore{
		sets: make(map[string]map[string]struct{}),
	}
}

// Exists reports whether the key holds a set.
func (s *MemStore) Exists(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sets[key]
	return ok
}

// AddMembers adds members to the key's set, creating it on first add.
// Returns the count of members that were not already present.
func (s *MemStore) AddMembers(key string, members []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[key]
	if !ok {
		set = make(map[string]struct{}, len(members))
		s.sets[key] = set
	}

	added := 0
	for _, m := range members {
		if _, dup := set[m]; !dup {
			set[m] = struct{}{}
			added++
		}
	}
	return added, nil
}

// RemoveMember removes one member. A key whose last member is removed
// ceases to exist, matching Redis set semantics.
func (s *MemStore) RemoveMember(key, member string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[key]
	if !ok {
		return false, nil
	}
	if _, present := set[member]; !present {
		return false, nil
	}
	delete(set, member)
	if len(set) == 0 {
		delete(s.sets, key)
	}
	return true, nil
}

// Members returns a copy of the key's membership, unordered.
func (s *MemStore) Members(key string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.sets[key]
	members := make([]string, 0, len(set))
	for m := range set {
		members = append(members, m)
	}
	return members
}

// Cardinality returns the member count for the key, 0 if absent.
func (s *MemStore) Cardinality(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sets[key])
}

// DeleteKey removes the key and its set. Returns true if it existed.
func (s *MemStore) DeleteKey(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sets[key]
	delete(s.sets, key)
	return ok, nil
}

// FlushAll drops every key in the store.
func (s *MemStore) FlushAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sets = make(map[string]map[string]struct{})
	return nil
}

// dump copies the full store contents, for Raft snapshots.
func (s *MemStore) dump() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]string, len(s.sets))
	for key, set := range s.sets {
		members := make([]string, 0, len(set))
		for m := range set {
			members = append(members, m)
		}
		out[key] = members
	}
	return out
}

// load replaces the store contents, for Raft restores.
func (s *MemStore) load(data map[string][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sets = make(map[string]map[string]struct{}, len(data))
	for key, members := range data {
		set := make(map[string]struct{}, len(members))
		for _, m := range members {
			set[m] = struct{}{}
		}
		s.sets[key] = set
	}
}
