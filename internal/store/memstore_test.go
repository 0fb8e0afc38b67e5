package store

import (
	"sort"
	"testing"
)

func TestAddMembersCountsOnlyNew(t *testing.T) {
	s := NewMemStore()

	added, err := s.AddMembers("colors", []string{"red", "green", "red"})
	if err != nil {
		t.Fatalf("AddMembers returned error: %v", err)
	}
	if added != 2 {
		t.Errorf("added = %d, want 2 (duplicate within batch collapses)", added)
	}
	if got := s.Cardinality("colors"); got != 2 {
		t.Errorf("Cardinality = %d, want 2", got)
	}

	added, err = s.AddMembers("colors", []string{"red", "blue"})
	if err != nil {
		t.Fatalf("AddMembers returned error: %v", err)
	}
	if added != 1 {
		t.Errorf("added = %d, want 1 (existing member not re-counted)", added)
	}
	if got := s.Cardinality("colors"); got != 3 {
		t.Errorf("Cardinality = %d, want 3", got)
	}
}

func TestExistsAndMembers(t *testing.T) {
	s := NewMemStore()

	if s.Exists("colors") {
		t.Error("key should not exist before first add")
	}
	if got := s.Members("colors"); len(got) != 0 {
		t.Errorf("Members of absent key = %v, want empty", got)
	}

	s.AddMembers("colors", []string{"red", "green"})
	if !s.Exists("colors") {
		t.Error("key should exist after add")
	}

	members := s.Members("colors")
	sort.Strings(members)
	want := []string{"green", "red"}
	if len(members) != len(want) {
		t.Fatalf("Members = %v, want %v", members, want)
	}
	for i := range want {
		if members[i] != want[i] {
			t.Errorf("Members = %v, want %v", members, want)
			break
		}
	}
}

func TestRemoveMember(t *testing.T) {
	s := NewMemStore()
	s.AddMembers("colors", []string{"red", "green"})

	removed, err := s.RemoveMember("colors", "missing")
	if err != nil {
		t.Fatalf("RemoveMember returned error: %v", err)
	}
	if removed {
		t.Error("removing an absent member should report false")
	}
	if got := s.Cardinality("colors"); got != 2 {
		t.Errorf("Cardinality = %d, want 2 after failed remove", got)
	}

	removed, err = s.RemoveMember("colors", "red")
	if err != nil {
		t.Fatalf("RemoveMember returned error: %v", err)
	}
	if !removed {
		t.Error("removing a present member should report true")
	}
	if got := s.Cardinality("colors"); got != 1 {
		t.Errorf("Cardinality = %d, want 1", got)
	}
}

func TestRemovingLastMemberDeletesKey(t *testing.T) {
	s := NewMemStore()
	s.AddMembers("colors", []string{"red"})

	if _, err := s.RemoveMember("colors", "red"); err != nil {
		t.Fatalf("RemoveMember returned error: %v", err)
	}
	if s.Exists("colors") {
		t.Error("key should cease to exist once its last member is removed")
	}
	if got := s.Cardinality("colors"); got != 0 {
		t.Errorf("Cardinality = %d, want 0", got)
	}
}

func TestDeleteKey(t *testing.T) {
	s := NewMemStore()
	s.AddMembers("colors", []string{"red"})

	deleted, err := s.DeleteKey("colors")
	if err != nil {
		t.Fatalf("DeleteKey returned error: %v", err)
	}
	if !deleted {
		t.Error("deleting an existing key should report true")
	}
	if s.Exists("colors") {
		t.Error("key should not exist after delete")
	}

	deleted, err = s.DeleteKey("colors")
	if err != nil {
		t.Fatalf("DeleteKey returned error: %v", err)
	}
	if deleted {
		t.Error("deleting an absent key should report false")
	}
}

func TestFlushAll(t *testing.T) {
	s := NewMemStore()
	s.AddMembers("colors", []string{"red"})
	s.AddMembers("fruits", []string{"apple"})

	if err := s.FlushAll(); err != nil {
		t.Fatalf("FlushAll returned error: %v", err)
	}
	if s.Exists("colors") || s.Exists("fruits") {
		t.Error("no key should survive a flush")
	}
}

func TestDumpAndLoadRoundTrip(t *testing.T) {
	s := NewMemStore()
	s.AddMembers("colors", []string{"red", "green"})
	s.AddMembers("fruits", []string{"apple"})

	restored := NewMemStore()
	restored.load(s.dump())

	if got := restored.Cardinality("colors"); got != 2 {
		t.Errorf("restored colors cardinality = %d, want 2", got)
	}
	if got := restored.Cardinality("fruits"); got != 1 {
		t.Errorf("restored fruits cardinality = %d, want 1", got)
	}
}
