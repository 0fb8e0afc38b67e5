package store

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/hashicorp/raft"
)

// memorySink collects a snapshot in memory so Persist/Restore can be
// exercised without a raft cluster.
type memorySink struct {
	bytes.Buffer
	cancelled bool
}

func (s *memorySink) ID() string    { return "in-memory" }
func (s *memorySink) Cancel() error { s.cancelled = true; return nil }
func (s *memorySink) Close() error  { return nil }

func applyCommand(t *testing.T, rs *RaftStore, cmd RaftCommand) interface{} {
	t.Helper()
	data, err := json.Marshal(cmd)
	if err != nil {
		t.Fatalf("failed to marshal command: %v", err)
	}
	return rs.Apply(&raft.Log{Data: data})
}

func TestApplyAddCountsOnlyNew(t *testing.T) {
	rs := NewRaftStore(NewMemStore(), nil)

	resp := applyCommand(t, rs, RaftCommand{Op: "add", Key: "colors", Members: []string{"red", "green", "red"}})
	added, ok := resp.(int)
	if !ok {
		t.Fatalf("add response = %T(%v), want int", resp, resp)
	}
	if added != 2 {
		t.Errorf("added = %d, want 2 (duplicate within batch collapses)", added)
	}
	if got := rs.Cardinality("colors"); got != 2 {
		t.Errorf("Cardinality = %d, want 2", got)
	}
}

func TestApplyRemoveReportsPresence(t *testing.T) {
	rs := NewRaftStore(NewMemStore(), nil)
	applyCommand(t, rs, RaftCommand{Op: "add", Key: "colors", Members: []string{"red"}})

	resp := applyCommand(t, rs, RaftCommand{Op: "remove", Key: "colors", Member: "blue"})
	if removed, ok := resp.(bool); !ok || removed {
		t.Errorf("remove of absent member = %v, want false", resp)
	}

	resp = applyCommand(t, rs, RaftCommand{Op: "remove", Key: "colors", Member: "red"})
	if removed, ok := resp.(bool); !ok || !removed {
		t.Errorf("remove of present member = %v, want true", resp)
	}
	if rs.Exists("colors") {
		t.Error("key should cease to exist once its last member is removed")
	}
}

func TestApplyDeleteAndFlush(t *testing.T) {
	rs := NewRaftStore(NewMemStore(), nil)
	applyCommand(t, rs, RaftCommand{Op: "add", Key: "colors", Members: []string{"red"}})
	applyCommand(t, rs, RaftCommand{Op: "add", Key: "fruits", Members: []string{"apple"}})

	resp := applyCommand(t, rs, RaftCommand{Op: "delete", Key: "colors"})
	if deleted, ok := resp.(bool); !ok || !deleted {
		t.Errorf("delete of existing key = %v, want true", resp)
	}

	if resp := applyCommand(t, rs, RaftCommand{Op: "flush"}); resp != nil {
		t.Errorf("flush response = %v, want nil", resp)
	}
	if rs.Exists("fruits") {
		t.Error("no key should survive an applied flush")
	}
}

func TestApplyRejectsUnknownOp(t *testing.T) {
	rs := NewRaftStore(NewMemStore(), nil)

	resp := applyCommand(t, rs, RaftCommand{Op: "rename", Key: "colors"})
	err, ok := resp.(error)
	if !ok {
		t.Fatalf("response = %T(%v), want error", resp, resp)
	}
	if !strings.Contains(err.Error(), "unknown") {
		t.Errorf("error = %v, want it to name the unknown op", err)
	}
}

func TestApplyRejectsMalformedEntry(t *testing.T) {
	rs := NewRaftStore(NewMemStore(), nil)

	resp := rs.Apply(&raft.Log{Data: []byte("not json")})
	if _, ok := resp.(error); !ok {
		t.Fatalf("response = %T(%v), want error", resp, resp)
	}
}

func TestSnapshotPersistRestoreRoundTrip(t *testing.T) {
	rs := NewRaftStore(NewMemStore(), nil)
	applyCommand(t, rs, RaftCommand{Op: "add", Key: "colors", Members: []string{"red", "green"}})
	applyCommand(t, rs, RaftCommand{Op: "add", Key: "fruits", Members: []string{"apple"}})

	snap, err := rs.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}

	sink := &memorySink{}
	if err := snap.Persist(sink); err != nil {
		t.Fatalf("Persist returned error: %v", err)
	}
	snap.Release()
	if sink.cancelled {
		t.Error("Persist should not cancel the sink on success")
	}

	restored := NewRaftStore(NewMemStore(), nil)
	if err := restored.Restore(io.NopCloser(bytes.NewReader(sink.Bytes()))); err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}

	if got := restored.Cardinality("colors"); got != 2 {
		t.Errorf("restored colors cardinality = %d, want 2", got)
	}
	if got := restored.Cardinality("fruits"); got != 1 {
		t.Errorf("restored fruits cardinality = %d, want 1", got)
	}
	if !restored.Exists("colors") || !restored.Exists("fruits") {
		t.Error("restored store should contain both keys")
	}
}
