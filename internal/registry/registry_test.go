package registry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestLeaderAnnounceAndLookup(t *testing.T) {
	reg := New()
	h := reg.Handler()

	w := do(t, h, http.MethodPut, "/leader",
		`{"id":"node1","addr":"127.0.0.1:7100","http_addr":":8080","grpc_addr":":9090","term":3}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("announce status = %d, want 204", w.Code)
	}

	w = do(t, h, http.MethodGet, "/leader", "")
	if w.Code != http.StatusOK {
		t.Fatalf("lookup status = %d, want 200", w.Code)
	}

	var leader Leader
	if err := json.NewDecoder(w.Body).Decode(&leader); err != nil {
		t.Fatalf("failed to decode leader: %v", err)
	}
	if leader.ID != "node1" {
		t.Errorf("leader ID = %q, want node1", leader.ID)
	}
	if leader.GRPCAddr != ":9090" {
		t.Errorf("leader GRPCAddr = %q, want :9090", leader.GRPCAddr)
	}
	if leader.Term != 3 {
		t.Errorf("leader Term = %d, want 3", leader.Term)
	}
	if leader.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be stamped on announce")
	}
}

func TestLeaderAnnounceValidation(t *testing.T) {
	reg := New()
	h := reg.Handler()

	for _, body := range []string{
		`{"addr":"127.0.0.1:7100","grpc_addr":":9090"}`,
		`{"id":"node1","addr":"127.0.0.1:7100"}`,
		`not json`,
	} {
		if w := do(t, h, http.MethodPut, "/leader", body); w.Code != http.StatusBadRequest {
			t.Errorf("announce %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestLeaderLookupWithoutLeader(t *testing.T) {
	reg := New()
	if w := do(t, reg.Handler(), http.MethodGet, "/leader", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestLeaderRecordExpires(t *testing.T) {
	reg := New()
	h := reg.Handler()

	do(t, h, http.MethodPut, "/leader", `{"id":"node1","grpc_addr":":9090"}`)
	reg.leader.UpdatedAt = time.Now().Add(-time.Minute)
	reg.Sweep(time.Now())

	if reg.leader != nil {
		t.Error("sweep should drop a stale leader record")
	}
	if w := do(t, h, http.MethodGet, "/leader", ""); w.Code != http.StatusNotFound {
		t.Errorf("lookup after expiry: status = %d, want 404", w.Code)
	}
}

func TestJoinRequestLifecycle(t *testing.T) {
	reg := New()
	h := reg.Handler()

	w := do(t, h, http.MethodPost, "/join-requests", `{"id":"node2","addr":"127.0.0.1:7200"}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("post status = %d, want 204", w.Code)
	}

	w = do(t, h, http.MethodGet, "/join-requests", "")
	var list []Join
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode join requests: %v", err)
	}
	if len(list) != 1 || list[0].ID != "node2" || list[0].RaftAddr != "127.0.0.1:7200" {
		t.Fatalf("join requests = %+v, want one entry for node2", list)
	}

	if w := do(t, h, http.MethodDelete, "/join-requests?id=node2", ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", w.Code)
	}

	w = do(t, h, http.MethodGet, "/join-requests", "")
	list = nil
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode join requests: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("join requests after delete = %+v, want empty", list)
	}
}

func TestJoinRequestValidation(t *testing.T) {
	reg := New()
	h := reg.Handler()

	if w := do(t, h, http.MethodPost, "/join-requests", `{"id":"node2"}`); w.Code != http.StatusBadRequest {
		t.Errorf("post without addr: status = %d, want 400", w.Code)
	}
	if w := do(t, h, http.MethodDelete, "/join-requests", ""); w.Code != http.StatusBadRequest {
		t.Errorf("delete without id: status = %d, want 400", w.Code)
	}
}

func TestJoinRequestExpires(t *testing.T) {
	reg := New()
	h := reg.Handler()

	do(t, h, http.MethodPost, "/join-requests", `{"id":"node2","addr":"127.0.0.1:7200"}`)

	j := reg.joins["node2"]
	j.StartedAt = time.Now().Add(-time.Minute)
	reg.joins["node2"] = j
	reg.Sweep(time.Now())

	if len(reg.joins) != 0 {
		t.Error("sweep should drop stale join requests")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	reg := New()
	h := reg.Handler()

	if w := do(t, h, http.MethodDelete, "/leader", ""); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE /leader: status = %d, want 405", w.Code)
	}
	if w := do(t, h, http.MethodPut, "/join-requests", ""); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("PUT /join-requests: status = %d, want 405", w.Code)
	}
}
