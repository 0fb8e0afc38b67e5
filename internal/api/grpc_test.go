package api

import (
	"context"
	"testing"

	"github.com/setkv/setkv/api/proto"
	"github.com/setkv/setkv/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestServer() *GRPCServer {
	return NewGRPCServer(store.NewMemStore())
}

func TestPing(t *testing.T) {
	s := newTestServer()
	resp, err := s.Ping(context.Background(), &proto.PingRequest{})
	if err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
	if !resp.Ok {
		t.Error("Ping should report ok")
	}
}

func TestAddMembersAndQuery(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	addResp, err := s.AddMembers(ctx, &proto.AddMembersRequest{
		Key:     "colors",
		Members: []string{"red", "green", "red"},
	})
	if err != nil {
		t.Fatalf("AddMembers returned error: %v", err)
	}
	if addResp.Added != 2 {
		t.Errorf("Added = %d, want 2", addResp.Added)
	}

	existsResp, err := s.Exists(ctx, &proto.ExistsRequest{Key: "colors"})
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if !existsResp.Exists {
		t.Error("key should exist after add")
	}

	cardResp, err := s.Cardinality(ctx, &proto.CardinalityRequest{Key: "colors"})
	if err != nil {
		t.Fatalf("Cardinality returned error: %v", err)
	}
	if cardResp.Cardinality != 2 {
		t.Errorf("Cardinality = %d, want 2", cardResp.Cardinality)
	}

	membersResp, err := s.Members(ctx, &proto.MembersRequest{Key: "colors"})
	if err != nil {
		t.Fatalf("Members returned error: %v", err)
	}
	if len(membersResp.Members) != 2 {
		t.Errorf("Members = %v, want 2 entries", membersResp.Members)
	}
}

func TestRemoveMemberReportsPresence(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()
	s.AddMembers(ctx, &proto.AddMembersRequest{Key: "colors", Members: []string{"red"}})

	resp, err := s.RemoveMember(ctx, &proto.RemoveMemberRequest{Key: "colors", Member: "blue"})
	if err != nil {
		t.Fatalf("RemoveMember returned error: %v", err)
	}
	if resp.Removed {
		t.Error("removing an absent member should report false")
	}

	resp, err = s.RemoveMember(ctx, &proto.RemoveMemberRequest{Key: "colors", Member: "red"})
	if err != nil {
		t.Fatalf("RemoveMember returned error: %v", err)
	}
	if !resp.Removed {
		t.Error("removing a present member should report true")
	}
}

func TestDeleteKeyReportsExistence(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()
	s.AddMembers(ctx, &proto.AddMembersRequest{Key: "colors", Members: []string{"red"}})

	resp, err := s.DeleteKey(ctx, &proto.DeleteKeyRequest{Key: "colors"})
	if err != nil {
		t.Fatalf("DeleteKey returned error: %v", err)
	}
	if !resp.Deleted {
		t.Error("deleting an existing key should report true")
	}

	resp, err = s.DeleteKey(ctx, &proto.DeleteKeyRequest{Key: "colors"})
	if err != nil {
		t.Fatalf("DeleteKey returned error: %v", err)
	}
	if resp.Deleted {
		t.Error("deleting an absent key should report false")
	}
}

func TestFlushAllDestroysEveryKey(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()
	s.AddMembers(ctx, &proto.AddMembersRequest{Key: "colors", Members: []string{"red"}})
	s.AddMembers(ctx, &proto.AddMembersRequest{Key: "fruits", Members: []string{"apple"}})

	if _, err := s.FlushAll(ctx, &proto.FlushAllRequest{}); err != nil {
		t.Fatalf("FlushAll returned error: %v", err)
	}

	resp, err := s.Exists(ctx, &proto.ExistsRequest{Key: "colors"})
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if resp.Exists {
		t.Error("no key should survive a flush")
	}
}

func TestEmptyArgumentsAreRejected(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"Exists", func() error {
			_, err := s.Exists(ctx, &proto.ExistsRequest{})
			return err
		}},
		{"AddMembers empty key", func() error {
			_, err := s.AddMembers(ctx, &proto.AddMembersRequest{Members: []string{"x"}})
			return err
		}},
		{"AddMembers no members", func() error {
			_, err := s.AddMembers(ctx, &proto.AddMembersRequest{Key: "k"})
			return err
		}},
		{"AddMembers blank member", func() error {
			_, err := s.AddMembers(ctx, &proto.AddMembersRequest{Key: "k", Members: []string{"x", ""}})
			return err
		}},
		{"RemoveMember empty member", func() error {
			_, err := s.RemoveMember(ctx, &proto.RemoveMemberRequest{Key: "k"})
			return err
		}},
		{"Members", func() error {
			_, err := s.Members(ctx, &proto.MembersRequest{})
			return err
		}},
		{"Cardinality", func() error {
			_, err := s.Cardinality(ctx, &proto.CardinalityRequest{})
			return err
		}},
		{"DeleteKey", func() error {
			_, err := s.DeleteKey(ctx, &proto.DeleteKeyRequest{})
			return err
		}},
	}

	for _, tt := range tests {
		err := tt.call()
		if err == nil {
			t.Errorf("%s: expected error for empty argument", tt.name)
			continue
		}
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("%s: code = %v, want InvalidArgument", tt.name, status.Code(err))
		}
	}
}
