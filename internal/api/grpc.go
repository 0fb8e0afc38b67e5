package api

import (
	"context"

	"github.com/setkv/setkv/api/proto"
	"github.com/setkv/setkv/pkg/kv"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCServer implements the proto.SetKVServer interface.
// It wraps a kv.Store and exposes it over gRPC.
type GRPCServer struct {
	proto.UnimplementedSetKVServer
	Store kv.Store
}

// NewGRPCServer creates a new gRPC server with the given store.
func NewGRPCServer(store kv.Store) *GRPCServer {
	return &GRPCServer{
		Store: store,
	}
}

// Ping answers the client's liveness probe.
func (s *GRPCServer) Ping(ctx context.Context, req *proto.PingRequest) (*proto.PingResponse, error) {
	return &proto.PingResponse{Ok: true}, nil
}

// Exists reports whether a key holds a set.
func (s *GRPCServer) Exists(ctx context.Context, req *proto.ExistsRequest) (*proto.ExistsResponse, error) {
	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key is required")
	}

	return &proto.ExistsResponse{
		Exists: s.Store.Exists(req.Key),
	}, nil
}

// AddMembers adds a batch of members to a key's set.
func (s *GRPCServer) AddMembers(ctx context.Context, req *proto.AddMembersRequest) (*proto.AddMembersResponse, error) {
	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key is required")
	}
	if len(req.Members) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one member is required")
	}
	for _, m := range req.Members {
		if m == "" {
			return nil, status.Error(codes.InvalidArgument, "members must be non-empty")
		}
	}

	added, err := s.Store.AddMembers(req.Key, req.Members)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to add members")
	}

	return &proto.AddMembersResponse{
		Added: int64(added),
	}, nil
}

// RemoveMember removes one member from a key's set.
func (s *GRPCServer) RemoveMember(ctx context.Context, req *proto.RemoveMemberRequest) (*proto.RemoveMemberResponse, error) {
	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key is required")
	}
	if req.Member == "" {
		return nil, status.Error(codes.InvalidArgument, "member is required")
	}

	removed, err := s.Store.RemoveMember(req.Key, req.Member)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to remove member")
	}

	return &proto.RemoveMemberResponse{
		Removed: removed,
	}, nil
}

// Members returns the current membership of a key's set.
func (s *GRPCServer) Members(ctx context.Context, req *proto.MembersRequest) (*proto.MembersResponse, error) {
	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key is required")
	}

	return &proto.MembersResponse{
		Members: s.Store.Members(req.Key),
	}, nil
}

// Cardinality returns the member count of a key's set.
func (s *GRPCServer) Cardinality(ctx context.Context, req *proto.CardinalityRequest) (*proto.CardinalityResponse, error) {
	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key is required")
	}

	return &proto.CardinalityResponse{
		Cardinality: int64(s.Store.Cardinality(req.Key)),
	}, nil
}

// DeleteKey removes a key and its set.
func (s *GRPCServer) DeleteKey(ctx context.Context, req *proto.DeleteKeyRequest) (*proto.DeleteKeyResponse, error) {
	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key is required")
	}

	deleted, err := s.Store.DeleteKey(req.Key)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to delete key")
	}

	return &proto.DeleteKeyResponse{
		Deleted: deleted,
	}, nil
}

// FlushAll removes every key in the store.
func (s *GRPCServer) FlushAll(ctx context.Context, req *proto.FlushAllRequest) (*proto.FlushAllResponse, error) {
	if err := s.Store.FlushAll(); err != nil {
		return nil, status.Error(codes.Internal, "failed to flush store")
	}

	return &proto.FlushAllResponse{}, nil
}
