package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/setkv/setkv/api/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// LeaderInfo mirrors the registry's /leader response.
type LeaderInfo struct {
	ID       string `json:"id"`
	Addr     string `json:"addr"`
	HTTPAddr string `json:"http_addr"`
	GRPCAddr string `json:"grpc_addr"`
	Term     uint64 `json:"term"`
}

// LeaderGRPCAddr asks the registry for the current leader's gRPC address.
func LeaderGRPCAddr(registryAddr string) (string, error) {
	resp, err := http.Get(registryAddr + "/leader")
	if err != nil {
		return "", fmt.Errorf("failed to query registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("no leader available (status: %d)", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var leader LeaderInfo
	if err := json.Unmarshal(body, &leader); err != nil {
		return "", fmt.Errorf("failed to parse leader info: %w", err)
	}

	if leader.GRPCAddr == "" {
		return "", fmt.Errorf("leader gRPC address not available")
	}

	// If the address starts with ":", it's missing a host - use localhost
	grpcAddr := leader.GRPCAddr
	if len(grpcAddr) > 0 && grpcAddr[0] == ':' {
		grpcAddr = "localhost" + grpcAddr
	}

	return grpcAddr, nil
}

// Client holds one gRPC connection to a setkv node and exposes the set
// operations of the store. The connection is acquired once and held for
// the lifetime of the Client.
type Client struct {
	conn *grpc.ClientConn
	api  proto.SetKVClient
}

// Dial connects to a setkv node at the given address.
func Dial(addr string) (*Client, error) {
	// Passthrough resolver for direct address connection
	conn, err := grpc.NewClient("passthrough:///"+addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return &Client{
		conn: conn,
		api:  proto.NewSetKVClient(conn),
	}, nil
}

// DialLeader discovers the cluster leader via the registry and connects
// to it.
func DialLeader(registryAddr string) (*Client, error) {
	addr, err := LeaderGRPCAddr(registryAddr)
	if err != nil {
		return nil, err
	}
	return Dial(addr)
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Ping probes the store for liveness.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.api.Ping(ctx, &proto.PingRequest{})
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	if !resp.Ok {
		return fmt.Errorf("store reported not ok")
	}
	return nil
}

// Exists reports whether the key holds a set.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	resp, err := c.api.Exists(ctx, &proto.ExistsRequest{Key: key})
	if err != nil {
		return false, err
	}
	return resp.Exists, nil
}

// AddMembers adds a batch of members to the key's set and returns the
// number newly added.
func (c *Client) AddMembers(ctx context.Context, key string, members []string) (int, error) {
	resp, err := c.api.AddMembers(ctx, &proto.AddMembersRequest{Key: key, Members: members})
	if err != nil {
		return 0, err
	}
	return int(resp.Added), nil
}

// RemoveMember removes one member; returns true if it was present.
func (c *Client) RemoveMember(ctx context.Context, key, member string) (bool, error) {
	resp, err := c.api.RemoveMember(ctx, &proto.RemoveMemberRequest{Key: key, Member: member})
	if err != nil {
		return false, err
	}
	return resp.Removed, nil
}

// Members returns the key's membership, unordered.
func (c *Client) Members(ctx context.Context, key string) ([]string, error) {
	resp, err := c.api.Members(ctx, &proto.MembersRequest{Key: key})
	if err != nil {
		return nil, err
	}
	return resp.Members, nil
}

// Cardinality returns the key's member count.
func (c *Client) Cardinality(ctx context.Context, key string) (int, error) {
	resp, err := c.api.Cardinality(ctx, &proto.CardinalityRequest{Key: key})
	if err != nil {
		return 0, err
	}
	return int(resp.Cardinality), nil
}

// DeleteKey removes the key; returns true if it existed.
func (c *Client) DeleteKey(ctx context.Context, key string) (bool, error) {
	resp, err := c.api.DeleteKey(ctx, &proto.DeleteKeyRequest{Key: key})
	if err != nil {
		return false, err
	}
	return resp.Deleted, nil
}

// FlushAll destroys every key in the store.
func (c *Client) FlushAll(ctx context.Context) error {
	_, err := c.api.FlushAll(ctx, &proto.FlushAllRequest{})
	return err
}
