package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"NODE_ID", "RAFT_ADDR", "RAFT_DATA", "RAFT_LEADER", "GRPC_ADDR", "HTTP_ADDR", "REGISTRY_ADDR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`node_id: node1
raft_addr: 127.0.0.1:7100
raft_data: /tmp/setkv/node1
raft_leader: true
grpc_addr: :9090
http_addr: :8080
registry_addr: http://127.0.0.1:7000
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.NodeID != "node1" {
		t.Errorf("NodeID = %q, want node1", cfg.NodeID)
	}
	if !cfg.RaftLeader {
		t.Error("RaftLeader should be true")
	}
	if cfg.GRPCAddr != ":9090" {
		t.Errorf("GRPCAddr = %q, want :9090", cfg.GRPCAddr)
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`node_id: node1
raft_addr: 127.0.0.1:7100
grpc_addr: :9090
http_addr: :8080
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("GRPC_ADDR", ":9999")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.GRPCAddr != ":9999" {
		t.Errorf("GRPCAddr = %q, want env override :9999", cfg.GRPCAddr)
	}
	if cfg.NodeID != "node1" {
		t.Errorf("NodeID = %q, want node1 from file", cfg.NodeID)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)

	t.Setenv("NODE_ID", "node2")
	t.Setenv("RAFT_ADDR", "127.0.0.1:7200")
	t.Setenv("GRPC_ADDR", ":9091")
	t.Setenv("HTTP_ADDR", ":8081")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.NodeID != "node2" {
		t.Errorf("NodeID = %q, want node2", cfg.NodeID)
	}
	if cfg.RaftData != "./setkv/node2" {
		t.Errorf("RaftData = %q, want default ./setkv/node2", cfg.RaftData)
	}
	if cfg.RegistryAddr != "http://127.0.0.1:7000" {
		t.Errorf("RegistryAddr = %q, want default", cfg.RegistryAddr)
	}
}

func TestLoadConfigMissingRequiredField(t *testing.T) {
	clearEnv(t)

	t.Setenv("NODE_ID", "node3")
	// RAFT_ADDR intentionally unset

	if _, err := LoadConfig(""); err == nil {
		t.Error("expected error when RAFT_ADDR is missing")
	}
}

func TestYAMLConfigIsValidated(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`node_id: node1
raft_addr: 127.0.0.1:7100
http_addr: :8080
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error when config file omits grpc_addr")
	}
}

func TestInvalidRaftLeaderEnv(t *testing.T) {
	clearEnv(t)

	t.Setenv("NODE_ID", "node4")
	t.Setenv("RAFT_ADDR", "127.0.0.1:7300")
	t.Setenv("GRPC_ADDR", ":9092")
	t.Setenv("HTTP_ADDR", ":8082")
	t.Setenv("RAFT_LEADER", "maybe")

	if _, err := LoadConfig(""); err == nil {
		t.Error("expected error for unparseable RAFT_LEADER")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
