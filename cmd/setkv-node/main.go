package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/raft"
	raftboltdb "github.com/hashicorp/raft-boltdb"
	"github.com/setkv/setkv/api/proto"
	"github.com/setkv/setkv/internal/api"
	"github.com/setkv/setkv/internal/registry"
	"github.com/setkv/setkv/internal/store"
	"github.com/setkv/setkv/pkg/config"
	"google.golang.org/grpc"
)

const announceEvery = 3 * time.Second

// setkv-node runs one Raft-replicated store node. The first node is
// started with raft_leader=true and bootstraps the cluster; later nodes
// file a join request with the registry and the leader adds them as
// voters.
func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	memStore := store.NewMemStore()
	fsm := store.NewRaftStore(memStore, nil)

	r, err := setupRaft(cfg, fsm)
	if err != nil {
		log.Fatalf("Failed to start raft: %v", err)
	}
	fsm.SetRaft(r)

	instrumented := store.NewInstrumentedStore(fsm)

	go registryLoop(cfg, r)

	// Start gRPC server in a goroutine
	go func() {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			log.Fatalf("Failed to listen on %s: %v", cfg.GRPCAddr, err)
		}

		grpcServer := grpc.NewServer()
		proto.RegisterSetKVServer(grpcServer, api.NewGRPCServer(instrumented))

		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	srv := api.NewServer(instrumented, r)
	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)
	mux.HandleFunc("/metrics", api.MetricsHandler(instrumented))

	log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, mux); err != nil {
		log.Fatal(err)
	}
}

func setupRaft(cfg *config.Config, fsm raft.FSM) (*raft.Raft, error) {
	raftCfg := raft.DefaultConfig()
	raftCfg.LocalID = raft.ServerID(cfg.NodeID)
	raftCfg.Logger = hclog.New(&hclog.LoggerOptions{
		Name:  "raft",
		Level: hclog.Info,
	})

	if err := os.MkdirAll(cfg.RaftData, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create raft data dir: %w", err)
	}

	logStore, err := raftboltdb.NewBoltStore(filepath.Join(cfg.RaftData, "raft-log.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open raft log store: %w", err)
	}
	stableStore, err := raftboltdb.NewBoltStore(filepath.Join(cfg.RaftData, "raft-stable.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open raft stable store: %w", err)
	}
	snapshots, err := raft.NewFileSnapshotStore(cfg.RaftData, 2, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot store: %w", err)
	}

	addr, err := net.ResolveTCPAddr("tcp", cfg.RaftAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve raft addr: %w", err)
	}
	transport, err := raft.NewTCPTransport(cfg.RaftAddr, addr, 3, 10*time.Second, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to create raft transport: %w", err)
	}

	r, err := raft.NewRaft(raftCfg, fsm, logStore, stableStore, snapshots, transport)
	if err != nil {
		return nil, fmt.Errorf("failed to create raft node: %w", err)
	}

	if cfg.RaftLeader {
		r.BootstrapCluster(raft.Configuration{
			Servers: []raft.Server{
				{ID: raftCfg.LocalID, Address: transport.LocalAddr()},
			},
		})
	}

	return r, nil
}

// registryLoop keeps the soft-state registry up to date. The leader
// announces itself and drains pending join requests; a node with no
// known leader files a join request so the leader can add it.
func registryLoop(cfg *config.Config, r *raft.Raft) {
	ticker := time.NewTicker(announceEvery)
	for range ticker.C {
		if r.State() == raft.Leader {
			announceLeader(cfg, r)
			processJoinRequests(cfg, r)
		} else if r.Leader() == "" && !cfg.RaftLeader {
			requestJoin(cfg)
		}
	}
}

func announceLeader(cfg *config.Config, r *raft.Raft) {
	term, _ := strconv.ParseUint(r.Stats()["term"], 10, 64)
	info := registry.Leader{
		ID:       cfg.NodeID,
		RaftAddr: cfg.RaftAddr,
		HTTPAddr: cfg.HTTPAddr,
		GRPCAddr: cfg.GRPCAddr,
		Term:     term,
	}

	body, _ := json.Marshal(info)
	req, err := http.NewRequest(http.MethodPut, cfg.RegistryAddr+"/leader", bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("Failed to announce leader to registry: %v", err)
		return
	}
	drain(resp)
}

func processJoinRequests(cfg *config.Config, r *raft.Raft) {
	resp, err := http.Get(cfg.RegistryAddr + "/join-requests")
	if err != nil {
		log.Printf("Failed to list join requests: %v", err)
		return
	}
	defer resp.Body.Close()

	var requests []registry.Join
	if err := json.NewDecoder(resp.Body).Decode(&requests); err != nil {
		return
	}

	for _, jr := range requests {
		if jr.ID == cfg.NodeID {
			continue
		}
		f := r.AddVoter(raft.ServerID(jr.ID), raft.ServerAddress(jr.RaftAddr), 0, 0)
		if err := f.Error(); err != nil {
			log.Printf("Failed to add voter %s: %v", jr.ID, err)
			continue
		}
		log.Printf("Added voter %s at %s", jr.ID, jr.RaftAddr)

		req, err := http.NewRequest(http.MethodDelete, cfg.RegistryAddr+"/join-requests?id="+jr.ID, nil)
		if err != nil {
			continue
		}
		if resp, err := http.DefaultClient.Do(req); err == nil {
			drain(resp)
		}
	}
}

func requestJoin(cfg *config.Config) {
	body, _ := json.Marshal(registry.Join{ID: cfg.NodeID, RaftAddr: cfg.RaftAddr})
	resp, err := http.Post(cfg.RegistryAddr+"/join-requests", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("Failed to file join request: %v", err)
		return
	}
	drain(resp)
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
