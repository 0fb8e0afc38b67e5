package main

import (
	"log"
	"net"
	"net/http"
	"os"

	"github.com/setkv/setkv/api/proto"
	"github.com/setkv/setkv/internal/api"
	"github.com/setkv/setkv/internal/store"
	"google.golang.org/grpc"
)

// setkv-single runs one standalone node: in-memory set store, gRPC for
// clients, HTTP for admin and metrics. No replication.
func main() {
	grpcAddr := ":9090"
	if v := os.Getenv("GRPC_ADDR"); v != "" {
		grpcAddr = v
	}
	httpAddr := ":8080"
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		httpAddr = v
	}

	// Create the in-memory store, wrapped with instrumentation
	instrumented := store.NewInstrumentedStore(store.NewMemStore())

	// Start gRPC server in a goroutine
	go func() {
		lis, err := net.Listen("tcp", grpcAddr)
		if err != nil {
			log.Fatalf("Failed to listen on %s: %v", grpcAddr, err)
		}

		grpcServer := grpc.NewServer()
		setServer := api.NewGRPCServer(instrumented)
		proto.RegisterSetKVServer(grpcServer, setServer)

		log.Printf("gRPC server listening on %s", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	// Create the HTTP server with the store
	srv := api.NewServer(instrumented, nil)

	// Register routes
	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)
	mux.HandleFunc("/metrics", api.MetricsHandler(instrumented))

	// Start the HTTP server
	log.Printf("HTTP server listening on %s", httpAddr)

	if err := http.ListenAndServe(httpAddr, mux); err != nil {
		log.Fatal(err)
	}
}
