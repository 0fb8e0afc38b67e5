package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/setkv/setkv/internal/registry"
)

const sweepEvery = 5 * time.Second

// The registry is the one piece of the cluster nodes can find at a
// well-known address. It only brokers discovery; losing it never
// loses data.
func main() {
	addr := ":7000"
	if v := os.Getenv("REGISTRY_ADDR"); v != "" {
		addr = v
	}

	reg := registry.New()
	go func() {
		ticker := time.NewTicker(sweepEvery)
		for range ticker.C {
			reg.Sweep(time.Now())
		}
	}()

	log.Printf("registry listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, reg.Handler()))
}
