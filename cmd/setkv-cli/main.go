package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/setkv/setkv/internal/cli"
	"github.com/setkv/setkv/pkg/client"
)

// setkv-cli is the interactive menu client. It opens one connection at
// startup, probes the store once, and then runs the menu loop until the
// operator exits. A failed probe is fatal; transport errors during a
// menu operation also end the session.
func main() {
	addr := os.Getenv("SETKV_ADDR")
	if addr == "" {
		// No direct address - discover the leader from the registry
		registryAddr := os.Getenv("REGISTRY_ADDR")
		if registryAddr == "" {
			registryAddr = "http://127.0.0.1:7000"
		}

		var err error
		addr, err = client.LeaderGRPCAddr(registryAddr)
		if err != nil {
			log.Fatalf("Failed to discover leader: %v", err)
		}
	}

	fmt.Printf("Connecting to store at %s\n", addr)

	c, err := client.Dial(addr)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = c.Ping(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Could not reach the store. Make sure a setkv node is running: %v", err)
	}
	fmt.Println("Store connection successful.")

	menu := cli.NewMenu(c, os.Stdin, os.Stdout)
	if err := menu.Run(context.Background()); err != nil {
		log.Fatalf("Session ended: %v", err)
	}
}
