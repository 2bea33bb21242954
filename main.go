package main

import (
	"log"
	"net"

	"github.com/statusping/api-backend/internal/config"
	"github.com/statusping/api-backend/internal/router"

	_ "github.com/statusping/api-backend/docs"
)

// @title StatusPing API
// @version 1.0
// @description Minimal liveness endpoint for orchestration and monitoring probes.

// @host localhost:8000
// @BasePath /

func main() {
	// Load configuration (reads .env when present, then the environment)
	cfg := config.Load()

	r := router.New()

	// Bind before logging so a failed bind never reports a running server
	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		log.Fatalf("ERROR: Failed to bind to port %s: %v", cfg.Port, err)
	}

	log.Printf("Server running at http://localhost:%s", cfg.Port)

	if err := r.RunListener(listener); err != nil {
		log.Fatalf("ERROR: Server stopped unexpectedly: %v", err)
	}
}
