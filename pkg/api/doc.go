// Package api provides the HTTP API layer for the model version service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with the version store routes and structured logging. The
// full version workflow (init, artifact persistence) remains a CLI concern;
// the API exposes the store's history and version creation.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/modelver/modelver/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/versions         - List the store's version history
//   - POST /v1/versions        - Add a version (explicit string or bump kind)
//   - GET /v1/versions/latest  - Show the newest version
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server reads PORT, MODELS_DIR, SHUTDOWN_TIMEOUT_SECONDS, and
// LOG_LEVEL from the environment.
package api
