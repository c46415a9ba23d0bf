//go:build api

// Package api drives the portal end to end through its router. MongoDB,
// Redis and MinIO run in testcontainers and the ecobin backend is an
// in-memory stand-in.
//
// Run tests with:
//
//	go test -tags=api -v ./test/api/...
package api

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ecobin-portal/internal/validator"
	"ecobin-portal/test/api/testserver"
)

// containerStartTimeout covers image pulls on a cold machine.
const containerStartTimeout = 3 * time.Minute

// testServer is shared by every test in the package.
var testServer *testserver.TestServer

func TestMain(m *testing.M) {
	validator.RegisterCustomValidators()

	startCtx, cancel := context.WithTimeout(context.Background(), containerStartTimeout)
	server, err := testserver.New(startCtx)
	cancel()
	if err != nil {
		log.Fatalf("Failed to start portal test server: %v", err)
	}
	testServer = server
	log.Printf("Portal test server up, backend stand-in at %s", server.Backend.URL())

	code := m.Run()

	server.Cleanup(context.Background())
	os.Exit(code)
}
