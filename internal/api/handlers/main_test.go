//go:build integration
// +build integration

package handlers_test

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"cricket-scoring/internal/testutils"
)

// TestMain ensures the shared Docker container is cleaned up after the
// handler integration tests, including on interruption (Ctrl+C).
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Handler tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()

	os.Exit(code)
}
