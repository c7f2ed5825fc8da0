//go:build integration

package repository

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"garage-backend/internal/testutils"
)

// TestMain purges the shared Postgres container after the run, and on Ctrl+C.
func TestMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupted
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
