//go:build integration
// +build integration

package routes

import (
	"os"
	"testing"

	"garage-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
