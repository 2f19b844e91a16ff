package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/taskboard/internal/daemon"
	"github.com/thenoetrevino/taskboard/internal/store"
)

// GetTestSocketPath generates a unique temporary socket path for testing.
func GetTestSocketPath(t *testing.T) string {
	t.Helper()

	socketPath := filepath.Join(t.TempDir(), "test-taskboard.sock")

	t.Cleanup(func() {
		if _, err := os.Stat(socketPath); err == nil {
			_ = os.Remove(socketPath)
		}
	})

	return socketPath
}

// SetupTestDaemon starts a daemon serving ds on a temporary socket.
// Returns the server and socket path. Cleanup is automatic via t.Cleanup().
func SetupTestDaemon(t *testing.T, ds store.DataStore) (*daemon.Server, string) {
	t.Helper()

	socketPath := GetTestSocketPath(t)

	server, err := daemon.NewServer(socketPath, ds)
	if err != nil {
		t.Fatalf("Failed to create test daemon: %v", err)
	}

	// Register cleanup FIRST, before starting server
	t.Cleanup(func() {
		if err := server.Shutdown(); err != nil {
			t.Logf("Warning: daemon shutdown error during cleanup: %v", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() {
		if err := server.Start(ctx); err != nil {
			t.Logf("Server error: %v", err)
		}
	}()

	return server, socketPath
}

// SetupTestClient creates a daemon client for socketPath, closed on cleanup
func SetupTestClient(t *testing.T, socketPath string) *daemon.Client {
	t.Helper()

	client := daemon.NewClient(socketPath)
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("Warning: client close error during cleanup: %v", err)
		}
	})
	return client
}
