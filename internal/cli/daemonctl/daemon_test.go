package daemonctl

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/daemon"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/testutil"
)

type statusEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		SocketPath    string `json:"socket_path"`
		RequestsTotal int64  `json:"requests_total"`
		Loads         int64  `json:"loads"`
		Saves         int64  `json:"saves"`
		Uptime        string `json:"uptime"`
	} `json:"data"`
	Error struct {
		Code       string `json:"code"`
		Message    string `json:"message"`
		Suggestion string `json:"suggestion"`
	} `json:"error"`
}

// setupDaemonEnv points config, board file, socket and log at a temp dir.
// Returns the socket path the commands will use.
func setupDaemonEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	socketPath := filepath.Join(dir, "taskboard.sock")

	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("TASKBOARD_FILE", filepath.Join(dir, "tasks.json"))
	t.Setenv("TASKBOARD_SOCKET", socketPath)
	t.Setenv("TASKBOARD_THEME_FILE", "")
	t.Setenv("TASKBOARD_NO_DAEMON", "")
	return socketPath
}

// ============================================================================
// status
// ============================================================================

func TestStatus_Human(t *testing.T) {
	setupDaemonEnv(t)
	_, socketPath := testutil.SetupTestDaemon(t, testutil.NewMemoryStore(nil))
	t.Setenv("TASKBOARD_SOCKET", socketPath)

	client := testutil.SetupTestClient(t, socketPath)
	_, err := client.Load(context.Background())
	require.NoError(t, err)

	stdout, stderr, err := testutil.ExecuteCommand(t, StatusCmd())
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Daemon on "+socketPath+"\n")
	assert.Contains(t, stdout, "  loads:    1\n")
	assert.Contains(t, stdout, "  saves:    0\n")
}

func TestStatus_JSON(t *testing.T) {
	setupDaemonEnv(t)
	_, socketPath := testutil.SetupTestDaemon(t, testutil.NewMemoryStore(nil))
	t.Setenv("TASKBOARD_SOCKET", socketPath)

	client := testutil.SetupTestClient(t, socketPath)
	require.NoError(t, client.Save(context.Background(), models.DefaultBoard()))

	stdout, _, err := testutil.ExecuteCommand(t, StatusCmd(), "--json")
	require.NoError(t, err)

	out := testutil.ParseJSON[statusEnvelope](t, stdout)
	assert.True(t, out.Success)
	assert.Equal(t, socketPath, out.Data.SocketPath)
	assert.Equal(t, int64(1), out.Data.Saves)
	assert.Equal(t, int64(0), out.Data.Loads)
	// The save and the status request itself
	assert.Equal(t, int64(2), out.Data.RequestsTotal)
	assert.NotEmpty(t, out.Data.Uptime)
}

func TestStatus_NoDaemon(t *testing.T) {
	socketPath := setupDaemonEnv(t)

	_, stderr, err := testutil.ExecuteCommand(t, StatusCmd())
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	assert.True(t, cli.IsReported(err))

	var connErr *daemon.ConnError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, daemon.ErrSocketNotFound, connErr.Code)
	assert.Contains(t, stderr, "Socket file not found")
	assert.Contains(t, stderr, "Start daemon: taskboard daemon")
	assert.NoFileExists(t, socketPath)
}

func TestStatus_NoDaemon_JSON(t *testing.T) {
	setupDaemonEnv(t)

	stdout, stderr, err := testutil.ExecuteCommand(t, StatusCmd(), "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	assert.Empty(t, stderr)

	out := testutil.ParseJSON[statusEnvelope](t, stdout)
	assert.False(t, out.Success)
	assert.Equal(t, "DAEMON_UNAVAILABLE", out.Error.Code)
	assert.Contains(t, out.Error.Message, "Start daemon: taskboard daemon")
}

func TestStatus_RejectsArgs(t *testing.T) {
	setupDaemonEnv(t)

	_, _, err := testutil.ExecuteCommand(t, StatusCmd(), "extra")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

// ============================================================================
// daemon
// ============================================================================

func TestDaemon_RefusesSecondDaemon(t *testing.T) {
	setupDaemonEnv(t)
	_, socketPath := testutil.SetupTestDaemon(t, testutil.NewMemoryStore(nil))
	t.Setenv("TASKBOARD_SOCKET", socketPath)

	_, stderr, err := testutil.ExecuteCommand(t, DaemonCmd())
	require.Error(t, err)
	assert.ErrorIs(t, err, daemon.ErrAlreadyRunning)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	assert.Contains(t, stderr, "Error: daemon already running on "+socketPath)
	assert.Contains(t, stderr, "Suggestion: Check the running daemon with: taskboard daemon status")

	// The first daemon still answers
	client := testutil.SetupTestClient(t, socketPath)
	data, err := client.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBoard(), data)
}

func TestDaemon_ServesUntilCancelled(t *testing.T) {
	socketPath := setupDaemonEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := DaemonCmd()
	cmd.SetContext(ctx)

	done := make(chan error, 1)
	go func() {
		_, _, err := testutil.ExecuteCommand(t, cmd)
		done <- err
	}()

	var client *daemon.Client
	require.Eventually(t, func() bool {
		c, err := daemon.Dial(context.Background(), socketPath)
		if err != nil {
			return false
		}
		client = c
		return true
	}, 2*time.Second, 10*time.Millisecond)
	t.Cleanup(func() { _ = client.Close() })

	data, err := client.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBoard(), data)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("daemon command did not return after cancel")
	}
}
