package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskboard/internal/app"
	"github.com/thenoetrevino/taskboard/internal/config"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/store"
	"github.com/thenoetrevino/taskboard/internal/testutil"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(dir, store.FileName)
	cfg.Daemon.SocketPath = filepath.Join(dir, "taskboard.sock")
	return cfg
}

func TestNew_FileModeWhenNoDaemon(t *testing.T) {
	cfg := testConfig(t)

	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, app.ModeFile, a.Mode())
	assert.Nil(t, a.Daemon())
	assert.Equal(t, cfg.Storage.Path, a.BoardPath())

	data, err := a.BoardService.GetBoard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBoard(), data)
	assert.FileExists(t, cfg.Storage.Path)
}

func TestNew_FileModeWhenDaemonDisabled(t *testing.T) {
	cfg := testConfig(t)
	mem := testutil.NewMemoryStore(nil)
	_, socketPath := testutil.SetupTestDaemon(t, mem)
	cfg.Daemon.SocketPath = socketPath
	cfg.Daemon.Disabled = true

	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, app.ModeFile, a.Mode())
	assert.Zero(t, mem.Loads)
}

func TestNew_DaemonMode(t *testing.T) {
	cfg := testConfig(t)
	mem := testutil.NewMemoryStore(nil)
	_, socketPath := testutil.SetupTestDaemon(t, mem)
	cfg.Daemon.SocketPath = socketPath

	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	require.Equal(t, app.ModeDaemon, a.Mode())
	require.NotNil(t, a.Daemon())

	ctx := context.Background()
	err = a.BoardService.DeleteTask(ctx, "task-1")
	require.NoError(t, err)

	// The write went to the daemon's store, not the file
	assert.Equal(t, []string{"task-2"}, testutil.TaskIDs(mem.Board(), models.DefaultTodoColumnID))
	assert.NoFileExists(t, cfg.Storage.Path)
}

func TestNew_CustomStore(t *testing.T) {
	mem := testutil.NewMemoryStore(&models.KanbanData{Columns: []models.Column{}})

	a, err := app.New(context.Background(), testConfig(t), app.WithDataStore(mem))
	require.NoError(t, err)

	assert.Equal(t, app.ModeCustom, a.Mode())
	assert.Same(t, mem, a.Store())

	data, err := a.BoardService.GetBoard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Columns)
	assert.NoError(t, a.Close())
}
