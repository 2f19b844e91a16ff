package task

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/store"
	"github.com/thenoetrevino/taskboard/internal/testutil"
)

// setupTaskTest returns a command context over a fresh board file
func setupTaskTest(t *testing.T) (context.Context, *store.BoardStore) {
	t.Helper()
	bs := testutil.NewTestStore(t)
	return testutil.SetupCLITest(t, bs), bs
}

func loadBoard(t *testing.T, bs *store.BoardStore) *models.KanbanData {
	t.Helper()
	data, err := bs.Load(context.Background())
	require.NoError(t, err)
	return data
}

type jsonTaskOutput struct {
	Success bool `json:"success"`
	Data    struct {
		Task     models.Task `json:"task"`
		ColumnID string      `json:"column_id"`
	} `json:"data"`
}

// ============================================================================
// add
// ============================================================================

func TestAddTask_Quiet(t *testing.T) {
	ctx, bs := setupTaskTest(t)

	stdout, _, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(),
		"add", "--column", "todo", "--title", "Simple Task", "--quiet")
	require.NoError(t, err)

	taskID := strings.TrimSpace(stdout)
	assert.Regexp(t, `^task-[0-9a-f-]{36}$`, taskID)

	task, err := loadBoard(t, bs).FindTask(taskID)
	require.NoError(t, err)
	assert.Equal(t, "Simple Task", task.Title)
	assert.Equal(t, []string{"task-1", "task-2", taskID}, testutil.TaskIDs(loadBoard(t, bs), "todo"))
}

func TestAddTask_JSON(t *testing.T) {
	ctx, _ := setupTaskTest(t)

	stdout, _, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(),
		"add", "--column", "done", "--title", "Ship", "--description", "a & b", "--json")
	require.NoError(t, err)

	out := testutil.ParseJSON[jsonTaskOutput](t, stdout)
	assert.True(t, out.Success)
	assert.Equal(t, "Ship", out.Data.Task.Title)
	assert.Equal(t, "a & b", out.Data.Task.Description)
	assert.Equal(t, "done", out.Data.ColumnID)
}

func TestAddTask_DescriptionFromStdin(t *testing.T) {
	ctx, bs := setupTaskTest(t)

	stdout, _, err := testutil.ExecuteCLICommandWithInput(t, ctx, TaskCmd(), "line one\nline two\n",
		"add", "--column", "todo", "--title", "From stdin", "--description", "-", "--quiet")
	require.NoError(t, err)

	task, err := loadBoard(t, bs).FindTask(strings.TrimSpace(stdout))
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", task.Description)
}

func TestAddTask_Human(t *testing.T) {
	ctx, _ := setupTaskTest(t)

	stdout, _, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(),
		"add", "--column", "todo", "--title", "Readable")
	require.NoError(t, err)
	assert.Contains(t, stdout, `Added task task-`)
	assert.Contains(t, stdout, `"Readable" in todo`)
}

func TestAddTask_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "missing title",
			args:     []string{"add", "--column", "todo"},
			wantCode: cli.ExitUsage,
			wantMsg:  "--title is required",
		},
		{
			name:     "missing column",
			args:     []string{"add", "--title", "x"},
			wantCode: cli.ExitUsage,
			wantMsg:  "--column is required",
		},
		{
			name:     "unknown column",
			args:     []string{"add", "--column", "archive", "--title", "x"},
			wantCode: cli.ExitNotFound,
			wantMsg:  "column not found",
		},
		{
			name:     "title too long",
			args:     []string{"add", "--column", "todo", "--title", strings.Repeat("t", 256)},
			wantCode: cli.ExitValidation,
			wantMsg:  "title",
		},
		{
			name:     "json and quiet",
			args:     []string{"add", "--column", "todo", "--title", "x", "--json", "--quiet"},
			wantCode: cli.ExitUsage,
			wantMsg:  "cannot be used together",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, bs := setupTaskTest(t)

			stdout, stderr, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(), tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
			assert.True(t, cli.IsReported(err))
			assert.Contains(t, strings.ToLower(stdout+stderr), strings.ToLower(tt.wantMsg))
			assert.Equal(t, 4, loadBoard(t, bs).TaskCount(), "board must be unchanged")
		})
	}
}

func TestAddTask_CorruptBoard(t *testing.T) {
	bs := testutil.NewTestStore(t)
	testutil.WriteFile(t, bs.Path(), "not json")
	ctx := testutil.SetupCLITest(t, bs)

	_, stderr, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(),
		"add", "--column", "todo", "--title", "x")
	require.Error(t, err)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))
	assert.Contains(t, stderr, "taskboard board reset")
	assert.Equal(t, "not json", testutil.ReadFile(t, bs.Path()))
}

func TestAddTask_SaveFailure(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	mem.SaveErr = &store.Error{Kind: store.KindIO, Op: "write", Path: "/ro/tasks.json", Err: errors.New("read-only file system")}
	ctx := testutil.SetupCLITest(t, mem)

	_, stderr, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(),
		"add", "--column", "todo", "--title", "x", "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	assert.Empty(t, stderr, "JSON mode reports errors on stdout")
}

// ============================================================================
// edit
// ============================================================================

func TestEditTask(t *testing.T) {
	ctx, bs := setupTaskTest(t)

	stdout, _, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(),
		"edit", "task-1", "--title", "Learn Go", "--json")
	require.NoError(t, err)

	out := testutil.ParseJSON[jsonTaskOutput](t, stdout)
	assert.Equal(t, "Learn Go", out.Data.Task.Title)
	assert.Equal(t, "Learn how to build apps with Tauri", out.Data.Task.Description)
	assert.Equal(t, "todo", out.Data.ColumnID)

	task, err := loadBoard(t, bs).FindTask("task-1")
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", task.Title)
}

func TestEditTask_ClearDescription(t *testing.T) {
	ctx, bs := setupTaskTest(t)

	_, _, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(), "edit", "task-3", "--description", "")
	require.NoError(t, err)

	task, err := loadBoard(t, bs).FindTask("task-3")
	require.NoError(t, err)
	assert.Empty(t, task.Description)
	assert.Equal(t, "Implement Drag and Drop", task.Title)
}

func TestEditTask_Errors(t *testing.T) {
	ctx, _ := setupTaskTest(t)

	_, _, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(), "edit", "task-1")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err), "no fields to change")

	_, _, err = testutil.ExecuteCLICommand(t, ctx, TaskCmd(), "edit", "task-77", "--title", "x")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	_, _, err = testutil.ExecuteCLICommand(t, ctx, TaskCmd(), "edit", "--title", "x")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err), "missing ID")

	_, _, err = testutil.ExecuteCLICommand(t, ctx, TaskCmd(), "edit", "task-1", "--title", "  ")
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
}

// ============================================================================
// rm
// ============================================================================

func TestRemoveTask(t *testing.T) {
	ctx, bs := setupTaskTest(t)

	stdout, _, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(), "rm", "task-2")
	require.NoError(t, err)
	assert.Equal(t, "Removed task task-2\n", stdout)

	assert.Equal(t, []string{"task-1"}, testutil.TaskIDs(loadBoard(t, bs), "todo"))

	_, stderr, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(), "rm", "task-2")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Contains(t, stderr, "taskboard board show")
}

// ============================================================================
// move
// ============================================================================

func TestMoveTask(t *testing.T) {
	ctx, bs := setupTaskTest(t)

	stdout, _, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(),
		"move", "task-4", "--column", "todo", "--index", "0", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "task-4\n", stdout)

	data := loadBoard(t, bs)
	assert.Equal(t, []string{"task-4", "task-1", "task-2"}, testutil.TaskIDs(data, "todo"))
	assert.Empty(t, testutil.TaskIDs(data, "done"))
}

func TestMoveTask_DefaultAppends(t *testing.T) {
	ctx, bs := setupTaskTest(t)

	_, _, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(), "move", "task-1", "--column", "in-progress")
	require.NoError(t, err)
	assert.Equal(t, []string{"task-3", "task-1"}, testutil.TaskIDs(loadBoard(t, bs), "in-progress"))
}

func TestMoveTask_UnknownColumn(t *testing.T) {
	ctx, bs := setupTaskTest(t)

	_, _, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(), "move", "task-1", "--column", "nope")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Equal(t, models.DefaultBoard(), loadBoard(t, bs))
}

// ============================================================================
// show
// ============================================================================

func TestShowTask_Human(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	ctx := testutil.SetupCLITest(t, mem)

	stdout, _, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(), "show", "task-3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Implement Drag and Drop")
	assert.Contains(t, stdout, "In Progress (in-progress)")
	assert.Contains(t, stdout, "drag and drop")
}

func TestShowTask_JSON(t *testing.T) {
	ctx, _ := setupTaskTest(t)

	stdout, _, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(), "show", "task-4", "--json")
	require.NoError(t, err)

	out := testutil.ParseJSON[jsonTaskOutput](t, stdout)
	assert.Equal(t, models.Task{
		ID:          "task-4",
		Title:       "Set up Project",
		Description: "Initialize Tauri project with React",
	}, out.Data.Task)
	assert.Equal(t, "done", out.Data.ColumnID)
}

func TestShowTask_NotFound(t *testing.T) {
	ctx, _ := setupTaskTest(t)

	_, _, err := testutil.ExecuteCLICommand(t, ctx, TaskCmd(), "show", "task-0")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}
