package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskboard/internal/config"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/services/board"
	"github.com/thenoetrevino/taskboard/internal/store"
	"github.com/thenoetrevino/taskboard/internal/testutil"
	"github.com/thenoetrevino/taskboard/internal/tui/state"
)

// setupTestModel returns a board view over ds with the board loaded
func setupTestModel(t *testing.T, ds store.DataStore) Model {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Path = "/tmp/taskboard-test/tasks.json"
	svc := board.NewService(ds, board.WithIDGenerator(testutil.SequentialIDs("new")))

	m := New(context.Background(), svc, cfg)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return run(t, m, m.Init())
}

// update feeds msg to the model and runs the resulting commands
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return run(t, next.(Model), cmd)
}

// run executes cmd and feeds the resulting board messages back, synchronously.
// Other messages (quit, cursor blink) end the chain.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		msg, ok := cmd().(boardMsg)
		if !ok {
			return m
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, key := range keys {
		m = update(t, m, keyMsg(key))
	}
	return m
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// typeText types into the open form, dropping the cursor blink commands
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func selectedTaskID(m Model) string {
	if task := m.getCurrentTask(); task != nil {
		return task.ID
	}
	return ""
}

// ============================================================================
// Loading
// ============================================================================

func TestInit_LoadsBoard(t *testing.T) {
	m := setupTestModel(t, testutil.NewMemoryStore(nil))

	require.NotNil(t, m.Board())
	assert.Len(t, m.Board().Columns, 3)
	assert.Equal(t, "task-1", selectedTaskID(m))
	assert.Contains(t, m.View(), "To Do (2)")
	assert.Contains(t, m.View(), "Learn Tauri")
}

func TestInit_SeedsMissingFile(t *testing.T) {
	bs := testutil.NewTestStore(t)
	m := setupTestModel(t, bs)

	require.NotNil(t, m.Board())
	assert.Equal(t, models.DefaultBoard(), m.Board())
	assert.FileExists(t, bs.Path())
}

func TestInit_CorruptFile(t *testing.T) {
	bs := testutil.NewTestStore(t)
	testutil.WriteFile(t, bs.Path(), "not json")

	m := setupTestModel(t, bs)

	assert.Nil(t, m.Board())
	assert.ErrorIs(t, m.LoadErr(), store.ErrParse)
	view := m.View()
	assert.Contains(t, view, "could not be loaded")
	assert.Contains(t, view, "press R")
	assert.Equal(t, "not json", testutil.ReadFile(t, bs.Path()))

	// Editing keys do nothing without a board
	m = press(t, m, "a")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, "not json", testutil.ReadFile(t, bs.Path()))
}

func TestResetCorruptFile(t *testing.T) {
	bs := testutil.NewTestStore(t)
	testutil.WriteFile(t, bs.Path(), `{"columns": 5}`)
	m := setupTestModel(t, bs)

	m = press(t, m, "R")
	require.Equal(t, state.ResetConfirmMode, m.UiState.Mode())

	m = press(t, m, "n")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, `{"columns": 5}`, testutil.ReadFile(t, bs.Path()))

	m = press(t, m, "R", "y")
	require.NotNil(t, m.Board())
	assert.Equal(t, models.DefaultBoard(), m.Board())

	data, err := bs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBoard(), data)
}

func TestReset_NotOfferedForIOErrors(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	mem.LoadErr = &store.Error{Kind: store.KindIO, Op: "read", Path: "tasks.json", Err: errors.New("permission denied")}
	m := setupTestModel(t, mem)

	assert.ErrorIs(t, m.LoadErr(), store.ErrIO)
	m = press(t, m, "R")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.NotContains(t, m.View(), "press R")
}

func TestReload_PicksUpExternalChanges(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	m := setupTestModel(t, mem)

	require.NoError(t, mem.Save(context.Background(), &models.KanbanData{Columns: []models.Column{
		{ID: "solo", Title: "Solo", Tasks: []models.Task{{ID: "only", Title: "Only"}}},
	}}))

	m = press(t, m, "l", "l", "r")

	require.Len(t, m.Board().Columns, 1)
	assert.Equal(t, 0, m.UiState.SelectedColumn(), "selection is clamped to the new board")
	assert.Equal(t, "only", selectedTaskID(m))
	assert.Contains(t, m.View(), "Board reloaded")
}

// ============================================================================
// Navigation
// ============================================================================

func TestNavigation(t *testing.T) {
	m := setupTestModel(t, testutil.NewMemoryStore(nil))

	m = press(t, m, "j")
	assert.Equal(t, "task-2", selectedTaskID(m))

	m = press(t, m, "j")
	assert.Equal(t, "task-2", selectedTaskID(m))
	assert.Contains(t, m.View(), "Already at the last task")

	m = press(t, m, "l")
	assert.Equal(t, "task-3", selectedTaskID(m), "changing column selects the top task")

	m = press(t, m, "l", "l")
	assert.Equal(t, "task-4", selectedTaskID(m))
	assert.Contains(t, m.View(), "Already at the last column")

	m = press(t, m, "h", "h", "h")
	assert.Equal(t, 0, m.UiState.SelectedColumn())
	assert.Contains(t, m.View(), "Already at the first column")

	m = press(t, m, "k")
	assert.Contains(t, m.View(), "Already at the first task")
}

// ============================================================================
// Moving
// ============================================================================

func TestMoveTaskRight_SelectionFollows(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	m := setupTestModel(t, mem)

	m = press(t, m, "L")

	assert.Equal(t, []string{"task-2"}, testutil.TaskIDs(mem.Board(), "todo"))
	assert.Equal(t, []string{"task-3", "task-1"}, testutil.TaskIDs(mem.Board(), "in-progress"))
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	assert.Equal(t, "task-1", selectedTaskID(m))
}

func TestMoveTaskDownAndUp(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	m := setupTestModel(t, mem)

	m = press(t, m, "J")
	assert.Equal(t, []string{"task-2", "task-1"}, testutil.TaskIDs(mem.Board(), "todo"))
	assert.Equal(t, "task-1", selectedTaskID(m))

	m = press(t, m, "J")
	assert.Contains(t, m.View(), board.ErrAlreadyLastTask.Error())
	assert.False(t, m.NotificationState.HasErrors(), "edge moves are hints")

	m = press(t, m, "K")
	assert.Equal(t, []string{"task-1", "task-2"}, testutil.TaskIDs(mem.Board(), "todo"))
}

func TestMoveTaskLeft_FirstColumn(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	m := setupTestModel(t, mem)

	m = press(t, m, "H")

	assert.Equal(t, models.DefaultBoard(), mem.Board())
	assert.Contains(t, m.View(), board.ErrAlreadyFirstColumn.Error())
}

// ============================================================================
// Add / edit / delete
// ============================================================================

func TestAddTask(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	m := setupTestModel(t, mem)

	m = press(t, m, "l", "a")
	require.Equal(t, state.FormMode, m.UiState.Mode())
	assert.Contains(t, m.View(), "New task in in-progress")

	m = typeText(t, m, "Write docs")
	m = press(t, m, "tab")
	m = typeText(t, m, "with <examples> & more")
	m = press(t, m, "enter")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, []string{"task-3", "new-1"}, testutil.TaskIDs(mem.Board(), "in-progress"))
	task, err := mem.Board().FindTask("new-1")
	require.NoError(t, err)
	assert.Equal(t, "Write docs", task.Title)
	assert.Equal(t, "with <examples> & more", task.Description)
	assert.Equal(t, "new-1", selectedTaskID(m))
}

func TestAddTask_EmptyTitleKeepsForm(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	m := setupTestModel(t, mem)

	m = press(t, m, "a")
	m = typeText(t, m, "   ")
	m = press(t, m, "enter")

	assert.Equal(t, state.FormMode, m.UiState.Mode())
	assert.True(t, m.NotificationState.HasErrors())
	assert.Zero(t, mem.Saves)
}

func TestAddTask_Cancel(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	m := setupTestModel(t, mem)

	m = press(t, m, "a")
	m = typeText(t, m, "never saved")
	m = press(t, m, "esc")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Zero(t, mem.Saves)
}

// TestFormKeysDoNotTriggerShortcuts types letters that are also normal-mode keys
func TestFormKeysDoNotTriggerShortcuts(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	m := setupTestModel(t, mem)

	m = press(t, m, "a")
	m = typeText(t, m, "qdLhj")
	m = press(t, m, "enter")

	task, err := mem.Board().FindTask("new-1")
	require.NoError(t, err)
	assert.Equal(t, "qdLhj", task.Title)
	assert.Equal(t, []string{"task-1", "task-2", "new-1"}, testutil.TaskIDs(mem.Board(), "todo"))
}

func TestEditTask(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	m := setupTestModel(t, mem)

	m = press(t, m, "j", "e")
	require.Equal(t, state.FormMode, m.UiState.Mode())
	assert.Equal(t, "Build Kanban App", m.form.title.Value())
	assert.Equal(t, "Create a Kanban board application", m.form.description.Value())

	m = typeText(t, m, "!")
	m = press(t, m, "enter")

	task, err := mem.Board().FindTask("task-2")
	require.NoError(t, err)
	assert.Equal(t, "Build Kanban App!", task.Title)
	assert.Equal(t, "Create a Kanban board application", task.Description)
	assert.Equal(t, "task-2", selectedTaskID(m))
	assert.Contains(t, m.View(), "Task updated")
}

func TestDeleteTask(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	m := setupTestModel(t, mem)

	m = press(t, m, "d")
	require.Equal(t, state.DeleteConfirmMode, m.UiState.Mode())
	assert.Contains(t, m.View(), `Delete "Learn Tauri"?`)

	m = press(t, m, "n")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Len(t, testutil.TaskIDs(mem.Board(), "todo"), 2)

	m = press(t, m, "j", "d", "y")
	assert.Equal(t, []string{"task-1"}, testutil.TaskIDs(mem.Board(), "todo"))
	assert.Equal(t, "task-1", selectedTaskID(m), "selection is clamped after the last task goes")
}

func TestDeleteTask_EmptyColumn(t *testing.T) {
	m := setupTestModel(t, testutil.NewMemoryStore(&models.KanbanData{Columns: []models.Column{
		{ID: "empty", Title: "Empty"},
	}}))

	m = press(t, m, "d")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Contains(t, m.View(), "No tasks")
}

func TestSaveFailure_KeepsBoard(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	m := setupTestModel(t, mem)
	mem.SaveErr = &store.Error{Kind: store.KindIO, Op: "write", Path: "tasks.json", Err: errors.New("disk full")}

	m = press(t, m, "L")

	require.NotNil(t, m.Board())
	assert.Equal(t, models.DefaultBoard(), m.Board())
	assert.True(t, m.NotificationState.HasErrors())
	assert.Contains(t, m.View(), "disk full")
}

// ============================================================================
// Overlays
// ============================================================================

func TestViewTask(t *testing.T) {
	m := setupTestModel(t, testutil.NewMemoryStore(nil))

	m = press(t, m, " ")
	require.Equal(t, state.ViewTaskMode, m.UiState.Mode())
	view := m.View()
	assert.Contains(t, view, "Learn Tauri")
	assert.Contains(t, view, "task-1 in To Do")
	assert.Contains(t, view, "build apps with Tauri")

	m = press(t, m, "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestHelp(t *testing.T) {
	m := setupTestModel(t, testutil.NewMemoryStore(nil))

	m = press(t, m, "?")
	require.Equal(t, state.HelpMode, m.UiState.Mode())
	assert.Contains(t, m.View(), "Keyboard shortcuts")
	assert.Contains(t, m.View(), "space")

	m = press(t, m, "?")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestCustomKeyMappings(t *testing.T) {
	mem := testutil.NewMemoryStore(nil)
	cfg := config.Default()
	cfg.KeyMappings.NextTask = "n"
	cfg.KeyMappings.Quit = "x"

	m := New(context.Background(), board.NewService(mem), cfg)
	m = run(t, m, m.Init())

	m = press(t, m, "n")
	assert.Equal(t, "task-2", selectedTaskID(m))

	_, cmd := m.Update(keyMsg("x"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuit(t *testing.T) {
	m := setupTestModel(t, testutil.NewMemoryStore(nil))

	for _, key := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(keyMsg(key))
		require.NotNil(t, cmd, key)
		assert.IsType(t, tea.QuitMsg{}, cmd(), key)
	}
}

func TestViewportFollowsSelection(t *testing.T) {
	m := setupTestModel(t, testutil.NewMemoryStore(nil))
	m = update(t, m, tea.WindowSizeMsg{Width: 4 + state.ColumnSlotWidth, Height: 30})

	require.Equal(t, 1, m.UiState.ViewportSize())
	m = press(t, m, "l", "l")

	assert.Equal(t, 2, m.UiState.ViewportOffset())
	view := m.View()
	assert.Contains(t, view, "Done (1)")
	assert.NotContains(t, view, "To Do (2)")
}
