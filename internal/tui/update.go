package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/services/board"
	"github.com/thenoetrevino/taskboard/internal/store"
	"github.com/thenoetrevino/taskboard/internal/tui/state"
)

// resetKey opens the reset dialog while the board file cannot be read
const resetKey = "R"

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.UiState.EnsureSelectionVisible()
		return m, nil

	case boardMsg:
		m.handleBoardMsg(msg)
		return m, nil

	case tea.KeyMsg:
		switch m.UiState.Mode() {
		case state.FormMode:
			return m.handleFormMode(msg)
		case state.DeleteConfirmMode:
			return m.handleDeleteConfirm(msg)
		case state.ResetConfirmMode:
			return m.handleResetConfirm(msg)
		case state.ViewTaskMode, state.HelpMode:
			return m.handleOverlayMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	if m.UiState.Mode() == state.FormMode {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

// handleBoardMsg shows a loaded board or reports why there is none
func (m *Model) handleBoardMsg(msg boardMsg) {
	if msg.err != nil {
		m.reportError(msg.err)
		return
	}
	m.showBoard(msg.data, msg.selectTaskID)
	if msg.info != "" {
		m.NotificationState.Add(state.LevelInfo, msg.info)
	}
}

// reportError turns a failed load or change into a notification. Moves
// past the edge of the board are hints, not failures.
func (m *Model) reportError(err error) {
	switch {
	case errors.Is(err, board.ErrAlreadyFirstColumn),
		errors.Is(err, board.ErrAlreadyLastColumn),
		errors.Is(err, board.ErrAlreadyFirstTask),
		errors.Is(err, board.ErrAlreadyLastTask):
		m.NotificationState.Add(state.LevelInfo, err.Error())
		return
	}

	slog.Error("board operation failed", "error", err)
	switch {
	case errors.Is(err, store.ErrParse):
		// The file no longer holds the board on screen
		m.board = nil
		m.loadErr = err
	case m.board == nil:
		m.loadErr = err
	}
	m.NotificationState.Add(state.LevelError, err.Error())
}

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.Reload:
		return m, m.loadBoard("Board reloaded")
	}

	if m.board == nil {
		if key == resetKey && store.IsRecoverable(m.loadErr) {
			m.UiState.SetMode(state.ResetConfirmMode)
		}
		return m, nil
	}

	switch key {
	case km.PrevColumn, "left":
		m.navigateColumn(-1)
	case km.NextColumn, "right":
		m.navigateColumn(1)
	case km.PrevTask, "up":
		m.navigateTask(-1)
	case km.NextTask, "down":
		m.navigateTask(1)
	case km.MoveTaskLeft:
		return m, m.moveTask(board.Service.MoveTaskToPrevColumn)
	case km.MoveTaskRight:
		return m, m.moveTask(board.Service.MoveTaskToNextColumn)
	case km.MoveTaskUp:
		return m, m.moveTask(board.Service.MoveTaskUp)
	case km.MoveTaskDown:
		return m, m.moveTask(board.Service.MoveTaskDown)
	case km.AddTask:
		return m.openForm(nil)
	case km.EditTask:
		if task := m.getCurrentTask(); task != nil {
			return m.openForm(task)
		}
	case km.DeleteTask:
		if m.getCurrentTask() != nil {
			m.UiState.SetMode(state.DeleteConfirmMode)
		}
	case km.ViewTask, "enter":
		if m.getCurrentTask() != nil {
			m.UiState.SetMode(state.ViewTaskMode)
		}
	}
	return m, nil
}

// navigateColumn moves the selection delta columns, starting at the top task
func (m *Model) navigateColumn(delta int) {
	target := m.UiState.SelectedColumn() + delta
	if target < 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the first column")
		return
	}
	if target >= len(m.board.Columns) {
		m.NotificationState.Add(state.LevelInfo, "Already at the last column")
		return
	}
	m.UiState.SetSelectedColumn(target)
	m.UiState.SetSelectedTask(0)
	m.UiState.EnsureSelectionVisible()
}

// navigateTask moves the selection delta tasks within the column
func (m *Model) navigateTask(delta int) {
	col := m.getCurrentColumn()
	if col == nil {
		return
	}
	target := m.UiState.SelectedTask() + delta
	if target < 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the first task")
		return
	}
	if target >= len(col.Tasks) {
		m.NotificationState.Add(state.LevelInfo, "Already at the last task")
		return
	}
	m.UiState.SetSelectedTask(target)
}

// moveTask runs one of the service's single-step moves on the selected
// task; the selection follows the task
func (m Model) moveTask(move func(board.Service, context.Context, string) error) tea.Cmd {
	task := m.getCurrentTask()
	if task == nil {
		return nil
	}
	taskID := task.ID
	return m.mutate("", taskID, func(ctx context.Context, svc board.Service) error {
		return move(svc, ctx, taskID)
	})
}

// ============================================================================
// FORM MODE HANDLERS
// ============================================================================

// openForm starts adding a task to the selected column, or editing task
func (m Model) openForm(task *models.Task) (tea.Model, tea.Cmd) {
	col := m.getCurrentColumn()
	if col == nil {
		m.NotificationState.Add(state.LevelInfo, "The board has no columns")
		return m, nil
	}
	m.form = newTaskForm(col.ID, task)
	m.UiState.SetMode(state.FormMode)
	return m, nil
}

// handleFormMode handles input in the add/edit dialog
func (m Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.form.toggleFocus()
		return m, nil
	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submitForm saves the dialog. An empty title keeps the dialog open.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	title := m.form.titleValue()
	if title == "" {
		m.NotificationState.Add(state.LevelError, board.ErrEmptyTitle.Error())
		return m, nil
	}
	description := m.form.description.Value()
	m.UiState.SetMode(state.NormalMode)

	if m.form.editing() {
		taskID := m.form.taskID
		return m, m.mutate("Task updated", taskID, func(ctx context.Context, svc board.Service) error {
			_, err := svc.UpdateTask(ctx, board.UpdateTaskRequest{
				TaskID:      taskID,
				Title:       &title,
				Description: &description,
			})
			return err
		})
	}

	columnID := m.form.columnID
	ctx, svc := m.ctx, m.svc
	return m, func() tea.Msg {
		task, err := svc.CreateTask(ctx, board.CreateTaskRequest{
			ColumnID:    columnID,
			Title:       title,
			Description: description,
		})
		if err != nil {
			return boardMsg{err: err}
		}
		data, err := svc.GetBoard(ctx)
		return boardMsg{data: data, err: err, info: "Task added", selectTaskID: task.ID}
	}
}

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// handleDeleteConfirm deletes the selected task on y
func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.UiState.SetMode(state.NormalMode)
		task := m.getCurrentTask()
		if task == nil {
			return m, nil
		}
		taskID := task.ID
		return m, m.mutate("Task deleted", "", func(ctx context.Context, svc board.Service) error {
			return svc.DeleteTask(ctx, taskID)
		})
	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleResetConfirm overwrites an unreadable board file with the default board on y
func (m Model) handleResetConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.UiState.SetMode(state.NormalMode)
		m.NotificationState.Clear()
		m.UiState.ResetSelection()
		return m, m.mutate("Board reset to the default board", "", func(ctx context.Context, svc board.Service) error {
			return svc.ReplaceBoard(ctx, models.DefaultBoard())
		})
	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// ============================================================================
// HELP / VIEW MODE HANDLERS
// ============================================================================

// handleOverlayMode closes the help screen or the task view
func (m Model) handleOverlayMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	switch msg.String() {
	case km.ShowHelp, km.Quit, km.ViewTask, "esc", "enter":
		m.UiState.SetMode(state.NormalMode)
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}
