// Package tui is the interactive board view. It reads and writes the board
// only through the board service, reloading the whole board after every
// change so the screen always shows what was saved.
package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/taskboard/internal/config"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/services/board"
	"github.com/thenoetrevino/taskboard/internal/tui/components"
	"github.com/thenoetrevino/taskboard/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	svc    board.Service
	Config *config.Config
	path   string

	// board is nil until the first successful load
	board   *models.KanbanData
	loadErr error

	UiState           *state.UIState
	NotificationState *state.NotificationState
	form              taskForm
}

// New creates the board view. The board is loaded by Init.
func New(ctx context.Context, svc board.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	path, err := cfg.BoardPath()
	if err != nil {
		slog.Warn("cannot resolve board path for the status bar", "error", err)
	}

	return Model{
		ctx:               ctx,
		svc:               svc,
		Config:            cfg,
		path:              path,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
	}
}

// Init loads the board
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.loadBoard("")
}

// Board returns the board on screen, nil before the first successful load
func (m Model) Board() *models.KanbanData {
	return m.board
}

// LoadErr returns the error of the last failed load
func (m Model) LoadErr() error {
	return m.loadErr
}

// getCurrentColumn returns the currently selected column
// Returns nil if there are no columns
func (m Model) getCurrentColumn() *models.Column {
	if m.board == nil || len(m.board.Columns) == 0 {
		return nil
	}
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(m.board.Columns) {
		return nil
	}
	return &m.board.Columns[idx]
}

// getCurrentTask returns the currently selected task
// Returns nil if there are no tasks in the current column or no columns exist
func (m Model) getCurrentTask() *models.Task {
	col := m.getCurrentColumn()
	if col == nil {
		return nil
	}
	idx := m.UiState.SelectedTask()
	if idx < 0 || idx >= len(col.Tasks) {
		return nil
	}
	return &col.Tasks[idx]
}

// showBoard puts a freshly loaded board on screen. The selection follows
// selectTaskID when the task is still on the board.
func (m *Model) showBoard(data *models.KanbanData, selectTaskID string) {
	m.board = data
	m.loadErr = nil

	if selectTaskID != "" {
		if loc, err := data.Locate(selectTaskID); err == nil {
			m.UiState.SetSelectedColumn(loc.ColumnIndex)
			m.UiState.SetSelectedTask(loc.TaskIndex)
		}
	}

	counts := make([]int, len(data.Columns))
	for i, col := range data.Columns {
		counts[i] = len(col.Tasks)
	}
	m.UiState.ClampSelection(counts)
}
