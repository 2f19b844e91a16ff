package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/services/board"
)

// boardMsg carries the board as loaded after a reload or a change
type boardMsg struct {
	data *models.KanbanData
	err  error

	// info is shown when the load succeeds
	info string

	// selectTaskID moves the selection to this task
	selectTaskID string
}

// loadBoard reads the board from the service
func (m Model) loadBoard(info string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		data, err := svc.GetBoard(ctx)
		return boardMsg{data: data, err: err, info: info}
	}
}

// mutate runs op and then reloads the board. A failed op is reported
// without touching the board on screen.
func (m Model) mutate(info, selectTaskID string, op func(ctx context.Context, svc board.Service) error) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		if err := op(ctx, svc); err != nil {
			return boardMsg{err: err}
		}
		data, err := svc.GetBoard(ctx)
		return boardMsg{data: data, err: err, info: info, selectTaskID: selectTaskID}
	}
}
