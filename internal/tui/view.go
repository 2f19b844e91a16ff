package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/taskboard/internal/store"
	"github.com/thenoetrevino/taskboard/internal/tui/components"
	"github.com/thenoetrevino/taskboard/internal/tui/state"
)

// View renders the current state
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	var body string
	switch m.UiState.Mode() {
	case state.HelpMode:
		body = m.place(m.viewHelp())
	case state.FormMode:
		body = m.place(m.form.view())
	case state.DeleteConfirmMode:
		body = m.place(m.viewDeleteConfirm())
	case state.ResetConfirmMode:
		body = m.place(m.viewResetConfirm())
	case state.ViewTaskMode:
		body = m.place(m.viewTask())
	default:
		body = m.viewBoard()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.viewNotifications(),
		components.RenderStatusBar(components.StatusBarProps{
			Width: m.UiState.Width(),
			Mode:  m.UiState.Mode().String(),
			Path:  m.path,
		}),
	)
}

// place centers a dialog in the content area
func (m Model) place(dialog string) string {
	if m.UiState.Width() == 0 {
		return dialog
	}
	return lipgloss.Place(m.UiState.Width(), m.UiState.ContentHeight(), lipgloss.Center, lipgloss.Center, dialog)
}

// viewBoard draws the columns that fit on screen with scroll indicators
func (m Model) viewBoard() string {
	if m.board == nil {
		return m.viewLoadError()
	}
	if len(m.board.Columns) == 0 {
		return components.SubtleStyle.Render("The board has no columns. Edit the board file or run 'taskboard board import'.")
	}

	offset := m.UiState.ViewportOffset()
	end := min(offset+m.UiState.ViewportSize(), len(m.board.Columns))
	height := m.UiState.ContentHeight()

	parts := []string{scrollIndicator(offset > 0, "◀")}
	for i := offset; i < end; i++ {
		selected := i == m.UiState.SelectedColumn()
		taskIdx := -1
		if selected {
			taskIdx = m.UiState.SelectedTask()
		}
		parts = append(parts, components.RenderColumn(m.board.Columns[i], selected, taskIdx, height), "  ")
	}
	parts = append(parts, scrollIndicator(end < len(m.board.Columns), "▶"))

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func scrollIndicator(show bool, arrow string) string {
	if !show {
		return " "
	}
	return components.SubtleStyle.Render(arrow)
}

// viewLoadError replaces the board when the file could not be read
func (m Model) viewLoadError() string {
	if m.loadErr == nil {
		return components.SubtleStyle.Render("Loading board...")
	}

	lines := []string{
		components.ErrorBannerStyle.Render("The board could not be loaded"),
		"",
		m.loadErr.Error(),
		"",
	}
	if store.IsRecoverable(m.loadErr) {
		lines = append(lines,
			"Fix the file by hand and press "+m.Config.KeyMappings.Reload+" to reload,",
			"or press "+resetKey+" to overwrite it with the default board.")
	} else {
		lines = append(lines, "Press "+m.Config.KeyMappings.Reload+" to try again.")
	}
	return m.place(components.DeleteConfirmBoxStyle.Render(strings.Join(lines, "\n")))
}

func (m Model) viewNotifications() string {
	var lines []string
	for _, n := range m.NotificationState.All() {
		if n.Level == state.LevelError {
			lines = append(lines, components.ErrorBannerStyle.Render(n.Message))
		} else {
			lines = append(lines, components.InfoBannerStyle.Render(n.Message))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewDeleteConfirm() string {
	task := m.getCurrentTask()
	if task == nil {
		return ""
	}
	return components.DeleteConfirmBoxStyle.Render(fmt.Sprintf("Delete %q?\n\n[y]es  [n]o", task.Title))
}

func (m Model) viewResetConfirm() string {
	return components.DeleteConfirmBoxStyle.Render(
		"Overwrite the board file with the default board?\nEverything in the current file is lost.\n\n[y]es  [n]o")
}

// viewTask shows the selected task with its description rendered as markdown
func (m Model) viewTask() string {
	task := m.getCurrentTask()
	col := m.getCurrentColumn()
	if task == nil || col == nil {
		return ""
	}

	description := components.SubtleStyle.Render("No description")
	if strings.TrimSpace(task.Description) != "" {
		description = renderMarkdown(task.Description)
	}

	return components.HelpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(task.Title),
		components.SubtleStyle.Render(task.ID+" in "+col.Title),
		"",
		description,
	))
}

// renderMarkdown renders text with glamour, falling back to the raw text
func renderMarkdown(text string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(60),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
