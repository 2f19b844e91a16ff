package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/taskboard/internal/models"
)

// RenderTask renders a single task as a card
//
//	┌────────────────────────────┐
//	│ {Task Title}               │
//	│ {task id}                  │
//	└────────────────────────────┘
func RenderTask(task models.Task, selected bool) string {
	style := TaskStyle
	if selected {
		style = SelectedTaskStyle
	}

	title := Truncate(task.Title, ColumnContentWidth-2)
	id := SubtleStyle.Render(Truncate(task.ID, ColumnContentWidth-2))

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(title), id))
}

// Truncate shortens s to width cells, ending with an ellipsis when cut
func Truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
