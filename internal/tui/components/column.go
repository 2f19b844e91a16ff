package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/taskboard/internal/models"
)

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Title} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
//
// selectedTaskIdx is -1 when the selection is in another column. The task
// list scrolls so the selected task is always drawn.
func RenderColumn(column models.Column, selected bool, selectedTaskIdx int, height int) string {
	header := TitleStyle.Render(Truncate(fmt.Sprintf("%s (%d)", column.Title, len(column.Tasks)), ColumnContentWidth))

	var content strings.Builder
	content.WriteString(header)
	content.WriteString("\n")

	if len(column.Tasks) == 0 {
		content.WriteString("\n")
		content.WriteString(SubtleStyle.Italic(true).Render("No tasks"))
	} else {
		// Border(2) + header(1) + both indicators(2)
		const columnOverhead = 5
		maxVisible := max((height-columnOverhead)/TaskCardHeight, 1)

		offset := 0
		if selectedTaskIdx >= maxVisible {
			offset = selectedTaskIdx - maxVisible + 1
		}
		end := min(offset+maxVisible, len(column.Tasks))

		indicator := SubtleStyle.Width(ColumnContentWidth).Align(lipgloss.Center)
		if offset > 0 {
			content.WriteString(indicator.Render("▲ more above"))
		}
		content.WriteString("\n")

		for i := offset; i < end; i++ {
			content.WriteString(RenderTask(column.Tasks[i], selected && i == selectedTaskIdx))
			content.WriteString("\n")
		}

		if end < len(column.Tasks) {
			content.WriteString(indicator.Render("▼ more below"))
		}
	}

	style := ColumnStyle
	if selected {
		style = SelectedColumnStyle
	}
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(strings.TrimRight(content.String(), "\n"))
}
