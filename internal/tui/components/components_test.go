package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/taskboard/internal/models"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, 5, lipgloss.Width(Truncate("日本語のテキスト", 5)))
}

func TestRenderColumn_Empty(t *testing.T) {
	out := RenderColumn(models.Column{ID: "todo", Title: "To Do"}, false, -1, 20)

	assert.Contains(t, out, "To Do (0)")
	assert.Contains(t, out, "No tasks")
}

func TestRenderColumn_Tasks(t *testing.T) {
	col := models.DefaultBoard().Columns[0]
	out := RenderColumn(col, true, 1, 40)

	assert.Contains(t, out, "To Do (2)")
	assert.Contains(t, out, "Learn Tauri")
	assert.Contains(t, out, "task-2")
	assert.NotContains(t, out, "more below")
}

// TestRenderColumn_ScrollsToSelection keeps the selected task on screen in a short column
func TestRenderColumn_ScrollsToSelection(t *testing.T) {
	col := models.Column{ID: "c", Title: "Long"}
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		col.Tasks = append(col.Tasks, models.Task{ID: "task-" + id, Title: "Task " + strings.ToUpper(id)})
	}

	out := RenderColumn(col, true, 4, 5+2*TaskCardHeight)

	assert.Contains(t, out, "Task E")
	assert.Contains(t, out, "Task D")
	assert.NotContains(t, out, "Task A")
	assert.Contains(t, out, "more above")
	assert.NotContains(t, out, "more below")
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 100, Mode: "NORMAL", Path: "/tmp/tasks.json"})

	assert.Contains(t, out, "NORMAL")
	assert.Contains(t, out, "/tmp/tasks.json")
	assert.Contains(t, out, "press ? for help")
	assert.Equal(t, 100, lipgloss.Width(out))
}
