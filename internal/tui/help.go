package tui

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/taskboard/internal/tui/components"
)

// keyName shows the space bar by name
func keyName(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

// viewHelp lists the configured key bindings
func (m Model) viewHelp() string {
	km := m.Config.KeyMappings
	sections := []struct {
		title    string
		bindings [][2]string
	}{
		{"Navigation", [][2]string{
			{km.PrevColumn + "/" + km.NextColumn, "previous / next column"},
			{km.PrevTask + "/" + km.NextTask, "previous / next task"},
		}},
		{"Tasks", [][2]string{
			{km.AddTask, "add a task to the column"},
			{km.EditTask, "edit the selected task"},
			{km.DeleteTask, "delete the selected task"},
			{keyName(km.ViewTask), "view the description"},
			{km.MoveTaskLeft + "/" + km.MoveTaskRight, "move task to previous / next column"},
			{km.MoveTaskUp + "/" + km.MoveTaskDown, "move task up / down"},
		}},
		{"Other", [][2]string{
			{km.Reload, "reload the board file"},
			{km.ShowHelp, "toggle this help"},
			{km.Quit, "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keyboard shortcuts"))
	for _, section := range sections {
		b.WriteString("\n\n")
		b.WriteString(components.ModeStyle.Render(section.title))
		for _, binding := range section.bindings {
			fmt.Fprintf(&b, "\n  %-8s %s", binding[0], binding[1])
		}
	}
	return components.HelpBoxStyle.Render(b.String())
}
