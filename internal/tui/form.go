package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/services/board"
	"github.com/thenoetrevino/taskboard/internal/tui/components"
)

const formInputWidth = 50

// taskForm is the add/edit dialog: a title and a one-line description
type taskForm struct {
	title       textinput.Model
	description textinput.Model
	focus       int

	// taskID is empty when adding a task
	taskID   string
	columnID string
}

func newTaskForm(columnID string, task *models.Task) taskForm {
	title := textinput.New()
	title.Prompt = "Title: "
	title.Placeholder = "What needs doing?"
	title.CharLimit = board.MaxTitleLength
	title.Width = formInputWidth

	description := textinput.New()
	description.Prompt = "Description: "
	description.Placeholder = "optional"
	description.Width = formInputWidth

	f := taskForm{title: title, description: description, columnID: columnID}
	if task != nil {
		f.taskID = task.ID
		f.title.SetValue(task.Title)
		f.description.SetValue(task.Description)
	}
	f.title.Focus()
	return f
}

func (f taskForm) editing() bool {
	return f.taskID != ""
}

// toggleFocus moves the cursor between the two fields
func (f *taskForm) toggleFocus() {
	f.focus = 1 - f.focus
	if f.focus == 0 {
		f.description.Blur()
		f.title.Focus()
	} else {
		f.title.Blur()
		f.description.Focus()
	}
}

// update sends msg to the focused field
func (f taskForm) update(msg tea.Msg) (taskForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.description, cmd = f.description.Update(msg)
	}
	return f, cmd
}

func (f taskForm) titleValue() string {
	return strings.TrimSpace(f.title.Value())
}

func (f taskForm) view() string {
	heading := "New task in " + f.columnID
	style := components.CreateInputBoxStyle
	if f.editing() {
		heading = "Edit " + f.taskID
		style = components.EditInputBoxStyle
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(heading),
		"",
		f.title.View(),
		f.description.View(),
		"",
		components.SubtleStyle.Render("enter save • tab switch field • esc cancel"),
	)
	return style.Render(content)
}
