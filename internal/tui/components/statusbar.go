package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarProps is what the status bar shows
type StatusBarProps struct {
	Width int
	Mode  string
	Path  string
}

// RenderStatusBar renders the mode and board path on the left and the help
// hint on the right
func RenderStatusBar(props StatusBarProps) string {
	left := ModeStyle.Render(props.Mode) + StatusBarStyle.Render(" "+props.Path)
	right := StatusBarStyle.Render("press ? for help")

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapWidth), right)
}
