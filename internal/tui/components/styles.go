// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/taskboard/internal/config"
	"github.com/thenoetrevino/taskboard/internal/tui/theme"
)

// ColumnContentWidth is the inner width of a column; padding and border add 4
const ColumnContentWidth = 30

// TaskCardHeight is the height of one task card including its border
const TaskCardHeight = 4

var (
	// ColumnStyle defines the appearance of kanban board columns
	ColumnStyle lipgloss.Style

	// SelectedColumnStyle marks the column holding the selection
	SelectedColumnStyle lipgloss.Style

	// TaskStyle defines the appearance of individual tasks as cards
	TaskStyle lipgloss.Style

	// SelectedTaskStyle defines the selected task card
	SelectedTaskStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for IDs, hints and empty states
	SubtleStyle lipgloss.Style

	// CreateInputBoxStyle defines the style for the add task dialog
	CreateInputBoxStyle lipgloss.Style

	// EditInputBoxStyle defines the style for the edit task dialog
	EditInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the style for confirmations that destroy data
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the style for the help screen and the task view
	HelpBoxStyle lipgloss.Style

	// InfoBannerStyle defines the appearance of info notifications
	InfoBannerStyle lipgloss.Style

	// ErrorBannerStyle defines the appearance of error messages
	ErrorBannerStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// ModeStyle highlights the mode name in the status bar
	ModeStyle lipgloss.Style
)

func init() {
	InitStyles(config.DefaultColorScheme())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	theme.Init(colors)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnContentWidth + 2)

	SelectedColumnStyle = ColumnStyle.
		BorderForeground(lipgloss.Color(theme.Accent))

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.TaskBorder)).
		Foreground(lipgloss.Color(theme.Normal)).
		Width(ColumnContentWidth - 2)

	SelectedTaskStyle = TaskStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	CreateInputBoxStyle = dialog.BorderForeground(lipgloss.Color(theme.SuccessFg))
	EditInputBoxStyle = dialog.BorderForeground(lipgloss.Color(theme.ColumnBorder))
	DeleteConfirmBoxStyle = dialog.BorderForeground(lipgloss.Color(theme.ErrorFg))
	HelpBoxStyle = dialog.BorderForeground(lipgloss.Color(theme.Accent))

	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.SuccessFg))

	ErrorBannerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ErrorFg)).
		Background(lipgloss.Color(theme.ErrorBg)).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	ModeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))
}
