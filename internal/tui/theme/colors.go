package theme

import "github.com/thenoetrevino/taskboard/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	ColumnBorder   string
	TaskBorder     string
	SelectedBorder string
	Title          string
	Subtle         string
	Normal         string
	SuccessFg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	ColumnBorder = colors.ColumnBorder
	TaskBorder = colors.TaskBorder
	SelectedBorder = colors.SelectedBorder
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	SuccessFg = colors.SuccessFg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
