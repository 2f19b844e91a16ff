package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// UI elements
		ColumnBorder:   "#FFFFFF",
		TaskBorder:     "#585858",
		SelectedBorder: "#FFFFFF",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status
		SuccessFg: "#FFFFFF",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",
	}
}
