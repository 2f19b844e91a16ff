package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	SelectedBorder string `yaml:"selected_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status colors
	SuccessFg string `yaml:"success_fg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fillFrom(*preset)
}

// MergeFrom overrides colors with every non-empty value from other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	for dst, src := range c.fields(&other) {
		if *src != "" {
			*dst = *src
		}
	}
}

func (c *ColorScheme) fillFrom(base ColorScheme) {
	for dst, src := range c.fields(&base) {
		if *dst == "" {
			*dst = *src
		}
	}
}

// fields pairs every color of c with the same color of other
func (c *ColorScheme) fields(other *ColorScheme) map[*string]*string {
	return map[*string]*string{
		&c.Accent:         &other.Accent,
		&c.ColumnBorder:   &other.ColumnBorder,
		&c.TaskBorder:     &other.TaskBorder,
		&c.SelectedBorder: &other.SelectedBorder,
		&c.Title:          &other.Title,
		&c.Subtle:         &other.Subtle,
		&c.Normal:         &other.Normal,
		&c.SuccessFg:      &other.SuccessFg,
		&c.ErrorFg:        &other.ErrorFg,
		&c.ErrorBg:        &other.ErrorBg,
	}
}
