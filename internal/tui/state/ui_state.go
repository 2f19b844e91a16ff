package state

// Mode represents the current interaction mode of the board view.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	FormMode                      // Adding or editing a task
	DeleteConfirmMode             // Confirming task deletion
	ViewTaskMode                  // Reading the selected task
	HelpMode                      // Displaying help screen
	ResetConfirmMode              // Confirming a reset of an unreadable board file
)

// String returns the mode name shown in the status bar
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case FormMode:
		return "EDIT"
	case DeleteConfirmMode, ResetConfirmMode:
		return "CONFIRM"
	case ViewTaskMode:
		return "VIEW"
	case HelpMode:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// ColumnSlotWidth is the horizontal space one column takes on screen:
// content, padding, border and the gap to the next column
const ColumnSlotWidth = 36

// UIState manages the user interface state.
// This includes navigation (column/task selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:         NormalMode,
		viewportSize: 1, // recalculated when the width is known
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height left for columns once the header and
// status bar are drawn, never less than 5
func (s *UIState) ContentHeight() int {
	const headerHeight = 2
	const statusBarHeight = 2
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize works out how many column slots fit in the terminal
// width, keeping 4 characters for margins and scroll indicators. At least
// one column is always visible.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}
	const reservedWidth = 4
	s.viewportSize = max(1, (s.width-reservedWidth)/ColumnSlotWidth)
}

// EnsureSelectionVisible adjusts the viewport to ensure the selected column is visible.
// This should be called after navigation or when the selection changes.
func (s *UIState) EnsureSelectionVisible() {
	if s.selectedColumn < s.viewportOffset {
		s.viewportOffset = s.selectedColumn
	}
	if s.selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = s.selectedColumn - s.viewportSize + 1
	}
}

// ClampSelection keeps the selection inside a board whose columns hold
// taskCounts[i] tasks. It is called whenever a new board is shown.
func (s *UIState) ClampSelection(taskCounts []int) {
	if len(taskCounts) == 0 {
		s.ResetSelection()
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), len(taskCounts)-1)
	s.selectedTask = min(max(s.selectedTask, 0), max(taskCounts[s.selectedColumn]-1, 0))

	if s.viewportOffset+s.viewportSize > len(taskCounts) {
		s.viewportOffset = max(0, len(taskCounts)-s.viewportSize)
	}
	s.EnsureSelectionVisible()
}

// ResetSelection resets both column and task selection to zero.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	s.viewportOffset = 0
}
