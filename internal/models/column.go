package models

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done")
// Tasks are kept in display order
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Tasks []Task `json:"tasks"`
}

// MarshalJSON writes a nil task list as [] so the file never holds null
func (c Column) MarshalJSON() ([]byte, error) {
	type plain Column
	if c.Tasks == nil {
		c.Tasks = []Task{}
	}
	return marshalUnescaped(plain(c))
}
