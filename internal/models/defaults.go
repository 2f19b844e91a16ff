package models

// Column IDs of the seeded board
const (
	DefaultTodoColumnID       = "todo"
	DefaultInProgressColumnID = "in-progress"
	DefaultDoneColumnID       = "done"
)

// DefaultBoard returns a fresh copy of the board written on first run
func DefaultBoard() *KanbanData {
	return &KanbanData{
		Columns: []Column{
			{
				ID:    DefaultTodoColumnID,
				Title: "To Do",
				Tasks: []Task{
					{
						ID:          "task-1",
						Title:       "Learn Tauri",
						Description: "Learn how to build apps with Tauri",
					},
					{
						ID:          "task-2",
						Title:       "Build Kanban App",
						Description: "Create a Kanban board application",
					},
				},
			},
			{
				ID:    DefaultInProgressColumnID,
				Title: "In Progress",
				Tasks: []Task{
					{
						ID:          "task-3",
						Title:       "Implement Drag and Drop",
						Description: "Add drag and drop functionality",
					},
				},
			},
			{
				ID:    DefaultDoneColumnID,
				Title: "Done",
				Tasks: []Task{
					{
						ID:          "task-4",
						Title:       "Set up Project",
						Description: "Initialize Tauri project with React",
					},
				},
			},
		},
	}
}
