package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// KanbanData is the whole board: every column and the tasks inside it.
// Column order is display order.
type KanbanData struct {
	Columns []Column `json:"columns"`
}

// TaskLocation is the position of a task on the board
type TaskLocation struct {
	ColumnIndex int
	TaskIndex   int
}

// MarshalJSON writes a nil column list as [] so an empty board stays {"columns": []}
func (d KanbanData) MarshalJSON() ([]byte, error) {
	type plain KanbanData
	if d.Columns == nil {
		d.Columns = []Column{}
	}
	return marshalUnescaped(plain(d))
}

// marshalUnescaped encodes v without HTML-escaping <, > and &, keeping task
// text in the board file exactly as the user typed it
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Clone returns a deep copy of the board
func (d *KanbanData) Clone() *KanbanData {
	out := &KanbanData{Columns: make([]Column, len(d.Columns))}
	for i, col := range d.Columns {
		tasks := make([]Task, len(col.Tasks))
		copy(tasks, col.Tasks)
		out.Columns[i] = Column{ID: col.ID, Title: col.Title, Tasks: tasks}
	}
	return out
}

// Normalize replaces nil column and task lists with empty ones and returns d.
// The board file writes both as [], so this is the form Load returns.
func (d *KanbanData) Normalize() *KanbanData {
	if d.Columns == nil {
		d.Columns = []Column{}
	}
	for i := range d.Columns {
		if d.Columns[i].Tasks == nil {
			d.Columns[i].Tasks = []Task{}
		}
	}
	return d
}

// ColumnIndex returns the index of the column with the given ID
func (d *KanbanData) ColumnIndex(columnID string) (int, error) {
	for i := range d.Columns {
		if d.Columns[i].ID == columnID {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, columnID)
}

// Column returns a pointer into the board for the column with the given ID
func (d *KanbanData) Column(columnID string) (*Column, error) {
	i, err := d.ColumnIndex(columnID)
	if err != nil {
		return nil, err
	}
	return &d.Columns[i], nil
}

// Locate finds the column and position holding the given task
func (d *KanbanData) Locate(taskID string) (TaskLocation, error) {
	for ci := range d.Columns {
		for ti := range d.Columns[ci].Tasks {
			if d.Columns[ci].Tasks[ti].ID == taskID {
				return TaskLocation{ColumnIndex: ci, TaskIndex: ti}, nil
			}
		}
	}
	return TaskLocation{}, fmt.Errorf("%w: %q", ErrTaskNotFound, taskID)
}

// FindTask returns a pointer into the board for the task with the given ID
func (d *KanbanData) FindTask(taskID string) (*Task, error) {
	loc, err := d.Locate(taskID)
	if err != nil {
		return nil, err
	}
	return &d.Columns[loc.ColumnIndex].Tasks[loc.TaskIndex], nil
}

// AddTask appends a task to the end of a column
func (d *KanbanData) AddTask(columnID string, task Task) error {
	col, err := d.Column(columnID)
	if err != nil {
		return err
	}
	col.Tasks = append(col.Tasks, task)
	return nil
}

// UpdateTask replaces the title and description of an existing task
func (d *KanbanData) UpdateTask(taskID, title, description string) error {
	task, err := d.FindTask(taskID)
	if err != nil {
		return err
	}
	task.Title = title
	task.Description = description
	return nil
}

// RemoveTask deletes a task from whichever column holds it and returns it
func (d *KanbanData) RemoveTask(taskID string) (Task, error) {
	loc, err := d.Locate(taskID)
	if err != nil {
		return Task{}, err
	}
	col := &d.Columns[loc.ColumnIndex]
	removed := col.Tasks[loc.TaskIndex]
	col.Tasks = append(col.Tasks[:loc.TaskIndex], col.Tasks[loc.TaskIndex+1:]...)
	return removed, nil
}

// MoveTask takes a task out of its column and inserts it into the target
// column at index. The index refers to the target column after removal and is
// clamped to [0, len]; a negative index appends.
func (d *KanbanData) MoveTask(taskID, toColumnID string, index int) error {
	// Resolve the target first so a bad column leaves the board untouched
	if _, err := d.ColumnIndex(toColumnID); err != nil {
		return err
	}

	task, err := d.RemoveTask(taskID)
	if err != nil {
		return err
	}

	col, _ := d.Column(toColumnID)
	if index < 0 || index > len(col.Tasks) {
		index = len(col.Tasks)
	}
	col.Tasks = append(col.Tasks, Task{})
	copy(col.Tasks[index+1:], col.Tasks[index:])
	col.Tasks[index] = task
	return nil
}

// TaskCount returns the number of tasks across all columns
func (d *KanbanData) TaskCount() int {
	n := 0
	for _, col := range d.Columns {
		n += len(col.Tasks)
	}
	return n
}
