package models

import "errors"

// Lookup errors for in-memory board edits
var (
	// ErrColumnNotFound indicates no column on the board has the given ID
	ErrColumnNotFound = errors.New("column not found")

	// ErrTaskNotFound indicates no column on the board holds a task with the given ID
	ErrTaskNotFound = errors.New("task not found")
)
