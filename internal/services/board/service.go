// Package board implements task operations on top of a board DataStore.
// Every write loads the current board, edits it in memory and saves the
// whole board back, exactly as the board view does.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/store"
)

// MaxTitleLength is the longest task title accepted, in characters
const MaxTitleLength = 255

// Service defines all board-related business operations
type Service interface {
	// Read operations
	GetBoard(ctx context.Context) (*models.KanbanData, error)
	GetTask(ctx context.Context, taskID string) (*models.Task, string, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	ReplaceBoard(ctx context.Context, data *models.KanbanData) error

	// Task movements
	MoveTask(ctx context.Context, req MoveTaskRequest) error
	MoveTaskToNextColumn(ctx context.Context, taskID string) error
	MoveTaskToPrevColumn(ctx context.Context, taskID string) error
	MoveTaskUp(ctx context.Context, taskID string) error
	MoveTaskDown(ctx context.Context, taskID string) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	ColumnID    string
	Title       string
	Description string
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID      string
	Title       *string
	Description *string
}

// MoveTaskRequest places a task in a column at Index; a negative Index appends
type MoveTaskRequest struct {
	TaskID   string
	ColumnID string
	Index    int
}

// IDGenerator produces new task IDs
type IDGenerator func() string

// NewTaskID returns "task-" followed by a random UUID
func NewTaskID() string {
	return "task-" + uuid.NewString()
}

// service implements Service interface
type service struct {
	store  store.DataStore
	newID  IDGenerator
	logger *slog.Logger
}

// Option configures a Service
type Option func(*service)

// WithIDGenerator replaces the task ID generator
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *service) {
		s.newID = gen
	}
}

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// NewService creates a new board service
func NewService(ds store.DataStore, opts ...Option) Service {
	s := &service{
		store:  ds,
		newID:  NewTaskID,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetBoard returns the current board
func (s *service) GetBoard(ctx context.Context) (*models.KanbanData, error) {
	return s.store.Load(ctx)
}

// GetTask returns a task and the ID of the column holding it
func (s *service) GetTask(ctx context.Context, taskID string) (*models.Task, string, error) {
	if err := validateID(taskID, ErrInvalidTaskID); err != nil {
		return nil, "", err
	}

	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, "", err
	}

	loc, err := data.Locate(taskID)
	if err != nil {
		return nil, "", err
	}
	task := data.Columns[loc.ColumnIndex].Tasks[loc.TaskIndex]
	return &task, data.Columns[loc.ColumnIndex].ID, nil
}

// CreateTask validates the request and appends a new task to the column
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := validateID(req.ColumnID, ErrInvalidColumnID); err != nil {
		return nil, err
	}
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		ID:          s.newID(),
		Title:       title,
		Description: req.Description,
	}

	err = s.mutate(ctx, "create task", func(data *models.KanbanData) error {
		return data.AddTask(req.ColumnID, task)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("task created", "task_id", task.ID, "column_id", req.ColumnID)
	return &task, nil
}

// UpdateTask changes the title and/or description of a task
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if err := validateID(req.TaskID, ErrInvalidTaskID); err != nil {
		return nil, err
	}

	var title string
	if req.Title != nil {
		var err error
		if title, err = validateTitle(*req.Title); err != nil {
			return nil, err
		}
	}

	var updated models.Task
	err := s.mutate(ctx, "update task", func(data *models.KanbanData) error {
		task, err := data.FindTask(req.TaskID)
		if err != nil {
			return err
		}
		if req.Title != nil {
			task.Title = title
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		updated = *task
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("task updated", "task_id", req.TaskID)
	return &updated, nil
}

// DeleteTask removes a task from the board
func (s *service) DeleteTask(ctx context.Context, taskID string) error {
	if err := validateID(taskID, ErrInvalidTaskID); err != nil {
		return err
	}

	err := s.mutate(ctx, "delete task", func(data *models.KanbanData) error {
		_, err := data.RemoveTask(taskID)
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Debug("task deleted", "task_id", taskID)
	return nil
}

// ReplaceBoard saves data as the whole board
func (s *service) ReplaceBoard(ctx context.Context, data *models.KanbanData) error {
	if data == nil {
		return ErrNilBoard
	}
	if err := s.store.Save(ctx, data); err != nil {
		return fmt.Errorf("failed to replace board: %w", err)
	}
	s.logger.Debug("board replaced", "columns", len(data.Columns), "tasks", data.TaskCount())
	return nil
}

// MoveTask places a task in a column at the requested position
func (s *service) MoveTask(ctx context.Context, req MoveTaskRequest) error {
	if err := validateID(req.TaskID, ErrInvalidTaskID); err != nil {
		return err
	}
	if err := validateID(req.ColumnID, ErrInvalidColumnID); err != nil {
		return err
	}

	err := s.mutate(ctx, "move task", func(data *models.KanbanData) error {
		return data.MoveTask(req.TaskID, req.ColumnID, req.Index)
	})
	if err != nil {
		return err
	}

	s.logger.Debug("task moved", "task_id", req.TaskID, "column_id", req.ColumnID, "index", req.Index)
	return nil
}

// MoveTaskToNextColumn appends the task to the column on its right
func (s *service) MoveTaskToNextColumn(ctx context.Context, taskID string) error {
	return s.shiftColumn(ctx, taskID, 1)
}

// MoveTaskToPrevColumn appends the task to the column on its left
func (s *service) MoveTaskToPrevColumn(ctx context.Context, taskID string) error {
	return s.shiftColumn(ctx, taskID, -1)
}

// MoveTaskUp swaps the task with the one above it
func (s *service) MoveTaskUp(ctx context.Context, taskID string) error {
	return s.shiftPosition(ctx, taskID, -1)
}

// MoveTaskDown swaps the task with the one below it
func (s *service) MoveTaskDown(ctx context.Context, taskID string) error {
	return s.shiftPosition(ctx, taskID, 1)
}

func (s *service) shiftColumn(ctx context.Context, taskID string, delta int) error {
	if err := validateID(taskID, ErrInvalidTaskID); err != nil {
		return err
	}

	return s.mutate(ctx, "move task", func(data *models.KanbanData) error {
		loc, err := data.Locate(taskID)
		if err != nil {
			return err
		}
		target := loc.ColumnIndex + delta
		if target < 0 {
			return ErrAlreadyFirstColumn
		}
		if target >= len(data.Columns) {
			return ErrAlreadyLastColumn
		}
		return data.MoveTask(taskID, data.Columns[target].ID, -1)
	})
}

func (s *service) shiftPosition(ctx context.Context, taskID string, delta int) error {
	if err := validateID(taskID, ErrInvalidTaskID); err != nil {
		return err
	}

	return s.mutate(ctx, "move task", func(data *models.KanbanData) error {
		loc, err := data.Locate(taskID)
		if err != nil {
			return err
		}
		tasks := data.Columns[loc.ColumnIndex].Tasks
		target := loc.TaskIndex + delta
		if target < 0 {
			return ErrAlreadyFirstTask
		}
		if target >= len(tasks) {
			return ErrAlreadyLastTask
		}
		tasks[loc.TaskIndex], tasks[target] = tasks[target], tasks[loc.TaskIndex]
		return nil
	})
}

// mutate loads the board, applies edit and saves the result. Nothing is saved
// when edit fails.
func (s *service) mutate(ctx context.Context, op string, edit func(*models.KanbanData) error) error {
	data, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	if err := edit(data); err != nil {
		return err
	}

	if err := s.store.Save(ctx, data); err != nil {
		s.logger.Error("failed to save board", "op", op, "error", err)
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	return nil
}

func validateID(id string, errInvalid error) error {
	if strings.TrimSpace(id) == "" {
		return errInvalid
	}
	return nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}
