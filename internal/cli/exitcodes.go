package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/taskboard/internal/daemon"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/services/board"
	"github.com/thenoetrevino/taskboard/internal/store"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: I/O errors, daemon errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested task or column does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: A corrupt board file or an import file that is not a board.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty or overlong titles and similar input rules.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command
type ExitCodeError struct {
	Code int
	Err  error

	// Reported is set once the error has been shown to the user
	Reported bool
}

// Error implements the error interface.
func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode tags err with an exit code
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: code, Err: err}
}

// UsageError tags err as incorrect command usage
func UsageError(err error) error {
	return WithExitCode(ExitUsage, err)
}

// IsReported reports whether err was already printed by an OutputFormatter
func IsReported(err error) bool {
	var exitErr *ExitCodeError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// ExitCode returns the exit code for err, ExitSuccess for nil
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return Classify(err).ExitCode
}

// ErrInvalidImport marks an import source that is not a valid board
var ErrInvalidImport = errors.New("import file is not a valid board")

// Failure describes how an error is reported to the user
type Failure struct {
	ExitCode   int
	Code       string
	Suggestion string
}

// Classify maps an error from the service and store layers to its exit
// code, machine-readable code and a suggestion for the user
func Classify(err error) Failure {
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) && exitErr.Code == ExitUsage {
		return Failure{ExitUsage, "USAGE", "Run the command with --help for usage"}
	}

	var connErr *daemon.ConnError
	switch {
	case errors.Is(err, ErrInvalidImport):
		return Failure{ExitDataErr, "INVALID_IMPORT",
			"The board was not changed. Compare the file with the output of: taskboard board export"}
	case errors.Is(err, store.ErrParse):
		return Failure{ExitDataErr, "BOARD_CORRUPT",
			"Fix the file by hand or overwrite it with the default board: taskboard board reset"}
	case errors.Is(err, store.ErrIO):
		return Failure{ExitError, "BOARD_IO", "Check that the board file and its directory are readable and writable"}
	case errors.Is(err, store.ErrHomeDir):
		return Failure{ExitError, "NO_HOME", "Set HOME or configure storage.path / TASKBOARD_FILE"}
	case errors.Is(err, models.ErrTaskNotFound):
		return Failure{ExitNotFound, "TASK_NOT_FOUND", "Use 'taskboard board show' to list task IDs"}
	case errors.Is(err, models.ErrColumnNotFound):
		return Failure{ExitNotFound, "COLUMN_NOT_FOUND", "Use 'taskboard board show' to list column IDs"}
	case errors.Is(err, board.ErrEmptyTitle), errors.Is(err, board.ErrTitleTooLong):
		return Failure{ExitValidation, "INVALID_TITLE", ""}
	case errors.Is(err, board.ErrInvalidTaskID), errors.Is(err, board.ErrInvalidColumnID):
		return Failure{ExitUsage, "INVALID_ID", ""}
	case errors.As(err, &connErr):
		// The connection error message already carries its hint
		return Failure{ExitError, "DAEMON_UNAVAILABLE", ""}
	case errors.Is(err, daemon.ErrAlreadyRunning):
		return Failure{ExitError, "DAEMON_RUNNING", "Check the running daemon with: taskboard daemon status"}
	case errors.Is(err, context.Canceled):
		return Failure{ExitError, "CANCELLED", ""}
	default:
		return Failure{ExitError, "ERROR", ""}
	}
}
