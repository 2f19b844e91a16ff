package daemon

import (
	"errors"
	"os"
	"syscall"
)

// ErrorCode represents daemon connection error types.
type ErrorCode int

const (
	ErrSocketNotFound ErrorCode = iota
	ErrSocketPermission
	ErrDaemonNotRunning
	ErrConnectionRefused
)

var (
	// ErrClientClosed is returned by calls on a closed Client
	ErrClientClosed = errors.New("daemon client closed")

	// ErrAlreadyRunning is returned when another daemon answers on the socket
	ErrAlreadyRunning = errors.New("daemon already running")
)

// ConnError represents a structured connection error with context.
type ConnError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Err     error
}

// Error implements the error interface.
func (e *ConnError) Error() string {
	if e.Hint != "" {
		return e.Message + ". " + e.Hint
	}
	return e.Message
}

// Unwrap returns the underlying dial error.
func (e *ConnError) Unwrap() error {
	return e.Err
}

// RemoteError is a failure reported by the daemon in an ok:false response
type RemoteError struct {
	Command string
	Message string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	return "daemon " + e.Command + ": " + e.Message
}

// ClassifyError maps dial errors to structured ConnError types.
func ClassifyError(err error) *ConnError {
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return &ConnError{
			Code:    ErrSocketNotFound,
			Message: "Socket file not found",
			Hint:    "Start daemon: taskboard daemon",
			Err:     err,
		}
	}

	if errors.Is(err, os.ErrPermission) {
		return &ConnError{
			Code:    ErrSocketPermission,
			Message: "Permission denied",
			Hint:    "Check ~/.taskboard/ permissions: chmod 700 ~/.taskboard/",
			Err:     err,
		}
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.ECONNREFUSED {
		return &ConnError{
			Code:    ErrConnectionRefused,
			Message: "Connection refused",
			Hint:    "Daemon may have crashed. Remove the stale socket and run: taskboard daemon",
			Err:     err,
		}
	}

	return &ConnError{
		Code:    ErrDaemonNotRunning,
		Message: "Daemon not running",
		Hint:    "Start daemon: taskboard daemon",
		Err:     err,
	}
}
