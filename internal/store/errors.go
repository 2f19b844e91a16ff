package store

import (
	"errors"
	"fmt"
)

// Kind classifies board file failures
type Kind int

const (
	// KindIO is a read or write failure at the OS level
	KindIO Kind = iota + 1
	// KindParse is a board file that is not valid JSON or not board-shaped
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is classification of *Error values
var (
	ErrIO    = errors.New("board file i/o error")
	ErrParse = errors.New("board file is malformed")

	// ErrHomeDir indicates the default storage path could not be derived
	ErrHomeDir = errors.New("cannot resolve home directory")
)

// Error describes a failed load or save of the board file
type Error struct {
	Kind Kind
	Op   string // "read", "write" or "parse"
	Path string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("failed to %s board file %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches ErrIO and ErrParse against the error kind
func (e *Error) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == KindIO
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

// IsRecoverable reports whether overwriting the file with the default board
// would clear err. Only a malformed file qualifies.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrParse)
}

func ioError(op, path string, err error) error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}

func parseError(path string, err error) error {
	return &Error{Kind: KindParse, Op: "parse", Path: path, Err: err}
}
