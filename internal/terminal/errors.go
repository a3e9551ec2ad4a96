package terminal

import (
	"errors"
	"fmt"
)

// Sentinel errors for the terminal package.
var (
	// ErrNotTerminal is returned when the input is not a terminal device.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrNoGeometry is returned when neither size query succeeds.
	ErrNoGeometry = errors.New("unable to determine terminal size")
)

// Error is a failed terminal operation.
type Error struct {
	Op  string // Operation name (e.g., "tcgetattr", "read", "write")
	Err error  // Underlying error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return "terminal: " + e.Op
	}
	return fmt.Sprintf("terminal: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// wrap returns err as an *Error for op, or nil if err is nil.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
