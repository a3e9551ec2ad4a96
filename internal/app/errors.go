package app

import (
	"errors"
	"fmt"
)

// ErrQuit signals that the user asked to quit. It is the only error Run
// returns on a normal exit.
var ErrQuit = errors.New("quit requested")

// IOError is a failure opening or reading the file being viewed.
type IOError struct {
	Op   string // "open" or "read"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Op, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InitError is a failure while setting up the editor.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
