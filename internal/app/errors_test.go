package app

import (
	"errors"
	"io/fs"
	"testing"
)

func TestIOError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *IOError
		expected string
	}{
		{"nil error", nil, ""},
		{"no cause", &IOError{Op: "open", Path: "a.txt"}, "open a.txt"},
		{"with cause", &IOError{Op: "read", Path: "a.txt", Err: errors.New("io error")}, "read a.txt: io error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.err.Error(); result != tt.expected {
				t.Errorf("Error() = '%s', expected '%s'", result, tt.expected)
			}
		})
	}
}

func TestIOError_Unwrap(t *testing.T) {
	err := &IOError{Op: "open", Path: "x", Err: fs.ErrNotExist}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected IOError to unwrap to its cause")
	}

	var nilErr *IOError
	if nilErr.Unwrap() != nil {
		t.Error("nil IOError should unwrap to nil")
	}
}

func TestInitError(t *testing.T) {
	cause := errors.New("no size")
	err := &InitError{Component: "terminal", Err: cause}

	if err.Error() != "init terminal: no size" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected InitError to unwrap to its cause")
	}
}
