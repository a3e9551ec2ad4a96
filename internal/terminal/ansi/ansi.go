// Package ansi holds the VT100/ANSI escape sequences the editor emits and
// parses.
package ansi

import (
	"bytes"
	"errors"
	"strconv"
)

// Escape sequences written to the terminal.
const (
	HideCursor     = "\x1b[?25l"
	ShowCursor     = "\x1b[?25h"
	CursorHome     = "\x1b[H"
	EraseLine      = "\x1b[K"
	EraseScreen    = "\x1b[2J"
	ReverseVideo   = "\x1b[7m"
	ResetAttrs     = "\x1b[m"
	QueryCursorPos = "\x1b[6n"

	// FarCorner moves the cursor right and down by far more than any
	// terminal size; the terminal stops it at the bottom-right cell.
	FarCorner = "\x1b[999C\x1b[999B"

	// ClearScreen erases the display and homes the cursor.
	ClearScreen = EraseScreen + CursorHome

	// NewLine ends a row; output post-processing is off in raw mode so
	// the carriage return is explicit.
	NewLine = "\r\n"
)

// ErrBadCursorReport is returned when a cursor position report cannot be
// parsed.
var ErrBadCursorReport = errors.New("malformed cursor position report")

// CursorPosition returns the sequence that moves the cursor to the
// 0-based cell (row, col).
func CursorPosition(row, col int) string {
	return "\x1b[" + strconv.Itoa(row+1) + ";" + strconv.Itoa(col+1) + "H"
}

// AppendCursorPosition appends the CursorPosition sequence to dst.
func AppendCursorPosition(dst []byte, row, col int) []byte {
	dst = append(dst, "\x1b["...)
	dst = strconv.AppendInt(dst, int64(row+1), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col+1), 10)
	return append(dst, 'H')
}

// ParseCursorReport parses a cursor position report of the form
// "ESC [ <row> ; <col> R" and returns the 1-based row and column. The
// trailing 'R' is optional so callers may strip it while reading.
func ParseCursorReport(report []byte) (row, col int, err error) {
	report = bytes.TrimSuffix(report, []byte("R"))
	if !bytes.HasPrefix(report, []byte("\x1b[")) {
		return 0, 0, ErrBadCursorReport
	}
	fields := bytes.SplitN(report[2:], []byte(";"), 2)
	if len(fields) != 2 {
		return 0, 0, ErrBadCursorReport
	}
	row, err = strconv.Atoi(string(fields[0]))
	if err != nil {
		return 0, 0, ErrBadCursorReport
	}
	col, err = strconv.Atoi(string(fields[1]))
	if err != nil {
		return 0, 0, ErrBadCursorReport
	}
	if row < 1 || col < 1 {
		return 0, 0, ErrBadCursorReport
	}
	return row, col, nil
}
