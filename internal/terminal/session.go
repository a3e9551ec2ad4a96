//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/dshills/chip/internal/terminal/ansi"
)

// maxReportLen bounds the cursor position report read during the size
// fallback.
const maxReportLen = 32

// Session owns raw-mode control of a terminal.
// Session is not safe for concurrent use.
type Session struct {
	in    io.Reader
	out   io.Writer
	inFd  int
	outFd int
	dev   device

	orig *unix.Termios
	raw  bool
}

// NewSession creates a session reading keys from in and drawing to out.
// Terminal attributes are taken from in; the window size from out.
func NewSession(in, out *os.File) *Session {
	return newSession(in, out, int(in.Fd()), int(out.Fd()), ttyDevice{})
}

func newSession(in io.Reader, out io.Writer, inFd, outFd int, dev device) *Session {
	return &Session{
		in:    in,
		out:   out,
		inFd:  inFd,
		outFd: outFd,
		dev:   dev,
	}
}

// Enter captures the current terminal attributes and switches to raw mode.
// Calling Enter on a session already in raw mode does nothing.
func (s *Session) Enter() error {
	if s.raw {
		return nil
	}
	if !s.dev.IsTerminal(s.inFd) {
		return wrap("enter raw mode", ErrNotTerminal)
	}

	orig, err := s.dev.GetAttr(s.inFd)
	if err != nil {
		return wrap("tcgetattr", err)
	}
	s.orig = orig

	if err := s.dev.SetAttr(s.inFd, makeRaw(orig)); err != nil {
		return wrap("tcsetattr", err)
	}
	s.raw = true
	return nil
}

// Exit restores the attributes captured by Enter. It restores at most
// once per Enter; later calls do nothing.
func (s *Session) Exit() error {
	if !s.raw {
		return nil
	}
	s.raw = false
	return wrap("tcsetattr", s.dev.SetAttr(s.inFd, s.orig))
}

// Close restores the terminal and then clears the screen. The clear is
// attempted even if the restore fails, and only the restore error is
// returned.
func (s *Session) Close() error {
	err := s.Exit()
	_ = s.ClearScreen()
	return err
}

// Read reads input bytes. A read that times out with no input returns
// 0 and a nil error.
func (s *Session) Read(p []byte) (int, error) {
	n, err := s.in.Read(p)
	if n > 0 {
		return n, nil
	}
	if err == nil || isTimeout(err) {
		return 0, nil
	}
	return 0, wrap("read", err)
}

// isTimeout reports whether err is how the platform signals an empty read.
// With VMIN=0 the kernel returns 0 bytes, which os.File reports as io.EOF.
func isTimeout(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR)
}

// Write writes p to the terminal in a single call.
func (s *Session) Write(p []byte) (int, error) {
	n, err := s.out.Write(p)
	return n, wrap("write", err)
}

// ClearScreen erases the display and homes the cursor.
func (s *Session) ClearScreen() error {
	_, err := s.Write([]byte(ansi.ClearScreen))
	return err
}

// Size returns the terminal size in rows and columns.
//
// The window size ioctl is tried first. If it fails or reports zero
// columns, the cursor is pushed to the bottom-right corner and its
// position is read back with a cursor position report.
func (s *Session) Size() (rows, cols int, err error) {
	cols, rows, err = s.dev.Size(s.outFd)
	if err == nil && cols > 0 {
		return rows, cols, nil
	}

	if _, err := s.Write([]byte(ansi.FarCorner)); err != nil {
		return 0, 0, err
	}
	rows, cols, err = s.CursorPosition()
	if err != nil {
		return 0, 0, &Error{Op: "get window size", Err: fmt.Errorf("%w: %w", ErrNoGeometry, err)}
	}
	return rows, cols, nil
}

// CursorPosition asks the terminal where the cursor is and returns the
// 1-based row and column from its "ESC [ row ; col R" reply.
func (s *Session) CursorPosition() (row, col int, err error) {
	if _, err := s.Write([]byte(ansi.QueryCursorPos)); err != nil {
		return 0, 0, err
	}

	report := make([]byte, 0, maxReportLen)
	var b [1]byte
	for len(report) < maxReportLen-1 {
		n, err := s.Read(b[:])
		if err != nil {
			return 0, 0, err
		}
		if n == 0 || b[0] == 'R' {
			break
		}
		report = append(report, b[0])
	}

	row, col, err = ansi.ParseCursorReport(report)
	if err != nil {
		return 0, 0, wrap("cursor position report", err)
	}
	return row, col, nil
}
