//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// device is the set of terminal ioctls a Session uses.
type device interface {
	IsTerminal(fd int) bool
	GetAttr(fd int) (*unix.Termios, error)
	SetAttr(fd int, t *unix.Termios) error
	// Size returns the window size in columns and rows.
	Size(fd int) (cols, rows int, err error)
}

// ttyDevice talks to a real terminal.
type ttyDevice struct{}

func (ttyDevice) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (ttyDevice) GetAttr(fd int) (*unix.Termios, error) {
	return unix.IoctlGetTermios(fd, ioctlGetTermios)
}

func (ttyDevice) SetAttr(fd int, t *unix.Termios) error {
	return unix.IoctlSetTermios(fd, ioctlSetTermios, t)
}

func (ttyDevice) Size(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// makeRaw returns a copy of orig with raw-mode flags applied and a read
// timeout of one decisecond with no minimum byte count.
func makeRaw(orig *unix.Termios) *unix.Termios {
	raw := *orig
	// Input flags: disable break, CR to NL, parity, strip, flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output flags: disable post processing
	raw.Oflag &^= unix.OPOST
	// Control flags: set 8 bit chars
	raw.Cflag |= unix.CS8
	// Local flags: disable echo, canonical mode, signals, extended input
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Control chars: return after 100ms even with no input
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	return &raw
}
