// Package statusline provides the status bar and message bar text.
package statusline

import (
	"strconv"
	"time"
)

const (
	// MaxFilename is how many bytes of the filename the status bar shows.
	MaxFilename = 20

	// MaxMessage bounds the length of a status message.
	MaxMessage = 79

	// DefaultMessageTimeout is how long a message stays on screen.
	DefaultMessageTimeout = 5 * time.Second

	noFileName = "[NO FILE]"
)

// Message is a transient status message.
type Message struct {
	Text string
	Time time.Time
}

// NewMessage creates a message stamped at now. Text longer than
// MaxMessage bytes is truncated.
func NewMessage(text string, now time.Time) Message {
	if len(text) > MaxMessage {
		text = text[:MaxMessage]
	}
	return Message{Text: text, Time: now}
}

// Visible returns true if the message is non-empty and younger than
// timeout at now.
func (m Message) Visible(now time.Time, timeout time.Duration) bool {
	return m.Text != "" && now.Sub(m.Time) < timeout
}

// StatusLine renders the two bottom lines: the status bar and the
// message bar.
type StatusLine struct {
	// Display state
	filename   string // Current filename (empty for no file)
	line       int    // Current line (1-indexed for display)
	totalLines int    // Total lines in buffer

	// Message display
	message        Message
	messageTimeout time.Duration

	width int
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		messageTimeout: DefaultMessageTimeout,
	}
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetPosition updates the cursor line (1-indexed).
func (s *StatusLine) SetPosition(line int) {
	s.line = line
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetMessage replaces the status message.
func (s *StatusLine) SetMessage(msg Message) {
	s.message = msg
}

// SetMessageTimeout sets how long messages stay visible.
func (s *StatusLine) SetMessageTimeout(d time.Duration) {
	if d > 0 {
		s.messageTimeout = d
	}
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Left returns the left-hand status text: filename and line count.
func (s *StatusLine) Left() string {
	name := s.filename
	if name == "" {
		name = noFileName
	}
	if len(name) > MaxFilename {
		name = name[:MaxFilename]
	}
	return name + " - " + strconv.Itoa(s.totalLines) + " lines"
}

// Right returns the right-hand status text: "line/total".
func (s *StatusLine) Right() string {
	return strconv.Itoa(s.line) + "/" + strconv.Itoa(s.totalLines)
}

// StatusBar returns exactly width bytes: the left text truncated to the
// width, then spaces, with the right text flush against the right edge
// when it fits after the left text.
func (s *StatusLine) StatusBar() []byte {
	left, right := s.Left(), s.Right()

	n := len(left)
	if n > s.width {
		n = s.width
	}
	bar := make([]byte, 0, s.width)
	bar = append(bar, left[:n]...)
	for n < s.width {
		if s.width-n == len(right) {
			bar = append(bar, right...)
			break
		}
		bar = append(bar, ' ')
		n++
	}
	return bar
}

// MessageBar returns the message text to show at now, truncated to the
// width, or nil if the message has expired.
func (s *StatusLine) MessageBar(now time.Time) []byte {
	if !s.message.Visible(now, s.messageTimeout) {
		return nil
	}
	text := s.message.Text
	if len(text) > s.width {
		text = text[:s.width]
	}
	return []byte(text)
}
