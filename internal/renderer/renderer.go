package renderer

import (
	"io"
	"time"

	"github.com/dshills/chip/internal/engine/buffer"
	"github.com/dshills/chip/internal/renderer/statusline"
	"github.com/dshills/chip/internal/renderer/viewport"
	"github.com/dshills/chip/internal/terminal/ansi"
)

// Frame is the editor state a single refresh draws.
type Frame struct {
	Buffer   *buffer.Buffer
	Viewport *viewport.Viewport
	Status   *statusline.StatusLine

	// Cursor position in buffer row and render column.
	CursorRow int
	CursorCol int

	// Now decides whether the status message has expired.
	Now time.Time
}

// Renderer composes frames and writes them to the terminal.
type Renderer struct {
	out     io.Writer
	welcome string
	frame   []byte
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWelcome sets the banner shown when the buffer is empty.
func WithWelcome(text string) Option {
	return func(r *Renderer) {
		r.welcome = text
	}
}

// New creates a renderer writing frames to out.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{out: out}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render composes f and writes it in a single Write call. It returns the
// number of bytes written.
func (r *Renderer) Render(f Frame) (int, error) {
	return r.out.Write(r.Compose(f))
}

// Compose builds the escape sequence output for f. The returned slice is
// reused by the next call.
func (r *Renderer) Compose(f Frame) []byte {
	b := r.frame[:0]

	b = append(b, ansi.HideCursor...)
	b = append(b, ansi.CursorHome...)
	b = r.appendRows(b, f)
	b = appendStatusBar(b, f.Status)
	b = appendMessageBar(b, f.Status, f.Now)

	y, x := f.Viewport.ScreenPosition(f.CursorRow, f.CursorCol)
	b = ansi.AppendCursorPosition(b, y, x)
	b = append(b, ansi.ShowCursor...)

	r.frame = b
	return b
}

// appendRows draws the text area.
func (r *Renderer) appendRows(b []byte, f Frame) []byte {
	vp := f.Viewport
	numRows := f.Buffer.NumRows()

	for y := 0; y < vp.Rows(); y++ {
		fileRow := vp.BufferRow(y)
		switch {
		case fileRow < numRows:
			b = append(b, visibleSlice(f.Buffer.Row(fileRow).Render(), vp.ColOffset(), vp.Cols())...)
		case numRows == 0 && y == vp.Rows()/3:
			b = appendWelcome(b, r.welcome, vp.Cols())
		default:
			b = append(b, '~')
		}
		b = append(b, ansi.EraseLine...)
		b = append(b, ansi.NewLine...)
	}
	return b
}

// visibleSlice returns at most width bytes of render starting at offset.
func visibleSlice(render []byte, offset, width int) []byte {
	if offset >= len(render) {
		return nil
	}
	end := len(render)
	if end-offset > width {
		end = offset + width
	}
	return render[offset:end]
}

// appendWelcome draws the banner centered in width columns, with the
// filler "~" kept in the first column.
func appendWelcome(b []byte, welcome string, width int) []byte {
	if len(welcome) > width {
		welcome = welcome[:width]
	}
	padding := (width - len(welcome)) / 2
	if padding > 0 {
		b = append(b, '~')
		padding--
	}
	for ; padding > 0; padding-- {
		b = append(b, ' ')
	}
	return append(b, welcome...)
}

func appendStatusBar(b []byte, s *statusline.StatusLine) []byte {
	b = append(b, ansi.ReverseVideo...)
	b = append(b, s.StatusBar()...)
	b = append(b, ansi.ResetAttrs...)
	return append(b, ansi.NewLine...)
}

func appendMessageBar(b []byte, s *statusline.StatusLine, now time.Time) []byte {
	b = append(b, ansi.EraseLine...)
	return append(b, s.MessageBar(now)...)
}
