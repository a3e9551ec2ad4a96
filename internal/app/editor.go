// Package app is the chip editor controller. It owns every piece of
// editor state and runs the decode, move, rescroll, redraw loop.
package app

import (
	"errors"
	"io"
	"time"

	"github.com/dshills/chip/internal/engine/buffer"
	"github.com/dshills/chip/internal/engine/cursor"
	"github.com/dshills/chip/internal/input/key"
	"github.com/dshills/chip/internal/input/keymap"
	"github.com/dshills/chip/internal/renderer"
	"github.com/dshills/chip/internal/renderer/statusline"
	"github.com/dshills/chip/internal/renderer/viewport"
)

// reservedRows are the status bar and message bar below the text area.
const reservedRows = 2

// Terminal is the raw-mode device the editor draws on. A Read that
// returns 0 bytes and a nil error means no input arrived in time.
type Terminal interface {
	io.ReadWriter
	Size() (rows, cols int, err error)
}

// Options configures an Editor.
type Options struct {
	// TabSize is the tab stop distance. Zero means the buffer default.
	TabSize int

	// Welcome is the banner shown while no file is loaded.
	Welcome string

	// HelpMessage is the status message shown at startup.
	HelpMessage string

	// MessageTimeout is how long status messages stay visible.
	MessageTimeout time.Duration

	// Keymap resolves keys to actions. Defaults to keymap.Default().
	Keymap *keymap.Keymap

	Logger *Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Editor is the single owner of all editor state. It is not safe for
// concurrent use.
type Editor struct {
	term   Terminal
	keys   *key.Decoder
	keymap *keymap.Keymap
	doc    *Document
	cursor cursor.Cursor
	rx     int

	view   *viewport.Viewport
	status *statusline.StatusLine
	render *renderer.Renderer

	tabSize int
	log     *Logger
	metrics *Metrics
	now     func() time.Time
}

// New creates an editor drawing on term, sized to its current geometry.
func New(term Terminal, opts Options) (*Editor, error) {
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Keymap == nil {
		opts.Keymap = keymap.Default()
	}

	rows, cols, err := term.Size()
	if err != nil {
		return nil, &InitError{Component: "terminal", Err: err}
	}

	e := &Editor{
		term:    term,
		keys:    key.NewDecoder(term),
		keymap:  opts.Keymap,
		view:    viewport.NewViewport(rows-reservedRows, cols),
		status:  statusline.New(),
		render:  renderer.New(term, renderer.WithWelcome(opts.Welcome)),
		tabSize: opts.TabSize,
		log:     opts.Logger.WithComponent("editor"),
		metrics: NewMetrics(opts.Now()),
		now:     opts.Now,
	}
	e.doc = NewScratchDocument(e.bufferOptions()...)
	e.status.Resize(cols)
	if opts.MessageTimeout > 0 {
		e.status.SetMessageTimeout(opts.MessageTimeout)
	}
	if opts.HelpMessage != "" {
		e.SetStatusMessage(opts.HelpMessage)
	}

	e.log.Info("terminal %dx%d, text area %dx%d", cols, rows, e.view.Cols(), e.view.Rows())
	e.log.Debug("keymap %s: %d bindings", e.keymap.Name, e.keymap.Len())
	return e, nil
}

func (e *Editor) bufferOptions() []buffer.Option {
	if e.tabSize > 0 {
		return []buffer.Option{buffer.WithTabWidth(e.tabSize)}
	}
	return nil
}

// Open loads the file at path, replacing the current document.
// Failures are reported as *IOError.
func (e *Editor) Open(path string) error {
	doc, err := LoadDocument(path, e.bufferOptions()...)
	if err != nil {
		return err
	}
	e.doc = doc
	e.cursor = cursor.Cursor{}
	e.status.SetFilename(doc.Path)
	e.log.WithField("path", path).Info("loaded %d lines", doc.Buffer.NumRows())
	return nil
}

// SetStatusMessage shows text in the message bar, replacing any earlier
// message.
func (e *Editor) SetStatusMessage(text string) {
	e.status.SetMessage(statusline.NewMessage(text, e.now()))
}

// Scroll recomputes the render column and moves the viewport just enough
// to keep the cursor visible. Calling it twice changes nothing.
func (e *Editor) Scroll() {
	buf := e.doc.Buffer
	e.rx = 0
	if e.cursor.Y < buf.NumRows() {
		e.rx = buf.CxToRx(e.cursor.Y, e.cursor.X)
	}
	e.view.Scroll(e.cursor.Y, e.rx)
}

// Refresh rescrolls and redraws the whole screen in one write.
func (e *Editor) Refresh() error {
	start := e.now()
	e.Scroll()

	buf := e.doc.Buffer
	e.status.SetPosition(e.cursor.Y + 1)
	e.status.SetTotalLines(buf.NumRows())

	n, err := e.render.Render(renderer.Frame{
		Buffer:    buf,
		Viewport:  e.view,
		Status:    e.status,
		CursorRow: e.cursor.Y,
		CursorCol: e.rx,
		Now:       start,
	})
	if err != nil {
		return err
	}
	e.metrics.RecordFrame(e.now().Sub(start), n)
	return nil
}

// ProcessKey reads one key and acts on it.
func (e *Editor) ProcessKey() error {
	before := e.keys.Consumed()
	ev, err := e.keys.ReadKey()
	e.metrics.RecordInput(e.keys.Consumed() - before)
	if err != nil {
		return err
	}
	return e.HandleKey(ev)
}

// HandleKey acts on a decoded key. Keys with no binding are ignored.
// Ctrl-Q always returns ErrQuit, whatever the keymap says.
func (e *Editor) HandleKey(ev key.Event) error {
	e.metrics.RecordKey(ev.Key.IsSpecial())

	if ev.IsCtrl('q') {
		return e.execute(keymap.ActionQuit)
	}
	b, ok := e.keymap.Lookup(ev)
	if !ok {
		e.log.Debug("unbound key %s", ev)
		return nil
	}
	e.log.Debug("key %s -> %s", ev, b.Action)
	return e.execute(b.Action)
}

// execute runs a keymap action.
func (e *Editor) execute(action string) error {
	buf := e.doc.Buffer
	switch action {
	case keymap.ActionQuit:
		return ErrQuit

	case keymap.ActionLineStart:
		e.cursor = e.cursor.LineStart()

	case keymap.ActionLineEnd:
		if e.cursor.Y < buf.NumRows() {
			e.cursor = e.cursor.LineEnd(buf)
		}

	case keymap.ActionPageUp:
		e.cursor = e.cursor.PageUp(buf, e.view.RowOffset(), e.view.Rows())
	case keymap.ActionPageDown:
		e.cursor = e.cursor.PageDown(buf, e.view.RowOffset(), e.view.Rows())

	case keymap.ActionCursorUp:
		e.cursor = e.cursor.Move(buf, cursor.Up)
	case keymap.ActionCursorDown:
		e.cursor = e.cursor.Move(buf, cursor.Down)
	case keymap.ActionCursorLeft:
		e.cursor = e.cursor.Move(buf, cursor.Left)
	case keymap.ActionCursorRight:
		e.cursor = e.cursor.Move(buf, cursor.Right)

	default:
		e.log.Warn("unknown action %q", action)
	}
	return nil
}

// Run redraws and handles keys until Ctrl-Q or an error. It returns
// ErrQuit on a normal exit.
func (e *Editor) Run() error {
	defer func() {
		e.log.Info("session ended: %s", e.metrics.Snapshot(e.now()))
	}()
	for {
		if err := e.Refresh(); err != nil {
			e.log.Error("refresh: %v", err)
			return err
		}
		if err := e.ProcessKey(); err != nil {
			if !errors.Is(err, ErrQuit) {
				e.log.Error("input: %v", err)
			}
			return err
		}
	}
}
