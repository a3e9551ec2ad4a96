package buffer

import "github.com/dshills/chip/internal/renderer/layout"

// Buffer is an append-only sequence of rows.
type Buffer struct {
	rows []*Row
	tabs *layout.TabExpander
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		tabs: layout.DefaultTabExpander(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AppendRow appends a line to the end of the buffer. Trailing CR/LF bytes
// must already be stripped. The bytes are copied.
func (b *Buffer) AppendRow(raw []byte) {
	b.rows = append(b.rows, newRow(raw, b.tabs))
}

// NumRows returns the number of rows in the buffer.
func (b *Buffer) NumRows() int {
	return len(b.rows)
}

// Row returns the row at index i, or nil if i is out of range.
func (b *Buffer) Row(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

// RowLen returns the raw length of row i, or 0 if i is out of range.
// The position one past the last row is a valid cursor line with length 0.
func (b *Buffer) RowLen(i int) int {
	if r := b.Row(i); r != nil {
		return r.Len()
	}
	return 0
}

// TabWidth returns the tab width used for render derivation.
func (b *Buffer) TabWidth() int {
	return b.tabs.TabWidth()
}

// CxToRx converts a raw column in row i to its render column.
// The result is derived on every call from the current row content.
// Returns 0 if i is out of range.
func (b *Buffer) CxToRx(i, cx int) int {
	r := b.Row(i)
	if r == nil {
		return 0
	}
	return b.tabs.OffsetToColumn(r.raw, cx)
}
