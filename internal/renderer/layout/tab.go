// Package layout provides column layout helpers for the renderer.
//
// All text is treated as single-byte-per-column ASCII: a byte occupies one
// screen column, except a tab, which advances to the next tab stop.
package layout

// DefaultTabWidth is the tab stop interval used when none is configured.
const DefaultTabWidth = 4

// TabExpander provides tab expansion utilities.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
func NewTabExpander(tabWidth int) *TabExpander {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return &TabExpander{tabWidth: tabWidth}
}

// DefaultTabExpander returns a tab expander with the default tab width of 4.
func DefaultTabExpander() *TabExpander {
	return NewTabExpander(DefaultTabWidth)
}

// TabWidth returns the current tab width.
func (t *TabExpander) TabWidth() int {
	return t.tabWidth
}

// NextTabStop returns the next tab stop column strictly after col.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.tabWidth - col%t.tabWidth
}

// Expand returns raw with every tab replaced by spaces up to the next
// tab stop. The result is always a fresh slice, never aliasing raw.
func (t *TabExpander) Expand(raw []byte) []byte {
	tabs := 0
	for _, b := range raw {
		if b == '\t' {
			tabs++
		}
	}

	out := make([]byte, 0, len(raw)+tabs*(t.tabWidth-1))
	for _, b := range raw {
		if b != '\t' {
			out = append(out, b)
			continue
		}
		out = append(out, ' ')
		for len(out)%t.tabWidth != 0 {
			out = append(out, ' ')
		}
	}
	return out
}

// OffsetToColumn converts a byte offset in raw to a render column.
// Offsets past the end of raw are clamped to len(raw).
func (t *TabExpander) OffsetToColumn(raw []byte, offset int) int {
	if offset > len(raw) {
		offset = len(raw)
	}
	col := 0
	for i := 0; i < offset; i++ {
		if raw[i] == '\t' {
			col = t.NextTabStop(col)
		} else {
			col++
		}
	}
	return col
}
