package buffer

import "github.com/dshills/chip/internal/renderer/layout"

// Row is one logical line of text.
type Row struct {
	raw    []byte
	render []byte
}

// newRow copies raw and derives its render form.
func newRow(raw []byte, tabs *layout.TabExpander) *Row {
	r := &Row{raw: append([]byte(nil), raw...)}
	r.update(tabs)
	return r
}

// update recomputes the render form from the raw bytes.
func (r *Row) update(tabs *layout.TabExpander) {
	r.render = tabs.Expand(r.raw)
}

// Render returns the tab-expanded display form of the row. Callers must
// not modify the returned slice.
func (r *Row) Render() []byte {
	return r.render
}

// Len returns the raw length in bytes.
func (r *Row) Len() int {
	return len(r.raw)
}

// String returns the raw content as a string.
func (r *Row) String() string {
	return string(r.raw)
}
