// Package viewport provides viewport management for the renderer.
package viewport

// Viewport represents the visible portion of the buffer.
// Offsets are buffer coordinates of the top-left visible cell; row offsets
// are row indices and column offsets are render columns.
type Viewport struct {
	// Position in buffer (first visible row and render column)
	rowOffset int
	colOffset int

	// Size of the text area in screen cells
	rows int
	cols int
}

// NewViewport creates a viewport with the given text-area size.
// Rows and cols are clamped to a minimum of 1.
func NewViewport(rows, cols int) *Viewport {
	v := &Viewport{}
	v.Resize(rows, cols)
	return v
}

// Rows returns the number of visible text rows.
func (v *Viewport) Rows() int {
	return v.rows
}

// Cols returns the number of visible text columns.
func (v *Viewport) Cols() int {
	return v.cols
}

// RowOffset returns the first visible buffer row.
func (v *Viewport) RowOffset() int {
	return v.rowOffset
}

// ColOffset returns the first visible render column.
func (v *Viewport) ColOffset() int {
	return v.colOffset
}

// Resize updates the viewport size.
// Rows and cols are clamped to a minimum of 1 to prevent underflow.
func (v *Viewport) Resize(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	v.rows = rows
	v.cols = cols
}

// Scroll adjusts the offsets so that (row, rx) is inside the window.
// It moves the window only as far as needed, so calling it twice with the
// same arguments leaves the offsets unchanged.
func (v *Viewport) Scroll(row, rx int) {
	if row < v.rowOffset {
		v.rowOffset = row
	}
	if row >= v.rowOffset+v.rows {
		v.rowOffset = row - v.rows + 1
	}
	if rx < v.colOffset {
		v.colOffset = rx
	}
	if rx >= v.colOffset+v.cols {
		v.colOffset = rx - v.cols + 1
	}
}

// BufferRow returns the buffer row displayed on screen row y.
func (v *Viewport) BufferRow(y int) int {
	return v.rowOffset + y
}

// ScreenPosition converts a buffer position to a 0-based screen cell.
func (v *Viewport) ScreenPosition(row, rx int) (y, x int) {
	return row - v.rowOffset, rx - v.colOffset
}
