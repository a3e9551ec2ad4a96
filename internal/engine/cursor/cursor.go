package cursor

import "fmt"

// Lines is the read-only view of a buffer that cursor movement needs.
type Lines interface {
	NumRows() int
	RowLen(i int) int
}

// Direction is a single-step cursor movement.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Cursor represents a position in the buffer.
// Cursor is an immutable value type.
type Cursor struct {
	X int
	Y int
}

// New creates a cursor at (x, y) without clamping.
func New(x, y int) Cursor {
	return Cursor{X: x, Y: y}
}

// String returns "(x,y)".
func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// lastRow returns the highest valid cursor row.
func lastRow(lines Lines) int {
	if n := lines.NumRows(); n > 0 {
		return n - 1
	}
	return 0
}

// Clamp returns c moved into the valid range for lines.
func (c Cursor) Clamp(lines Lines) Cursor {
	if c.Y < 0 {
		c.Y = 0
	}
	if last := lastRow(lines); c.Y > last {
		c.Y = last
	}
	if c.X < 0 {
		c.X = 0
	}
	if n := lines.RowLen(c.Y); c.X > n {
		c.X = n
	}
	return c
}

// Move returns the cursor moved one step in dir.
// Left at column 0 wraps to the end of the previous row; Right at the end
// of a row wraps to column 0 of the next row. Up and Down stop at the
// first and last rows.
func (c Cursor) Move(lines Lines, dir Direction) Cursor {
	switch dir {
	case Up:
		if c.Y > 0 {
			c.Y--
		}
	case Down:
		if c.Y < lastRow(lines) {
			c.Y++
		}
	case Left:
		if c.X > 0 {
			c.X--
		} else if c.Y > 0 {
			c.Y--
			c.X = lines.RowLen(c.Y)
		}
	case Right:
		if c.X < lines.RowLen(c.Y) {
			c.X++
		} else if c.Y < lastRow(lines) {
			c.Y++
			c.X = 0
		}
	}
	return c.Clamp(lines)
}

// Repeat applies Move n times.
func (c Cursor) Repeat(lines Lines, dir Direction, n int) Cursor {
	for i := 0; i < n; i++ {
		c = c.Move(lines, dir)
	}
	return c
}

// LineStart returns the cursor at column 0 of its row.
func (c Cursor) LineStart() Cursor {
	c.X = 0
	return c
}

// LineEnd returns the cursor at the end of its row.
func (c Cursor) LineEnd(lines Lines) Cursor {
	c.X = lines.RowLen(c.Y)
	return c
}

// PageUp moves to the top row of the window starting at top, then replays
// height single-step Up moves.
func (c Cursor) PageUp(lines Lines, top, height int) Cursor {
	c.Y = top
	return c.Clamp(lines).Repeat(lines, Up, height)
}

// PageDown moves to the bottom row of the window starting at top, clamped
// to the last row, then replays height single-step Down moves.
func (c Cursor) PageDown(lines Lines, top, height int) Cursor {
	c.Y = top + height - 1
	return c.Clamp(lines).Repeat(lines, Down, height)
}
