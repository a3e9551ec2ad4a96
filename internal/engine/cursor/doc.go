// Package cursor provides cursor positioning over a line buffer.
//
// A Cursor is an immutable (X, Y) pair in raw coordinates: Y is a row index
// and X a byte offset within that row. Movement methods return a new
// Cursor and always leave it satisfying
//
//	0 <= Y <= max(NumRows()-1, 0)
//	0 <= X <= RowLen(Y)
//
// Moving onto a shorter row truncates X to the row's length.
package cursor
