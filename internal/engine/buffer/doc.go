// Package buffer provides the line buffer for the editor engine.
//
// A Buffer is an ordered collection of rows, one per line of the source
// file. Each Row keeps its raw bytes, which are authoritative, and a render
// form in which tabs are expanded to the next tab stop. The render form is
// derived from the raw bytes whenever they are set and is only ever used
// for display.
//
// Rows are appended at load time and never removed or reordered, so a row
// index stays valid for the lifetime of the buffer:
//
//	buf := buffer.New(buffer.WithTabWidth(4))
//	buf.AppendRow([]byte("a\tb"))
//	buf.Row(0).Render() // "a   b"
//	buf.CxToRx(0, 2)    // 4
//
// Text is treated as single-byte-per-column ASCII; no UTF-8 decoding is
// performed.
//
// Buffer is not safe for concurrent use. It is owned by the single editor
// control loop.
package buffer
