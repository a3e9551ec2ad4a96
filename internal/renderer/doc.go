// Package renderer provides the display layer for the chip editor.
//
// The renderer composes one frame per refresh into a single byte slice of
// ANSI escape sequences and writes it with one Write call, so the terminal
// never shows a half-drawn screen. A frame is laid out as:
//
//	hide cursor, cursor home
//	n_rows text rows       each: content, erase-to-EOL, CRLF
//	status bar             reverse video, exactly n_cols wide, CRLF
//	message bar            erase-to-EOL, message if not expired
//	cursor position, show cursor
//
// Text rows show the render form of buffer rows starting at the viewport's
// column offset. Rows past the end of the buffer show "~"; an empty buffer
// shows a centered welcome banner a third of the way down.
//
// Subpackages:
//   - layout: tab expansion and column conversion
//   - viewport: scroll offsets that keep the cursor visible
//   - statusline: status bar and message bar text
package renderer
