// Package key provides key event types and the escape-sequence decoder
// for terminal input.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (a literal byte or a named navigation key)
//   - Modifier: Modifier state derived from the byte (only Ctrl is detectable)
//   - Event: A single decoded key press with a timestamp
//   - Decoder: Turns a raw terminal byte stream into Events
//
// # Escape Sequences
//
// Terminals send navigation keys as multi-byte sequences with no length
// prefix. The Decoder classifies them with a fixed lookahead of at most
// three bytes after ESC and falls back to a bare Escape event whenever the
// bytes do not match a known sequence or the next byte does not arrive
// within the read timeout:
//
//	ESC [ A..D        arrows
//	ESC [ H / ESC [ F Home / End
//	ESC O H / ESC O F Home / End
//	ESC [ 1..8 ~      Home, Delete, End, PageUp, PageDown
package key
