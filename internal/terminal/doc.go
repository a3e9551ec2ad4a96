// Package terminal provides raw-mode control of the controlling terminal.
//
// A Session captures the terminal attributes on Enter, switches the device
// to raw mode, and restores the captured attributes on Exit. In raw mode
// input is delivered byte by byte with no echo, no line editing, no signal
// generation and no CR/NL translation, and output is not post-processed.
//
// Reads use a short timeout instead of blocking: a Read that sees no input
// within about 100ms returns 0 bytes and a nil error. Callers such as the
// key decoder rely on this to tell a lone ESC from the start of an escape
// sequence.
//
// Every failed attribute call, read or write is reported as an *Error
// naming the failing operation.
package terminal
