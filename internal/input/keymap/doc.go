// Package keymap binds decoded keys to named editor actions.
//
// Keys are written the way key.Event.String prints them:
//
//	"C-q"       Ctrl chord
//	"Up"        named key (case-insensitive, see key.KeyFromName)
//	"x"         single printable byte
//
// Actions are dotted names such as "cursor.up" or "editor.quit". The
// editor decides what each action does; a keymap only resolves names.
package keymap
