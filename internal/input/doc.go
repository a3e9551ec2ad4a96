// Package input turns terminal bytes into editor actions.
//
//   - key: key events and the escape-sequence decoder
//   - keymap: bindings from keys to named actions
package input
