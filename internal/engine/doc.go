// Package engine holds chip's text model.
//
//   - buffer: rows of raw text with their tab-expanded render form
//   - cursor: cursor positions and single-step movement over a buffer
package engine
