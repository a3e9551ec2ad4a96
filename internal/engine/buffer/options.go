package buffer

import "github.com/dshills/chip/internal/renderer/layout"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabWidth sets the buffer's tab width.
// Non-positive widths are ignored and the default is kept.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabs = layout.NewTabExpander(width)
		}
	}
}
