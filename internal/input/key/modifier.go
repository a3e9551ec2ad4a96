package key

// Modifier represents keyboard modifier keys.
// A raw terminal only reveals Ctrl, by folding the letter into 0x01-0x1a.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// String returns a short form such as "C" or "".
func (m Modifier) String() string {
	if m.HasCtrl() {
		return "C"
	}
	return ""
}

// Ctrl returns the byte a terminal sends for Ctrl held with letter.
func Ctrl(letter byte) byte {
	return letter & 0x1f
}

// modifiersFor derives modifiers from a literal byte.
// Tab, CR and ESC share codes with Ctrl-I, Ctrl-M and Ctrl-[ and are
// reported unmodified.
func modifiersFor(b byte) Modifier {
	switch {
	case b == '\t', b == '\r', b == '\n', b == escByte:
		return ModNone
	case b >= 0x01 && b <= 0x1a:
		return ModCtrl
	default:
		return ModNone
	}
}
