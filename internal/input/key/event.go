package key

import (
	"fmt"
	"time"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Byte is the literal byte for KeyByte events.
	Byte byte

	// Modifiers contains the modifiers derivable from Byte.
	Modifiers Modifier

	// Timestamp is when the event was decoded.
	Timestamp time.Time
}

// NewByteEvent creates a key event for a literal byte.
func NewByteEvent(b byte) Event {
	return Event{
		Key:       KeyByte,
		Byte:      b,
		Modifiers: modifiersFor(b),
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a named key.
func NewSpecialEvent(k Key) Event {
	return Event{
		Key:       k,
		Timestamp: time.Now(),
	}
}

// IsByte returns true if this is a literal byte event.
func (e Event) IsByte() bool {
	return e.Key == KeyByte
}

// IsPrintable returns true if this is a printable ASCII byte.
func (e Event) IsPrintable() bool {
	return e.IsByte() && e.Byte >= 0x20 && e.Byte < 0x7f
}

// IsCtrl returns true if this is the Ctrl chord for letter, e.g. IsCtrl('q').
func (e Event) IsCtrl(letter byte) bool {
	return e.IsByte() && e.Modifiers.HasCtrl() && e.Byte == Ctrl(letter)
}

// String returns a canonical string representation.
// Examples: "a", "C-q", "Up", "0x7f"
func (e Event) String() string {
	if !e.IsByte() {
		return e.Key.String()
	}
	switch {
	case e.Modifiers.HasCtrl():
		return "C-" + string(rune(e.Byte|0x60))
	case e.IsPrintable():
		return string(rune(e.Byte))
	default:
		return fmt.Sprintf("0x%02x", e.Byte)
	}
}
