package keymap

import (
	"fmt"
	"strings"

	"github.com/dshills/chip/internal/input/key"
)

// Binding is a single key-to-action mapping.
type Binding struct {
	// Keys is the key that triggers this binding, e.g. "C-q" or "PageDown".
	Keys string

	// Action is the command to execute, e.g. "cursor.down".
	Action string

	// Description is shown in help text.
	Description string
}

// ParseKeys parses a key description into the event it matches.
func ParseKeys(s string) (key.Event, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return key.Event{}, fmt.Errorf("empty key")
	case len(s) == 3 && (strings.HasPrefix(s, "C-") || strings.HasPrefix(s, "c-")):
		letter := s[2]
		if !isLetter(letter) {
			return key.Event{}, fmt.Errorf("invalid ctrl chord %q", s)
		}
		return key.NewByteEvent(key.Ctrl(letter)), nil
	case len(s) == 1:
		if s[0] < 0x20 || s[0] >= 0x7f {
			return key.Event{}, fmt.Errorf("invalid key %q", s)
		}
		return key.NewByteEvent(s[0]), nil
	}

	if k := key.KeyFromName(s); k != key.KeyNone {
		return key.NewSpecialEvent(k), nil
	}
	return key.Event{}, fmt.Errorf("unknown key %q", s)
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
