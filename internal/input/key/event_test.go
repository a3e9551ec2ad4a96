package key

import (
	"testing"
)

func TestNewByteEvent(t *testing.T) {
	e := NewByteEvent('a')
	if e.Key != KeyByte {
		t.Errorf("NewByteEvent key = %v, want KeyByte", e.Key)
	}
	if e.Byte != 'a' {
		t.Errorf("NewByteEvent byte = %q, want 'a'", e.Byte)
	}
	if e.Modifiers != ModNone {
		t.Errorf("NewByteEvent modifiers = %v, want ModNone", e.Modifiers)
	}
	if e.Timestamp.IsZero() {
		t.Error("NewByteEvent should set a timestamp")
	}
}

func TestEventIsCtrl(t *testing.T) {
	tests := []struct {
		event  Event
		letter byte
		want   bool
	}{
		{NewByteEvent(0x11), 'q', true},
		{NewByteEvent(0x11), 'Q', true},
		{NewByteEvent('q'), 'q', false},
		{NewByteEvent(0x13), 'q', false},
		{NewByteEvent('\t'), 'i', false}, // Tab is reported as Tab
		{NewSpecialEvent(KeyUp), 'q', false},
	}

	for _, tt := range tests {
		if got := tt.event.IsCtrl(tt.letter); got != tt.want {
			t.Errorf("%v.IsCtrl(%q) = %v, want %v", tt.event, tt.letter, got, tt.want)
		}
	}
}

func TestEventIsPrintable(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewByteEvent('a'), true},
		{NewByteEvent(' '), true},
		{NewByteEvent('~'), true},
		{NewByteEvent(0x7f), false},
		{NewByteEvent('\n'), false},
		{NewSpecialEvent(KeyEscape), false},
	}

	for _, tt := range tests {
		if got := tt.event.IsPrintable(); got != tt.want {
			t.Errorf("%v.IsPrintable() = %v, want %v", tt.event, got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewByteEvent('a'), "a"},
		{NewByteEvent(0x11), "C-q"},
		{NewByteEvent(0x7f), "0x7f"},
		{NewByteEvent('\r'), "0x0d"},
		{NewSpecialEvent(KeyPageDown), "PageDown"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKeyClassification(t *testing.T) {
	if KeyByte.IsSpecial() || !KeyEscape.IsSpecial() {
		t.Error("IsSpecial misclassified")
	}
}

func TestKeyFromName(t *testing.T) {
	tests := map[string]Key{
		"Up":      KeyUp,
		" pgdn ":  KeyPageDown,
		"ESC":     KeyEscape,
		"unknown": KeyNone,
	}
	for name, want := range tests {
		if got := KeyFromName(name); got != want {
			t.Errorf("KeyFromName(%q) = %v, want %v", name, got, want)
		}
	}
}
