package layout

import (
	"bytes"
	"testing"
)

func TestNewTabExpander(t *testing.T) {
	te := NewTabExpander(4)
	if te.TabWidth() != 4 {
		t.Errorf("expected tab width 4, got %d", te.TabWidth())
	}

	// Invalid width defaults to 4
	te = NewTabExpander(0)
	if te.TabWidth() != 4 {
		t.Errorf("expected default tab width 4, got %d", te.TabWidth())
	}

	te = NewTabExpander(-1)
	if te.TabWidth() != 4 {
		t.Errorf("expected default tab width 4 for negative, got %d", te.TabWidth())
	}
}

func TestNextTabStop(t *testing.T) {
	te := NewTabExpander(4)

	tests := []struct {
		col      int
		expected int
	}{
		{0, 4},
		{1, 4},
		{3, 4},
		{4, 8},
		{5, 8},
		{7, 8},
		{8, 12},
	}

	for _, tt := range tests {
		got := te.NextTabStop(tt.col)
		if got != tt.expected {
			t.Errorf("NextTabStop(%d): expected %d, got %d", tt.col, tt.expected, got)
		}
	}
}

func TestExpand(t *testing.T) {
	te := NewTabExpander(4)

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"\t", "    "},
		{"\t\t", "        "},
		{"a\t", "a   "},
		{"ab\t", "ab  "},
		{"abc\t", "abc "},
		{"abcd\t", "abcd    "},
		{"a\tb", "a   b"},
	}

	for _, tt := range tests {
		got := te.Expand([]byte(tt.input))
		if string(got) != tt.expected {
			t.Errorf("Expand(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
		if len(got) < len(tt.input) {
			t.Errorf("Expand(%q): render shorter than raw", tt.input)
		}
	}
}

func TestExpandMatchesColumnRule(t *testing.T) {
	te := NewTabExpander(4)
	raw := []byte("x\ty\t\tzz\tw")

	// Render column after each byte: next multiple of 4 for a tab, +1 otherwise.
	col := 0
	for _, b := range raw {
		if b == '\t' {
			col = (col/4 + 1) * 4
		} else {
			col++
		}
	}

	render := te.Expand(raw)
	if len(render) != col {
		t.Errorf("expected render length %d, got %d", col, len(render))
	}
	if !bytes.Equal(render, te.Expand(raw)) {
		t.Error("Expand should be deterministic")
	}
}

func TestExpandDoesNotAlias(t *testing.T) {
	te := DefaultTabExpander()
	raw := []byte("abc")
	out := te.Expand(raw)
	out[0] = 'z'
	if raw[0] != 'a' {
		t.Error("Expand result aliases its input")
	}
}

func TestOffsetToColumn(t *testing.T) {
	te := NewTabExpander(4)

	tests := []struct {
		input    string
		offset   int
		expected int
	}{
		{"hello", 0, 0},
		{"hello", 2, 2},
		{"hello", 5, 5},
		{"hello", 9, 5}, // Clamped
		{"\thello", 0, 0},
		{"\thello", 1, 4},
		{"\thello", 2, 5},
		{"a\tb", 1, 1},
		{"a\tb", 2, 4},
		{"a\tb", 3, 5},
	}

	for _, tt := range tests {
		got := te.OffsetToColumn([]byte(tt.input), tt.offset)
		if got != tt.expected {
			t.Errorf("OffsetToColumn(%q, %d): expected %d, got %d",
				tt.input, tt.offset, tt.expected, got)
		}
	}
}

func TestExpandWithDifferentWidths(t *testing.T) {
	for _, width := range []int{2, 4, 8} {
		te := NewTabExpander(width)
		if got := len(te.Expand([]byte("\t"))); got != width {
			t.Errorf("width %d: single tab should expand to %d, got %d", width, width, got)
		}
		if got := te.OffsetToColumn([]byte("\t"), 1); got != width {
			t.Errorf("width %d: column after tab = %d, want %d", width, got, width)
		}
	}
}
