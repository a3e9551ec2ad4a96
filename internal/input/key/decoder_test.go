package key

import (
	"errors"
	"io"
	"testing"
)

const timeout = -1

// scriptReader returns one scripted step per Read: a byte, or a timeout
// (0, nil) for the timeout marker. After the script it returns io.EOF.
type scriptReader struct {
	steps []int
	pos   int
}

func script(steps ...int) *scriptReader {
	return &scriptReader{steps: steps}
}

func bytesOf(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int(s[i])
	}
	return out
}

func (r *scriptReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.steps) {
		return 0, io.EOF
	}
	step := r.steps[r.pos]
	r.pos++
	if step == timeout {
		return 0, nil
	}
	p[0] = byte(step)
	return 1, nil
}

func TestDecoderLiteralBytes(t *testing.T) {
	d := NewDecoder(script(bytesOf("aZ\x11\r")...))

	want := []byte{'a', 'Z', 0x11, '\r'}
	for _, b := range want {
		ev, err := d.ReadKey()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Key != KeyByte || ev.Byte != b {
			t.Errorf("expected byte %q, got %v", b, ev)
		}
	}
}

func TestDecoderEscapeSequences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Key
		consumed int
	}{
		{"up", "\x1b[A", KeyUp, 3},
		{"down", "\x1b[B", KeyDown, 3},
		{"right", "\x1b[C", KeyRight, 3},
		{"left", "\x1b[D", KeyLeft, 3},
		{"home csi", "\x1b[H", KeyHome, 3},
		{"end csi", "\x1b[F", KeyEnd, 3},
		{"home ss3", "\x1bOH", KeyHome, 3},
		{"end ss3", "\x1bOF", KeyEnd, 3},
		{"home 1", "\x1b[1~", KeyHome, 4},
		{"delete", "\x1b[3~", KeyDelete, 4},
		{"end 4", "\x1b[4~", KeyEnd, 4},
		{"page up", "\x1b[5~", KeyPageUp, 4},
		{"page down", "\x1b[6~", KeyPageDown, 4},
		{"home 7", "\x1b[7~", KeyHome, 4},
		{"end 8", "\x1b[8~", KeyEnd, 4},
		{"unknown introducer", "\x1bxy", KeyEscape, 3},
		{"escape escape", "\x1b\x1b[", KeyEscape, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Trailing byte must not be consumed.
			d := NewDecoder(script(bytesOf(tt.input + "x")...))
			ev, err := d.ReadKey()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ev.Key != tt.want {
				t.Errorf("expected %v, got %v", tt.want, ev.Key)
			}
			if d.Consumed() != tt.consumed {
				t.Errorf("expected %d bytes consumed, got %d", tt.consumed, d.Consumed())
			}

			next, err := d.ReadKey()
			if err != nil || next.Byte != 'x' {
				t.Errorf("expected trailing 'x', got %v (err %v)", next, err)
			}
		})
	}
}

func TestDecoderBareEscape(t *testing.T) {
	tests := []struct {
		name     string
		steps    []int
		consumed int
	}{
		{"timeout after esc", []int{0x1b, timeout}, 1},
		{"timeout after bracket", append(bytesOf("\x1b["), timeout), 2},
		{"timeout after digit", append(bytesOf("\x1b[5"), timeout), 3},
		{"timeout after unknown introducer", append(bytesOf("\x1bx"), timeout), 2},
		{"unknown csi final", bytesOf("\x1b[Z"), 3},
		{"digit zero", bytesOf("\x1b[0"), 3},
		{"digit nine", bytesOf("\x1b[9"), 3},
		{"unmapped digit", bytesOf("\x1b[2~"), 4},
		{"digit without tilde", bytesOf("\x1b[5A"), 4},
		{"unknown ss3", bytesOf("\x1bOA"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(script(tt.steps...))
			ev, err := d.ReadKey()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ev.Key != KeyEscape {
				t.Errorf("expected bare Escape, got %v", ev.Key)
			}
			if d.Consumed() != tt.consumed {
				t.Errorf("expected %d bytes consumed, got %d", tt.consumed, d.Consumed())
			}
		})
	}
}

func TestDecoderWaitsThroughTimeouts(t *testing.T) {
	d := NewDecoder(script(timeout, timeout, timeout, 'k'))
	ev, err := d.ReadKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Byte != 'k' {
		t.Errorf("expected 'k', got %v", ev)
	}
}

func TestDecoderPropagatesErrors(t *testing.T) {
	d := NewDecoder(script())
	if _, err := d.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}

	// An error inside a sequence is not swallowed as a bare Escape.
	d = NewDecoder(script(0x1b, '['))
	if _, err := d.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF mid-sequence, got %v", err)
	}
}
