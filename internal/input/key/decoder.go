package key

import "io"

const escByte = 0x1b

// Decoder turns a raw terminal byte stream into key events.
//
// The source must follow raw-terminal read semantics: a Read that returns
// 0 bytes and a nil error means the read timed out with no input. Any
// non-nil error is fatal and returned to the caller.
type Decoder struct {
	r   io.Reader
	buf [1]byte

	// param holds the digit of an "ESC [ <digit> ~" sequence.
	param byte

	consumed int
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Consumed returns the total number of bytes read from the source.
func (d *Decoder) Consumed() int {
	return d.consumed
}

// ReadKey blocks until one logical key has been decoded.
func (d *Decoder) ReadKey() (Event, error) {
	for {
		b, ok, err := d.readByte()
		if err != nil {
			return Event{}, err
		}
		if !ok {
			continue
		}
		if b != escByte {
			return NewByteEvent(b), nil
		}
		return d.decodeEscape()
	}
}

// state is a position in the escape-sequence state machine.
type state uint8

const (
	stateEscape   state = iota // after ESC
	stateCSI                   // after ESC [
	stateCSIParam              // after ESC [ <digit>
	stateSS3                   // after ESC O
	stateUnknown               // after ESC and an unrecognized byte
	stateDone
)

// csiFinal maps the byte after "ESC [" to a key.
var csiFinal = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// csiTilde maps the digit of "ESC [ <digit> ~" to a key.
var csiTilde = map[byte]Key{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyEnd,
}

// ss3Final maps the byte after "ESC O" to a key.
var ss3Final = map[byte]Key{
	'H': KeyHome,
	'F': KeyEnd,
}

// decodeEscape runs the state machine after an ESC byte has been read.
// A timeout in any state yields a bare Escape.
func (d *Decoder) decodeEscape() (Event, error) {
	st := stateEscape
	for st != stateDone {
		b, ok, err := d.readByte()
		if err != nil {
			return Event{}, err
		}
		if !ok {
			return NewSpecialEvent(KeyEscape), nil
		}

		var k Key
		st, k = d.step(st, b)
		if st == stateDone {
			return NewSpecialEvent(k), nil
		}
	}
	return NewSpecialEvent(KeyEscape), nil
}

// step is the transition function. Every unmatched input is an explicit
// transition to stateDone with KeyEscape.
func (d *Decoder) step(st state, b byte) (state, Key) {
	switch st {
	case stateEscape:
		switch b {
		case '[':
			return stateCSI, KeyNone
		case 'O':
			return stateSS3, KeyNone
		}
		// Unknown introducers still consume the second sequence byte.
		return stateUnknown, KeyNone
	case stateCSI:
		if b >= '1' && b <= '8' {
			d.param = b
			return stateCSIParam, KeyNone
		}
		if k, ok := csiFinal[b]; ok {
			return stateDone, k
		}
	case stateCSIParam:
		if b == '~' {
			if k, ok := csiTilde[d.param]; ok {
				return stateDone, k
			}
		}
	case stateSS3:
		if k, ok := ss3Final[b]; ok {
			return stateDone, k
		}
	}
	return stateDone, KeyEscape
}

// readByte reads a single byte. ok is false if the read timed out.
func (d *Decoder) readByte() (b byte, ok bool, err error) {
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		d.consumed++
		return d.buf[0], true, nil
	}
	if err != nil {
		return 0, false, err
	}
	return 0, false, nil
}
