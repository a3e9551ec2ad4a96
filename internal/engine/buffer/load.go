package buffer

import (
	"bufio"
	"errors"
	"io"
)

// ReadLines reads r line by line and appends each line to the buffer in
// order, with trailing CR and LF bytes stripped. A final line without a
// newline is kept; an empty trailing segment after the last newline is not
// a line. Returns the number of rows appended.
func (b *Buffer) ReadLines(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	n := 0
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			b.AppendRow(TrimEOL(line))
			n++
		}
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

// TrimEOL strips any trailing '\n' and '\r' bytes from line.
func TrimEOL(line []byte) []byte {
	end := len(line)
	for end > 0 && (line[end-1] == '\n' || line[end-1] == '\r') {
		end--
	}
	return line[:end]
}
