package webvtt

import (
	"bufio"
	"io"
)

// Reader supplies the parser with one character at a time. GetChar
// returns io.EOF when the stream is exhausted; any other error is
// passed through to the caller untouched.
//
// This is the parser's only I/O dependency. The parser performs no
// buffering of its own beyond a single byte of pushback, so
// implementations are free to buffer internally.
type Reader interface {
	GetChar() (byte, error)
}

type streamReader struct {
	br *bufio.Reader
}

// NewReader adapts any io.Reader into a Reader.
func NewReader(r io.Reader) Reader {
	return &streamReader{br: bufio.NewReader(r)}
}

func (r *streamReader) GetChar() (byte, error) {
	return r.br.ReadByte()
}
