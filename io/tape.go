package io

import (
	"io"
	"unicode/utf8"
)

// Tape is a scripted console. Input bytes are returned one per Poll until
// the reader is exhausted; emitted characters are written to Output as UTF-8.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	Polls  int // Count of Poll requests.
	Clears int // Count of Clear requests.
}

var _ Console = (*Tape)(nil)

// Poll reads a single byte from the input, if any remains.
func (tc *Tape) Poll() (value byte, ok bool) {
	tc.Polls++

	if tc.Input == nil {
		return
	}

	var one [1]byte
	n, err := tc.Input.Read(one[:])
	if n != 1 || (err != nil && err != io.EOF) {
		return
	}

	value = one[0]
	ok = true
	return
}

// Emit writes the UTF-8 encoding of r to the output.
func (tc *Tape) Emit(r rune) (err error) {
	if tc.Output == nil {
		return
	}

	var buff [utf8.UTFMax]byte
	n := utf8.EncodeRune(buff[:], r)
	_, err = tc.Output.Write(buff[:n])

	return
}

// Clear records the request and writes the clear sequence to the output.
func (tc *Tape) Clear() (err error) {
	tc.Clears++

	if tc.Output == nil {
		return
	}

	_, err = io.WriteString(tc.Output, ESC_CLEAR)
	return
}
