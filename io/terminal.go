// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

//go:build linux || darwin || freebsd

package io

import (
	"bufio"
	"os"
	"time"

	"github.com/pkg/term/termios"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is the host console. While open, the input is in raw,
// non-blocking mode, and output is buffered until input is polled,
// the screen is cleared, or the terminal is closed.
type Terminal struct {
	Verbose    bool
	ClearDelay time.Duration // Pause before a screen clear.

	input  *os.File
	output *bufio.Writer
	state  *term.State

	nonblock bool
}

var _ Console = (*Terminal)(nil)

// NewTerminal creates a terminal on the given files.
func NewTerminal(input *os.File, output *os.File) (tm *Terminal) {
	tm = &Terminal{
		ClearDelay: CLEAR_DELAY,
		input:      input,
		output:     bufio.NewWriter(output),
	}

	return
}

func (tm *Terminal) fd() int {
	return int(tm.input.Fd())
}

// Open places the input into raw, non-blocking mode.
func (tm *Terminal) Open() (err error) {
	if !term.IsTerminal(tm.fd()) {
		err = ErrNotTerminal
		return
	}

	tm.state, err = term.MakeRaw(tm.fd())
	if err != nil {
		return
	}

	err = unix.SetNonblock(tm.fd(), true)
	if err != nil {
		_ = term.Restore(tm.fd(), tm.state)
		tm.state = nil
		return
	}
	tm.nonblock = true

	if tm.Verbose {
		log.Debugf("terminal: raw mode")
	}

	return
}

// Close flushes output, discards unread input, and restores the terminal.
func (tm *Terminal) Close() (err error) {
	err = tm.output.Flush()

	if tm.nonblock {
		_ = termios.Tcflush(tm.input.Fd(), termios.TCIFLUSH)
		_ = unix.SetNonblock(tm.fd(), false)
		tm.nonblock = false
	}

	if tm.state != nil {
		rerr := term.Restore(tm.fd(), tm.state)
		if err == nil {
			err = rerr
		}
		tm.state = nil
		if tm.Verbose {
			log.Debugf("terminal: restored")
		}
	}

	return
}

// Poll reads one byte without blocking. A zero byte is treated as no input.
func (tm *Terminal) Poll() (value byte, ok bool) {
	_ = tm.output.Flush()

	var one [1]byte
	n, err := unix.Read(tm.fd(), one[:])
	if err != nil || n != 1 || one[0] == 0 {
		return
	}

	value = one[0]
	ok = true
	return
}

// Emit writes a character. In raw mode a newline also returns the carriage.
func (tm *Terminal) Emit(r rune) (err error) {
	if r == CHAR_NL && tm.state != nil {
		_, err = tm.output.WriteString("\r\n")
		return
	}

	_, err = tm.output.WriteRune(r)
	return
}

// Clear flushes output, pauses for ClearDelay, and clears the screen.
func (tm *Terminal) Clear() (err error) {
	err = tm.output.Flush()
	if err != nil {
		return
	}

	time.Sleep(tm.ClearDelay)

	_, err = tm.output.WriteString(ESC_CLEAR)
	if err != nil {
		return
	}

	err = tm.output.Flush()
	return
}
