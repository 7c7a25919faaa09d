//go:build !(linux || darwin || freebsd)

package io

import (
	"bufio"
	"os"
	"time"
)

// Terminal is the host console. Raw, non-blocking input is not supported on
// this platform, so Open always fails.
type Terminal struct {
	Verbose    bool
	ClearDelay time.Duration

	output *bufio.Writer
}

var _ Console = (*Terminal)(nil)

// NewTerminal creates a terminal on the given files.
func NewTerminal(input *os.File, output *os.File) *Terminal {
	return &Terminal{
		ClearDelay: CLEAR_DELAY,
		output:     bufio.NewWriter(output),
	}
}

func (tm *Terminal) Open() error {
	return ErrTerminalUnsupported
}

func (tm *Terminal) Close() error {
	return tm.output.Flush()
}

func (tm *Terminal) Poll() (value byte, ok bool) {
	return
}

func (tm *Terminal) Emit(r rune) (err error) {
	_, err = tm.output.WriteRune(r)
	return
}

func (tm *Terminal) Clear() (err error) {
	err = tm.output.Flush()
	if err != nil {
		return
	}
	time.Sleep(tm.ClearDelay)
	_, err = tm.output.WriteString(ESC_CLEAR)
	if err == nil {
		err = tm.output.Flush()
	}
	return
}
