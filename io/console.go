// Package io provides the console capability used by the MOVE machine's
// character triggers. It includes a scripted console (Tape) for tests and
// batch runs, and a host console (Terminal) that places stdin in raw,
// non-blocking mode.
package io

import (
	"time"
)

const (
	CHAR_CLEAR  = 256                   // Console code requesting a screen clear.
	CHAR_NL     = '\n'                  // Newline code.
	ESC_CLEAR   = "\x1b[1;1H\x1b[J"     // Cursor home, erase to end of screen.
	CLEAR_DELAY = 50 * time.Millisecond // Pause before a screen clear.
)

// Console defines the character I/O capability of the machine.
type Console interface {
	// Poll returns the next input byte, if one is available. It never blocks.
	Poll() (value byte, ok bool)
	// Emit writes a single character.
	Emit(r rune) error
	// Clear flushes pending output and clears the screen.
	Clear() error
}
