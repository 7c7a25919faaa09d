package io

import (
	"errors"

	"github.com/ezrec/tta/translate"
)

var f = translate.From

var (
	// Console errors
	ErrConsoleClosed       = errors.New(f("console closed"))
	ErrTerminalUnsupported = errors.New(f("terminal unsupported"))
	ErrNotTerminal         = errors.New(f("not a terminal"))
)
