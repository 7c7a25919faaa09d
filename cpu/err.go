package cpu

import (
	"errors"

	"github.com/ezrec/tta/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrCharInvalid     = errors.New(f("character invalid"))
	ErrOpInvalid       = errors.New(f("trigger invalid"))
)

// ErrRegister is an out of range register index.
type ErrRegister int

func (er ErrRegister) Error() string {
	return f("register %d invalid", int(er))
}

func (er ErrRegister) Unwrap() error {
	return ErrRegisterInvalid
}

// ErrChar is a console code that is not a valid character.
type ErrChar int64

func (ec ErrChar) Error() string {
	return f("character code %d invalid", int64(ec))
}

func (ec ErrChar) Unwrap() error {
	return ErrCharInvalid
}

// ErrTick indicates the instruction that faulted.
type ErrTick struct {
	Pc   int64
	Code Code
	Err  error
}

func (err *ErrTick) Error() string {
	return f("pc 0x%06x %v: %v", err.Pc, err.Code.String(), err.Err)
}

func (err *ErrTick) Unwrap() error {
	return err.Err
}
