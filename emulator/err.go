package emulator

import (
	"errors"

	"github.com/ezrec/tta/translate"
)

var f = translate.From

var (
	// Emulator errors
	ErrSelfTest        = errors.New(f("self test failed"))
	ErrWatchExpression = errors.New(f("watch expression invalid"))
)

// ErrRuntime indicates the tick of a runtime error.
type ErrRuntime struct {
	Tick int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("tick %d %v", err.Tick, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrWatch indicates an invalid watch expression.
type ErrWatch struct {
	Expr string
	Err  error
}

func (err ErrWatch) Error() string {
	if err.Err == nil {
		return f("watch '%v' is not a bool", err.Expr)
	}
	return f("watch '%v' %v", err.Expr, err.Err)
}

func (err ErrWatch) Unwrap() []error {
	if err.Err == nil {
		return []error{ErrWatchExpression}
	}
	return []error{ErrWatchExpression, err.Err}
}
