// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tta/cpu"
)

// WATCH_TICKS is the predeclared name of the tick counter in a watch.
const WATCH_TICKS = "TICKS"

// Watch is a compiled starlark predicate, evaluated after every tick.
// Register names (PC, ADD_A, R17, ...) are predeclared as their current
// values, along with TICKS and the emulator defines.
type Watch struct {
	Expr string

	defines starlark.StringDict
	prog    *starlark.Program
}

// NewWatch compiles a watch expression. Defines are predeclared as integer
// constants; non-integer defines are ignored.
func NewWatch(expr string, defines map[string]string) (watch *Watch, err error) {
	watch = &Watch{
		Expr:    expr,
		defines: starlark.StringDict{},
	}

	for key, str := range defines {
		value, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			continue
		}
		watch.defines[key] = starlark.MakeInt64(value)
	}

	predeclared := func(name string) bool {
		if name == WATCH_TICKS || watch.defines.Has(name) {
			return true
		}
		for index := range cpu.REGISTER_COUNT {
			if cpu.RegisterName(index) == name {
				return true
			}
		}
		return false
	}

	opts := syntax.FileOptions{}
	src := "rc = (" + expr + ")\n"
	_, watch.prog, err = starlark.SourceProgramOptions(&opts, "watch", src, predeclared)
	if err != nil {
		err = ErrWatch{Expr: expr, Err: err}
		watch = nil
		return
	}

	return
}

// Eval evaluates the watch against the register file.
func (watch *Watch) Eval(regs *cpu.Registers, ticks int) (ok bool, err error) {
	pred := starlark.StringDict{}
	for key, value := range watch.defines {
		pred[key] = value
	}
	for index, value := range regs.Value {
		pred[cpu.RegisterName(index)] = starlark.MakeInt64(value)
	}
	pred[WATCH_TICKS] = starlark.MakeInt(ticks)

	thread := &starlark.Thread{Name: "watch"}
	dict, err := watch.prog.Init(thread, pred)
	if err != nil {
		err = ErrWatch{Expr: watch.Expr, Err: err}
		return
	}

	st_rc, ok := dict["rc"].(starlark.Bool)
	if !ok {
		err = ErrWatch{Expr: watch.Expr}
		return
	}

	ok = bool(st_rc)
	return
}
