// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"unicode/utf8"

	"github.com/ezrec/tta/io"
	"github.com/ezrec/tta/memory"
)

// Phase is the register access that fired a trigger.
type Phase int

const (
	PHASE_GET = Phase(0) // Fired before a register read.
	PHASE_SET = Phase(1) // Fired after a register write.
)

func (phase Phase) String() string {
	switch phase {
	case PHASE_GET:
		return "get"
	case PHASE_SET:
		return "set"
	default:
		return f("phase(%d)", int(phase))
	}
}

// Op is a trigger operation.
type Op int

const (
	OP_ADD = Op(iota) // ADD_R = ADD_A + ADD_B
	OP_SUB            // SUB_R = SUB_A - SUB_B
	OP_MUL            // MUL_R = MUL_A * MUL_B
	OP_DIV            // DIV_Q, DIV_M = DIV_N / DIV_D, DIV_N % DIV_D
	OP_LT             // LT_R = LT_A < LT_B
	OP_CIO            // Console emit on set, console poll on get.
	OP_SIO            // Secondary emit on set, NL on get.
	OP_SEL            // SEL_R = SEL_C == 0 ? SEL_Z : SEL_NZ
	OP_MEM            // MEM_DATA store on set, load on get.
	OP_COUNT
)

var _op_names = [OP_COUNT]string{
	OP_ADD: "add",
	OP_SUB: "sub",
	OP_MUL: "mul",
	OP_DIV: "div",
	OP_LT:  "lt",
	OP_CIO: "cio",
	OP_SIO: "sio",
	OP_SEL: "sel",
	OP_MEM: "mem",
}

func (op Op) String() string {
	if op < 0 || op >= OP_COUNT {
		return f("op(%d)", int(op))
	}
	return _op_names[op]
}

// Fire performs the operation. Triggers read their operands from, and write
// their results to, the register buffer directly; they never run other
// triggers.
func (op Op) Fire(phase Phase, regs *[REGISTER_COUNT]int64, mem *memory.Memory) (err error) {
	switch op {
	case OP_ADD:
		regs[REG_ADD_R] = regs[REG_ADD_A] + regs[REG_ADD_B]
	case OP_SUB:
		regs[REG_SUB_R] = regs[REG_SUB_A] - regs[REG_SUB_B]
	case OP_MUL:
		regs[REG_MUL_R] = regs[REG_MUL_A] * regs[REG_MUL_B]
	case OP_DIV:
		n, d := regs[REG_DIV_N], regs[REG_DIV_D]
		if d == 0 {
			regs[REG_DIV_Q] = n
			regs[REG_DIV_M] = 0
		} else {
			regs[REG_DIV_Q] = n / d
			regs[REG_DIV_M] = n % d
		}
	case OP_LT:
		regs[REG_LT_R] = 0
		if regs[REG_LT_A] < regs[REG_LT_B] {
			regs[REG_LT_R] = 1
		}
	case OP_CIO:
		if phase == PHASE_SET {
			code := regs[REG_CIO]
			if code == io.CHAR_CLEAR {
				if mem.Console != nil {
					err = mem.Console.Clear()
				}
				return
			}
			err = emit(mem, code)
		} else {
			regs[REG_CIO] = -1
			if mem.Console != nil {
				value, ok := mem.Console.Poll()
				if ok {
					regs[REG_CIO] = int64(value)
				}
			}
		}
	case OP_SIO:
		if phase == PHASE_SET {
			err = emit(mem, regs[REG_SIO])
		} else {
			regs[REG_NL] = io.CHAR_NL
		}
	case OP_SEL:
		if regs[REG_SEL_C] == 0 {
			regs[REG_SEL_R] = regs[REG_SEL_Z]
		} else {
			regs[REG_SEL_R] = regs[REG_SEL_NZ]
		}
	case OP_MEM:
		addr := regs[REG_MEM_ADDR]
		if addr < 0 || addr > int64(mem.Size()) {
			err = memory.ErrAddressRange{Addr: addr, Size: mem.Size() / 2}
			return
		}
		if phase == PHASE_SET {
			err = mem.StoreDouble(int(addr), uint64(regs[REG_MEM_DATA]))
		} else {
			var value uint64
			value, err = mem.LoadDouble(int(addr))
			if err != nil {
				return
			}
			regs[REG_MEM_DATA] = int64(value)
		}
	default:
		err = ErrOpInvalid
	}

	return
}

// emit sends a character code to the console.
func emit(mem *memory.Memory, code int64) (err error) {
	if code < 0 || code > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
		err = ErrChar(code)
		return
	}

	if mem.Console == nil {
		return
	}

	err = mem.Console.Emit(rune(code))
	return
}

// Wiring binds an op to the registers that trigger it.
type Wiring struct {
	Op  Op
	Set []int // Registers whose writes fire the op.
	Get []int // Registers whose reads fire the op.
}

// WIRING is the trigger catalogue of the machine, in registration order.
var WIRING = []Wiring{
	{Op: OP_ADD, Set: []int{REG_ADD_A, REG_ADD_B}, Get: []int{REG_ADD_R}},
	{Op: OP_SUB, Set: []int{REG_SUB_A, REG_SUB_B}, Get: []int{REG_SUB_R}},
	{Op: OP_MUL, Set: []int{REG_MUL_A, REG_MUL_B}, Get: []int{REG_MUL_R}},
	{Op: OP_DIV, Set: []int{REG_DIV_N, REG_DIV_D}, Get: []int{REG_DIV_Q, REG_DIV_M}},
	{Op: OP_LT, Set: []int{REG_LT_A, REG_LT_B}, Get: []int{REG_LT_R}},
	{Op: OP_CIO, Set: []int{REG_CIO}, Get: []int{REG_CIO}},
	{Op: OP_SIO, Set: []int{REG_SIO}, Get: []int{REG_NL}},
	{Op: OP_SEL, Set: []int{REG_SEL_C, REG_SEL_Z, REG_SEL_NZ}, Get: []int{REG_SEL_R}},
	{Op: OP_MEM, Set: []int{REG_MEM_DATA, REG_MEM_ADDR}, Get: []int{REG_MEM_DATA}},
}
