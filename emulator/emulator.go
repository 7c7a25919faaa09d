// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/tta/cpu"
	"github.com/ezrec/tta/internal"
	"github.com/ezrec/tta/io"
	"github.com/ezrec/tta/memory"
)

// StopReason is why a run ended.
type StopReason int

const (
	STOP_NONE  = StopReason(iota) // Still running.
	STOP_HALT                     // Program counter left memory.
	STOP_WATCH                    // Watch expression was true.
	STOP_LIMIT                    // Tick limit reached.
)

func (sr StopReason) String() string {
	switch sr {
	case STOP_NONE:
		return "none"
	case STOP_HALT:
		return "halt"
	case STOP_WATCH:
		return "watch"
	case STOP_LIMIT:
		return "limit"
	default:
		return f("stop(%d)", int(sr))
	}
}

// Result of a run.
type Result struct {
	Ticks  int        // Instructions executed.
	Pc     int64      // Final program counter.
	Reason StopReason // Why the run ended.
}

// String returns the stop report.
func (res Result) String() string {
	return fmt.Sprintf(" ... stopped: tick=%d, addr=%d", res.Ticks, res.Pc)
}

// Emulator state. CPU + memory + console.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Console io.Console // Console attached to the memory.
	Watch   *Watch     // If set, stops a run when true.

	stopped StopReason
}

// NewEmulator creates a new emulator with size words of memory.
func NewEmulator(size uint, console io.Console) (emu *Emulator) {
	mem := memory.New(size)
	mem.Console = console

	emu = &Emulator{
		Cpu:     cpu.NewCpu(mem),
		Console: console,
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"MEMORY_SIZE": strconv.Itoa(emu.Memory.Size()),
		"CHAR_CLEAR":  strconv.Itoa(io.CHAR_CLEAR),
		"IMMEDIATE":   fmt.Sprintf("0x%x", cpu.IMMEDIATE_FLAG),
	}

	return internal.IterSeq2Concat(maps.All(defines), cpu.Defines())
}

// SetWatch compiles and installs a watch expression.
// An empty expression removes the watch.
func (emu *Emulator) SetWatch(expr string) (err error) {
	if len(expr) == 0 {
		emu.Watch = nil
		return
	}

	// Register values replace the register index defines during Eval.
	defines := maps.Collect(emu.Defines())

	watch, err := NewWatch(expr, defines)
	if err != nil {
		return
	}

	emu.Watch = watch
	return
}

// Load a program image at the base word address.
func (emu *Emulator) Load(image []byte, base int) (err error) {
	emu.Memory.Verbose = emu.Verbose

	words, err := emu.Memory.LoadProgram(image, base)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Debugf("emulator: loaded %d words at %d", words, base)
		first64, _ := emu.Memory.LoadDouble(0)
		first32, _ := emu.Memory.LoadWord(0)
		log.Debugf("emulator: first double %d, first word %d", first64, first32)
	}

	return
}

// Reset the register file, tick counter, and stop state.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.stopped = STOP_NONE
}

// selfTest is a register write, register read, expected value check.
type selfTest struct {
	name  string
	set   [][2]int64
	get   int
	value int64
}

var _self_tests = []selfTest{
	{"sel", [][2]int64{{cpu.REG_SEL_C, 2}, {cpu.REG_SEL_Z, 5}, {cpu.REG_SEL_NZ, 6}}, cpu.REG_SEL_R, 6},
	{"add", [][2]int64{{cpu.REG_ADD_A, 3}, {cpu.REG_ADD_B, 4}}, cpu.REG_ADD_R, 7},
	{"div", [][2]int64{{cpu.REG_DIV_N, 7}, {cpu.REG_DIV_D, 0}}, cpu.REG_DIV_Q, 7},
	{"lt", [][2]int64{{cpu.REG_LT_A, -1}, {cpu.REG_LT_B, 0}}, cpu.REG_LT_R, 1},
}

// SelfTest checks the trigger wiring, then resets the emulator.
// Console and memory are not used.
func (emu *Emulator) SelfTest() (err error) {
	defer emu.Reset()

	regs := emu.Cpu.Registers
	for _, test := range _self_tests {
		emu.Reset()
		for _, set := range test.set {
			err = regs.Set(int(set[0]), set[1], emu.Memory)
			if err != nil {
				return
			}
		}

		var value int64
		value, err = regs.Get(test.get, emu.Memory)
		if err != nil {
			return
		}

		if value != test.value {
			err = fmt.Errorf("%w: %v: %v = %d, expected %d", ErrSelfTest, test.name, cpu.RegisterName(test.get), value, test.value)
			return
		}

		if emu.Verbose {
			log.Debugf("emulator: self test %v ok", test.name)
		}
	}

	return
}

// Stopped returns why the last run or tick stopped.
func (emu *Emulator) Stopped() StopReason {
	return emu.stopped
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	ticks := emu.Cpu.Ticks
	defer func() {
		if err != nil {
			err = &ErrRuntime{Tick: ticks, Err: err}
		}
	}()

	done, err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	if done {
		emu.stopped = STOP_HALT
		return
	}

	if emu.Watch != nil {
		var hit bool
		hit, err = emu.Watch.Eval(emu.Cpu.Registers, emu.Cpu.Ticks)
		if err != nil {
			return
		}
		if hit {
			if emu.Verbose {
				log.Debugf("emulator: watch '%v' at pc %d", emu.Watch.Expr, emu.Pc())
			}
			emu.stopped = STOP_WATCH
			done = true
		}
	}

	return
}

// Run ticks until the program halts, the watch triggers, or maxTicks
// instructions have executed. A maxTicks of zero is unlimited.
func (emu *Emulator) Run(maxTicks int) (res Result, err error) {
	emu.stopped = STOP_NONE

	for {
		if maxTicks > 0 && emu.Cpu.Ticks >= maxTicks {
			emu.stopped = STOP_LIMIT
			break
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			break
		}
	}

	res = Result{
		Ticks:  emu.Cpu.Ticks,
		Pc:     emu.Pc(),
		Reason: emu.stopped,
	}

	if emu.Verbose {
		log.Debugf("emulator: %v (%v)", res.String(), res.Reason)
	}

	return
}
