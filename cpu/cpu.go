// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/tta/memory"
)

// Cpu is the simulation context of the MOVE machine interpreter.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers *Registers     // Register file, with triggers.
	Memory    *memory.Memory // Instruction and data memory.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a CPU, with a wired register file, attached to memory.
func NewCpu(mem *memory.Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Registers: NewRegisters(),
		Memory:    mem,
	}

	return
}

// Reset clears the registers and the tick counter.
// Memory is not modified.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Debugf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Ticks = 0
}

// Pc returns the program counter.
func (cpu *Cpu) Pc() int64 {
	return cpu.Registers.Peek(REG_PC)
}

// Halted is true if the program counter is outside of memory.
func (cpu *Cpu) Halted() bool {
	pc := cpu.Pc()
	return pc < 0 || pc >= int64(cpu.Memory.Size())
}

// Fetch returns the instruction at the program counter.
func (cpu *Cpu) Fetch() (code Code, err error) {
	src, dst, err := cpu.Memory.LoadInstruction(int(cpu.Pc()))
	if err != nil {
		return
	}

	code = Code(uint32(src)<<16 | uint32(dst))
	return
}

// Tick executes a single instruction.
//   - The program counter is read without triggers.
//   - If it is outside of memory, the machine has halted, and done is set.
//   - The source is an immediate, or a register read (firing its triggers).
//   - The program counter is advanced by one.
//   - The destination register is written (firing its triggers). A write
//     to PC overrides the advance.
func (cpu *Cpu) Tick() (done bool, err error) {
	if cpu.Halted() {
		done = true
		return
	}

	pc := cpu.Pc()

	code, err := cpu.Fetch()
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			err = &ErrTick{Pc: pc, Code: code, Err: err}
		}
	}()

	var value int64
	if code.IsImmediate() {
		value = code.Immediate()
	} else {
		value, err = cpu.Registers.Get(int(code.Src()), cpu.Memory)
		if err != nil {
			return
		}
	}

	if cpu.Verbose {
		log.Debugf("cpu: %06x: %v (%d)", pc, code, value)
	}

	cpu.Registers.Poke(REG_PC, pc+1)

	err = cpu.Registers.Set(int(code.Dst()), value, cpu.Memory)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Run ticks until the machine halts, or an error occurs.
func (cpu *Cpu) Run() (err error) {
	for done, err := cpu.Tick(); !done; done, err = cpu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}

// String returns the register file as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("% 8s: %d\n", "ticks", cpu.Ticks)
	for index, value := range cpu.Registers.Value {
		text += fmt.Sprintf("% 8s: %016X (%d)\n", RegisterName(index), uint64(value), value)
	}

	return
}
