// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"github.com/ezrec/tta/memory"
)

// Triggers are the ops fired by access to a single register.
type Triggers struct {
	Get []Op // Fired, in order, before the register is read.
	Set []Op // Fired, in order, after the register is written.
}

// Registers is the register file, and the triggers bound to each register.
type Registers struct {
	Value [REGISTER_COUNT]int64

	triggers [REGISTER_COUNT]Triggers
}

// NewRegisters creates a register file wired with the machine's triggers.
func NewRegisters() (regs *Registers) {
	regs = &Registers{}
	regs.Wire(WIRING)

	return
}

// Wire registers every op in the wiring list.
func (regs *Registers) Wire(wiring []Wiring) {
	for _, wire := range wiring {
		for _, index := range wire.Set {
			regs.Trigger(index, PHASE_SET, wire.Op)
		}
		for _, index := range wire.Get {
			regs.Trigger(index, PHASE_GET, wire.Op)
		}
	}
}

// Trigger appends an op to a register's read or write trigger list.
func (regs *Registers) Trigger(index int, phase Phase, op Op) (err error) {
	if index < 0 || index >= REGISTER_COUNT {
		err = ErrRegister(index)
		return
	}

	trig := &regs.triggers[index]
	if phase == PHASE_SET {
		trig.Set = append(trig.Set, op)
	} else {
		trig.Get = append(trig.Get, op)
	}

	return
}

// Triggers returns the triggers bound to a register.
func (regs *Registers) Triggers(index int) (trig Triggers) {
	if index < 0 || index >= REGISTER_COUNT {
		return
	}

	return regs.triggers[index]
}

// Set writes a register, then fires its write triggers.
func (regs *Registers) Set(index int, value int64, mem *memory.Memory) (err error) {
	if index < 0 || index >= REGISTER_COUNT {
		err = ErrRegister(index)
		return
	}

	regs.Value[index] = value

	for _, op := range regs.triggers[index].Set {
		err = op.Fire(PHASE_SET, &regs.Value, mem)
		if err != nil {
			return
		}
	}

	return
}

// Get fires a register's read triggers, then reads it.
func (regs *Registers) Get(index int, mem *memory.Memory) (value int64, err error) {
	if index < 0 || index >= REGISTER_COUNT {
		err = ErrRegister(index)
		return
	}

	for _, op := range regs.triggers[index].Get {
		err = op.Fire(PHASE_GET, &regs.Value, mem)
		if err != nil {
			return
		}
	}

	value = regs.Value[index]
	return
}

// Peek reads a register without firing triggers.
func (regs *Registers) Peek(index int) int64 {
	return regs.Value[index]
}

// Poke writes a register without firing triggers.
func (regs *Registers) Poke(index int, value int64) {
	regs.Value[index] = value
}

// Reset zeros all registers. Triggers are kept.
func (regs *Registers) Reset() {
	clear(regs.Value[:])
}
