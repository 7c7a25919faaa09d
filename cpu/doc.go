// Package cpu implements the register file and interpreter loop of the
// MOVE machine.
//
// The machine has a single instruction: move a value into a register. The
// source is either a 15-bit immediate or another register; the destination
// is always a register. Arithmetic, comparison, selection, memory access and
// console I/O are performed by triggers (Op) attached to register reads and
// writes. Register PC is the program counter; writing it is a jump.
package cpu
