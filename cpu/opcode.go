package cpu

import (
	"fmt"
)

const (
	IMMEDIATE_FLAG = 0x8000 // Source field flag for an immediate value.
	IMMEDIATE_MASK = 0x7fff // Source field immediate value.
)

// Code is a single instruction word: (src << 16) | dst.
type Code uint32

// MakeCodeMove encodes a register to register move.
func MakeCodeMove(src int, dst int) Code {
	return Code(uint32(src&IMMEDIATE_MASK)<<16 | uint32(dst&0xffff))
}

// MakeCodeImmediate encodes an immediate to register move.
// Only the lower 15 bits of value are encoded.
func MakeCodeImmediate(value int, dst int) Code {
	return Code(uint32(IMMEDIATE_FLAG|(value&IMMEDIATE_MASK))<<16 | uint32(dst&0xffff))
}

// Src returns the source field.
func (code Code) Src() uint16 {
	return uint16(code >> 16)
}

// Dst returns the destination register index.
func (code Code) Dst() uint16 {
	return uint16(code & 0xffff)
}

// IsImmediate is true if the source is an immediate value.
func (code Code) IsImmediate() bool {
	return (code.Src() & IMMEDIATE_FLAG) != 0
}

// Immediate returns the immediate value of the source.
func (code Code) Immediate() int64 {
	return int64(code.Src() & IMMEDIATE_MASK)
}

// String disassembles the code.
func (code Code) String() string {
	dst := RegisterName(int(code.Dst()))
	if code.IsImmediate() {
		return fmt.Sprintf("#%d -> %v", code.Immediate(), dst)
	}

	return fmt.Sprintf("%v -> %v", RegisterName(int(code.Src())), dst)
}

// Bytes returns the big-endian encoding of the code.
func (code Code) Bytes() []byte {
	return []byte{byte(code >> 24), byte(code >> 16), byte(code >> 8), byte(code)}
}
