// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"strconv"
)

// REGISTER_COUNT is the size of the register file.
const REGISTER_COUNT = 36

// Register roles.
const (
	REG_ADD_A    = 0  // Addend.
	REG_ADD_B    = 1  // Addend.
	REG_ADD_R    = 2  // Sum.
	REG_SUB_A    = 3  // Minuend.
	REG_SUB_B    = 4  // Subtrahend.
	REG_SUB_R    = 5  // Difference.
	REG_MUL_A    = 6  // Factor.
	REG_MUL_B    = 7  // Factor.
	REG_MUL_R    = 8  // Product.
	REG_DIV_N    = 9  // Dividend.
	REG_DIV_D    = 10 // Divisor.
	REG_DIV_Q    = 11 // Quotient.
	REG_DIV_M    = 12 // Remainder.
	REG_LT_A     = 13 // Left comparand.
	REG_LT_B     = 14 // Right comparand.
	REG_LT_R     = 15 // 1 if LT_A < LT_B, else 0.
	REG_CIO      = 16 // Console port.
	REG_SIO      = 18 // Secondary output.
	REG_NL       = 19 // Reads as a newline.
	REG_SEL_C    = 20 // Selector.
	REG_SEL_Z    = 21 // Result if selector is zero.
	REG_SEL_NZ   = 22 // Result if selector is non-zero.
	REG_SEL_R    = 23 // Selected result.
	REG_MEM_DATA = 24 // Double word data port.
	REG_MEM_ADDR = 26 // Double word address.
	REG_PC       = 27 // Program counter.
)

var _register_names = map[int]string{
	REG_ADD_A:    "ADD_A",
	REG_ADD_B:    "ADD_B",
	REG_ADD_R:    "ADD_R",
	REG_SUB_A:    "SUB_A",
	REG_SUB_B:    "SUB_B",
	REG_SUB_R:    "SUB_R",
	REG_MUL_A:    "MUL_A",
	REG_MUL_B:    "MUL_B",
	REG_MUL_R:    "MUL_R",
	REG_DIV_N:    "DIV_N",
	REG_DIV_D:    "DIV_D",
	REG_DIV_Q:    "DIV_Q",
	REG_DIV_M:    "DIV_M",
	REG_LT_A:     "LT_A",
	REG_LT_B:     "LT_B",
	REG_LT_R:     "LT_R",
	REG_CIO:      "CIO",
	REG_SIO:      "SIO",
	REG_NL:       "NL",
	REG_SEL_C:    "SEL_C",
	REG_SEL_Z:    "SEL_Z",
	REG_SEL_NZ:   "SEL_NZ",
	REG_SEL_R:    "SEL_R",
	REG_MEM_DATA: "MEM_DATA",
	REG_MEM_ADDR: "MEM_ADDR",
	REG_PC:       "PC",
}

// RegisterName returns the role name of a register, or Rnn for
// registers without a role.
func RegisterName(index int) string {
	name, ok := _register_names[index]
	if ok {
		return name
	}

	return fmt.Sprintf("R%d", index)
}

// Defines returns an iterator over the register names and their indices.
func Defines() iter.Seq2[string, string] {
	return func(yield func(name string, value string) bool) {
		for index := range REGISTER_COUNT {
			if !yield(RegisterName(index), strconv.Itoa(index)) {
				return
			}
		}
	}
}
