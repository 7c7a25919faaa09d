package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/tta/cpu"
	"github.com/ezrec/tta/memory"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [flags] image",
	Short: "list the instructions of a program image.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		image, err := os.ReadFile(args[0])
		if err != nil {
			fatal(err)
		}

		base := getInt(cmd, "base")
		mem := memory.New(getUint(cmd, "memory"))
		mem.Verbose = getFlag(cmd, "verbose")

		words, err := mem.LoadProgram(image, base)
		if err != nil {
			fatal(fmt.Errorf("%v: %w", args[0], err))
		}

		for addr := base; addr < base+words; addr++ {
			word, err := mem.LoadWord(addr)
			if err != nil {
				fatal(err)
			}
			code := cpu.Code(word)
			fmt.Printf("%06x: %04x_%04x  %v\n", addr, code.Src(), code.Dst(), code)
		}
	},
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}
