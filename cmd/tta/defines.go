package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ezrec/tta/emulator"
)

var definesCmd = &cobra.Command{
	Use:   "defines",
	Short: "list the register names and constants usable in --watch.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		emu := emulator.NewEmulator(getUint(cmd, "memory"), nil)
		defines := maps.Collect(emu.Defines())
		for _, key := range slices.Sorted(maps.Keys(defines)) {
			fmt.Printf("%-12s %v\n", key, defines[key])
		}
	},
}

func init() {
	rootCmd.AddCommand(definesCmd)
}
