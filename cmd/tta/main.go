// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/tta/memory"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tta",
	Short: "A transport triggered MOVE machine.",
	Long: `An emulator for a machine whose only instruction moves a value
into a register. Arithmetic, branching, memory and console I/O are
triggered by register reads and writes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Uint("memory", memory.DEFAULT_SIZE, "memory size, in words")
	rootCmd.PersistentFlags().Int("base", 0, "word address to load the image at")
}

func getFlag(cmd *cobra.Command, flag string) bool {
	value, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fatal(err)
	}
	return value
}

func getInt(cmd *cobra.Command, flag string) int {
	value, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fatal(err)
	}
	return value
}

func getUint(cmd *cobra.Command, flag string) uint {
	value, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fatal(err)
	}
	return value
}

func getString(cmd *cobra.Command, flag string) string {
	value, err := cmd.Flags().GetString(flag)
	if err != nil {
		fatal(err)
	}
	return value
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%v: %v\n", os.Args[0], err)
	os.Exit(1)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
