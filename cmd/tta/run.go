package main

import (
	"bytes"
	"fmt"
	goio "io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/tta/emulator"
	"github.com/ezrec/tta/io"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] image",
	Short: "load and execute a program image.",
	Long: `Load a big-endian program image into memory and execute it until
the program counter leaves memory. When stdin is a terminal, it is placed
in raw, non-blocking mode; otherwise stdin (or --input) is read in full
and replayed one byte per console poll.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		image, err := os.ReadFile(args[0])
		if err != nil {
			fatal(err)
		}

		console, closer := openConsole(getString(cmd, "input"))
		defer closer()

		emu := emulator.NewEmulator(getUint(cmd, "memory"), console)
		emu.Verbose = getFlag(cmd, "verbose")

		if getFlag(cmd, "self-test") {
			err = emu.SelfTest()
			if err != nil {
				closer()
				fatal(err)
			}
		}

		err = emu.SetWatch(getString(cmd, "watch"))
		if err != nil {
			closer()
			fatal(err)
		}

		err = emu.Load(image, getInt(cmd, "base"))
		if err != nil {
			closer()
			fatal(fmt.Errorf("%v: %w", args[0], err))
		}

		res, err := emu.Run(getInt(cmd, "max-ticks"))
		closer()

		fmt.Println(res.String())
		if err != nil {
			log.Debugf("\n%v", emu.Cpu.String())
			fatal(err)
		}
	},
}

// openConsole returns the console for a run, and a function to restore the
// terminal that is safe to call more than once.
func openConsole(input string) (console io.Console, closer func()) {
	closer = func() {}

	if len(input) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		tm := io.NewTerminal(os.Stdin, os.Stdout)
		tm.Verbose = log.IsLevelEnabled(log.DebugLevel)
		err := tm.Open()
		if err != nil {
			fatal(err)
		}

		closed := false
		closer = func() {
			if !closed {
				closed = true
				_ = tm.Close()
			}
		}

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGTERM, syscall.SIGHUP)
		go func() {
			<-sigs
			_ = tm.Close()
			os.Exit(1)
		}()

		console = tm
		return
	}

	var data []byte
	var err error
	if len(input) == 0 || input == "-" {
		data, err = goio.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		fatal(err)
	}

	console = &io.Tape{
		Input:  bytes.NewReader(data),
		Output: os.Stdout,
	}
	return
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int("max-ticks", 0, "stop after this many ticks (0 is unlimited)")
	runCmd.Flags().String("watch", "", "stop when this starlark expression is true")
	runCmd.Flags().String("input", "", "replay console input from this file ('-' for stdin)")
	runCmd.Flags().Bool("self-test", true, "check the trigger wiring before running")
}
