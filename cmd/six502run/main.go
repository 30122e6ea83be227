// Command six502run loads a raw binary image into a flat 64 KiB
// memory and runs it through the six502 core, optionally dropping into
// an interactive debug REPL.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/six502/six502"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	loadAddr := fs.Uint("load", 0x0400, "address to load the program image at")
	entry := fs.Uint("entry", 0, "entry PC; defaults to the load address")
	clockHz := fs.Float64("hz", 1_000_000, "emulated clock frequency in Hz")
	debug := fs.Bool("debug", false, "drop into the interactive debug REPL")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <program.bin>\n", os.Args[0])
		os.Exit(2)
	}

	if err := run(fs.Arg(0), uint16(*loadAddr), uint16derefOrLoad(*entry, *loadAddr), *clockHz, *debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func uint16derefOrLoad(entry, loadAddr uint) uint16 {
	if entry == 0 {
		return uint16(loadAddr)
	}
	return uint16(entry)
}

func run(path string, loadAddr, entry uint16, clockHz float64, debug bool) error {
	program, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("six502run: %w", err)
	}

	mem := six502.NewMemory()
	mem.Load(loadAddr, program)

	cpu, err := six502.NewCPU(mem, entry, clockHz)
	if err != nil {
		return fmt.Errorf("six502run: %w", err)
	}
	cpu.PowerUp()
	cpu.PC = entry

	var hook six502.DebugHook
	if debug {
		repl, err := newREPL()
		if err != nil {
			return fmt.Errorf("six502run: %w", err)
		}
		defer repl.Close()
		hook = repl.Prompt
		cpu.ToggleBreakpoint(entry)
	}

	err = cpu.Run(hook)
	if err != nil {
		var trap *six502.TrapError
		if errors.As(err, &trap) {
			fmt.Printf("halted on trap: %s\n", trap.Status)
			return nil
		}
		return err
	}
	fmt.Printf("halted: %s\n", cpu.Status())
	return nil
}
