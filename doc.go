// Package six502 implements a cycle-accurate interpreter core for the
// MOS 6502 microprocessor: register file, flat 64 KiB memory bus,
// addressing-mode resolution, flag-accurate ALU (including BCD), and
// the fetch/decode/execute loop with interrupt, reset, and realtime
// pacing support.
//
// The core is single-threaded and synchronous. A host drives it with
// Step for single-instruction control or Run for free execution, and
// may install a DebugHook to interleave breakpoints and single-stepping.
package six502
