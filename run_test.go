package six502

import "testing"

func TestApplyDebugCommandToggleBreakpoint(t *testing.T) {
	r := newRig(t)
	if _, action := r.cpu.ApplyDebugCommand("B 0405"); action != debugActionContinuePrompt {
		t.Fatalf("B command should not resume execution")
	}
	if !r.cpu.HasBreakpoint(0x0405) {
		t.Fatalf("breakpoint not set at 0405")
	}
	r.cpu.ApplyDebugCommand("b $0405")
	if r.cpu.HasBreakpoint(0x0405) {
		t.Fatalf("second B toggle should clear the breakpoint")
	}
}

func TestApplyDebugCommandTrapToggle(t *testing.T) {
	r := newRig(t)
	if !r.cpu.TrapDetectionEnabled() {
		t.Fatalf("trap detection should default to enabled")
	}
	r.cpu.ApplyDebugCommand("T")
	if r.cpu.TrapDetectionEnabled() {
		t.Fatalf("T command should toggle trap detection off")
	}
}

func TestApplyDebugCommandUnrecognized(t *testing.T) {
	r := newRig(t)
	output, action := r.cpu.ApplyDebugCommand("ZZ")
	if action != debugActionContinuePrompt {
		t.Fatalf("unrecognized command must not halt or resume")
	}
	if output == "" {
		t.Fatalf("unrecognized command should produce a message")
	}
}

func TestRunWithBreakpointEntersHookExactlyAtTarget(t *testing.T) {
	// Mirrors the end-to-end breakpoint scenario, with the breakpoint
	// at 0x0405 set directly rather than through a B command: confirm
	// the hook is first entered exactly when PC reaches 0x0405 after
	// five NOPs starting at 0x0400.
	r := newRig(t)
	r.load(0x0400, []byte{0xEA, 0xEA, 0xEA, 0xEA, 0xEA})

	var seenAt uint16
	hook := func(status string) string {
		seenAt = r.cpu.PC
		return "Q"
	}
	r.cpu.ToggleBreakpoint(0x0405)

	if err := r.cpu.Run(hook); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if seenAt != 0x0405 {
		t.Fatalf("hook entered at PC=%04X, want 0405", seenAt)
	}
}

func TestRunHaltsOnQuit(t *testing.T) {
	r := newRig(t)
	r.load(0x0400, []byte{0xEA, 0xEA, 0xEA})
	r.cpu.ToggleBreakpoint(0x0400)

	hook := func(status string) string { return "Q" }
	if err := r.cpu.Run(hook); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !r.cpu.Halted() {
		t.Fatalf("CPU should be halted after Q")
	}
	if r.cpu.PC != 0x0400 {
		t.Fatalf("PC advanced past the breakpoint despite an immediate Q")
	}
}

func TestHexDumpFormat(t *testing.T) {
	r := newRig(t)
	for i := 0; i < 16; i++ {
		r.mem.WriteByte(0x0300+uint16(i), byte(i))
	}
	out := r.cpu.hexDump(0x0300)
	want := "0300: 00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F"
	if out != want {
		t.Fatalf("hexDump = %q, want %q", out, want)
	}
}
