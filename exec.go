package six502

import "fmt"

// TrapError reports that Step/Run halted because the core detected an
// infinite self-loop: the last PC recorded before an instruction
// matches the PC about to execute, and the prior instruction made no
// progress. Klaus Dormann's conformance ROMs use exactly this idiom
// (JMP *) to signal pass/fail.
type TrapError struct {
	PC     uint16
	Status string
}

func (e *TrapError) Error() string {
	return fmt.Sprintf("six502: trap detected at PC=%04X (%s)", e.PC, e.Status)
}

// SetTrapDetection enables or disables the infinite-loop trap check,
// matching the debug T command (spec §6). Some programs spin-wait on
// purpose without meaning to signal completion; a host that knows this
// can disable detection rather than have Step report a false trap.
func (c *CPU) SetTrapDetection(enabled bool) {
	c.trapEnabled = enabled
	if !enabled {
		c.lastPCValid = false
	}
}

func (c *CPU) TrapDetectionEnabled() bool {
	return c.trapEnabled
}

// serviceInterrupts runs at an instruction boundary. NMI is
// edge-triggered and always serviced once latched; IRQ is
// level-triggered and serviced only while I is clear. Both push
// PC/P (B=0, U=1), set I, and load PC from the appropriate vector,
// costing 7 cycles.
func (c *CPU) serviceInterrupts() bool {
	nmiEdge := c.nmiLine && !c.nmiPrev
	c.nmiPrev = c.nmiLine

	if nmiEdge {
		c.handleInterrupt(NMIVector)
		return true
	}
	if c.irqLine && !c.getFlag(FlagInterrupt) {
		c.handleInterrupt(IRQVector)
		return true
	}
	return false
}

func (c *CPU) handleInterrupt(vector uint16) {
	c.push16(c.PC)
	c.push(c.P&^FlagBreak | FlagUnused)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.Read16(vector)
	c.Cycles += 7
}

// Step executes one instruction and returns the number of cycles
// consumed. Pending interrupts are checked first: when one is
// serviced, that call performs only the 7-cycle interrupt sequence and
// returns 7, and the handler's first instruction runs on the next
// call. If RDY is held low, Step returns immediately having consumed
// nothing. If
// trap detection fires, Step returns a *TrapError and leaves the core
// halted.
func (c *CPU) Step() (int, error) {
	if !c.rdyLine {
		return 0, nil
	}

	if c.serviceInterrupts() {
		return 7, nil
	}

	if c.trapEnabled && c.lastPCValid && c.PC == c.lastPC {
		c.halted = true
		err := &TrapError{PC: c.PC, Status: c.Status()}
		c.haltErr = err
		return 0, err
	}
	c.lastPC = c.PC
	c.lastPCValid = true

	opcode := c.Bus.ReadByte(c.PC)
	c.PC++

	entry := &opcodeTable[opcode]
	ea, crossed := c.resolve(entry.mode)

	cycles := entry.cycles
	if entry.pageCrossCost && crossed {
		cycles++
	}
	cycles += entry.fn(c, ea)

	c.Cycles += uint64(cycles)
	if c.PerfEnabled {
		c.InstructionCount++
	}

	return cycles, nil
}
