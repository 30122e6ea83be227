package six502

// opFunc executes an instruction's operation given its resolved
// effective address. It returns any cycles beyond the entry's base
// cycle count the caller should add — used only by branches, whose
// cost depends on whether the branch is taken and whether it crosses
// a page.
type opFunc func(c *CPU, ea uint16) int

type opEntry struct {
	name          string
	mode          addrMode
	cycles        int
	pageCrossCost bool // +1 cycle if resolve() reported a page cross
	fn            opFunc
}

var opcodeTable [256]opEntry

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = opEntry{name: "???", mode: impliedMode, cycles: 2, fn: opUnknown}
	}

	def := func(op byte, name string, mode addrMode, cycles int, pageCross bool, fn opFunc) {
		opcodeTable[op] = opEntry{name: name, mode: mode, cycles: cycles, pageCrossCost: pageCross, fn: fn}
	}

	// Loads
	def(0xA9, "LDA", immediateMode, 2, false, opLDA)
	def(0xA5, "LDA", zeroPageMode, 3, false, opLDA)
	def(0xB5, "LDA", zeroPageXMode, 4, false, opLDA)
	def(0xAD, "LDA", absoluteMode, 4, false, opLDA)
	def(0xBD, "LDA", absoluteXMode, 4, true, opLDA)
	def(0xB9, "LDA", absoluteYMode, 4, true, opLDA)
	def(0xA1, "LDA", indirectXMode, 6, false, opLDA)
	def(0xB1, "LDA", indirectYMode, 5, true, opLDA)

	def(0xA2, "LDX", immediateMode, 2, false, opLDX)
	def(0xA6, "LDX", zeroPageMode, 3, false, opLDX)
	def(0xB6, "LDX", zeroPageYMode, 4, false, opLDX)
	def(0xAE, "LDX", absoluteMode, 4, false, opLDX)
	def(0xBE, "LDX", absoluteYMode, 4, true, opLDX)

	def(0xA0, "LDY", immediateMode, 2, false, opLDY)
	def(0xA4, "LDY", zeroPageMode, 3, false, opLDY)
	def(0xB4, "LDY", zeroPageXMode, 4, false, opLDY)
	def(0xAC, "LDY", absoluteMode, 4, false, opLDY)
	def(0xBC, "LDY", absoluteXMode, 4, true, opLDY)

	// Stores
	def(0x85, "STA", zeroPageMode, 3, false, opSTA)
	def(0x95, "STA", zeroPageXMode, 4, false, opSTA)
	def(0x8D, "STA", absoluteMode, 4, false, opSTA)
	def(0x9D, "STA", absoluteXMode, 5, false, opSTA)
	def(0x99, "STA", absoluteYMode, 5, false, opSTA)
	def(0x81, "STA", indirectXMode, 6, false, opSTA)
	def(0x91, "STA", indirectYMode, 6, false, opSTA)

	def(0x86, "STX", zeroPageMode, 3, false, opSTX)
	def(0x96, "STX", zeroPageYMode, 4, false, opSTX)
	def(0x8E, "STX", absoluteMode, 4, false, opSTX)

	def(0x84, "STY", zeroPageMode, 3, false, opSTY)
	def(0x94, "STY", zeroPageXMode, 4, false, opSTY)
	def(0x8C, "STY", absoluteMode, 4, false, opSTY)

	// Transfers
	def(0xAA, "TAX", impliedMode, 2, false, opTAX)
	def(0xA8, "TAY", impliedMode, 2, false, opTAY)
	def(0xBA, "TSX", impliedMode, 2, false, opTSX)
	def(0x8A, "TXA", impliedMode, 2, false, opTXA)
	def(0x9A, "TXS", impliedMode, 2, false, opTXS)
	def(0x98, "TYA", impliedMode, 2, false, opTYA)

	// Stack
	def(0x48, "PHA", impliedMode, 3, false, opPHA)
	def(0x08, "PHP", impliedMode, 3, false, opPHP)
	def(0x68, "PLA", impliedMode, 4, false, opPLA)
	def(0x28, "PLP", impliedMode, 4, false, opPLP)

	// Arithmetic
	def(0x69, "ADC", immediateMode, 2, false, opADC)
	def(0x65, "ADC", zeroPageMode, 3, false, opADC)
	def(0x75, "ADC", zeroPageXMode, 4, false, opADC)
	def(0x6D, "ADC", absoluteMode, 4, false, opADC)
	def(0x7D, "ADC", absoluteXMode, 4, true, opADC)
	def(0x79, "ADC", absoluteYMode, 4, true, opADC)
	def(0x61, "ADC", indirectXMode, 6, false, opADC)
	def(0x71, "ADC", indirectYMode, 5, true, opADC)

	def(0xE9, "SBC", immediateMode, 2, false, opSBC)
	def(0xE5, "SBC", zeroPageMode, 3, false, opSBC)
	def(0xF5, "SBC", zeroPageXMode, 4, false, opSBC)
	def(0xED, "SBC", absoluteMode, 4, false, opSBC)
	def(0xFD, "SBC", absoluteXMode, 4, true, opSBC)
	def(0xF9, "SBC", absoluteYMode, 4, true, opSBC)
	def(0xE1, "SBC", indirectXMode, 6, false, opSBC)
	def(0xF1, "SBC", indirectYMode, 5, true, opSBC)

	// Logic
	def(0x29, "AND", immediateMode, 2, false, opAND)
	def(0x25, "AND", zeroPageMode, 3, false, opAND)
	def(0x35, "AND", zeroPageXMode, 4, false, opAND)
	def(0x2D, "AND", absoluteMode, 4, false, opAND)
	def(0x3D, "AND", absoluteXMode, 4, true, opAND)
	def(0x39, "AND", absoluteYMode, 4, true, opAND)
	def(0x21, "AND", indirectXMode, 6, false, opAND)
	def(0x31, "AND", indirectYMode, 5, true, opAND)

	def(0x09, "ORA", immediateMode, 2, false, opORA)
	def(0x05, "ORA", zeroPageMode, 3, false, opORA)
	def(0x15, "ORA", zeroPageXMode, 4, false, opORA)
	def(0x0D, "ORA", absoluteMode, 4, false, opORA)
	def(0x1D, "ORA", absoluteXMode, 4, true, opORA)
	def(0x19, "ORA", absoluteYMode, 4, true, opORA)
	def(0x01, "ORA", indirectXMode, 6, false, opORA)
	def(0x11, "ORA", indirectYMode, 5, true, opORA)

	def(0x49, "EOR", immediateMode, 2, false, opEOR)
	def(0x45, "EOR", zeroPageMode, 3, false, opEOR)
	def(0x55, "EOR", zeroPageXMode, 4, false, opEOR)
	def(0x4D, "EOR", absoluteMode, 4, false, opEOR)
	def(0x5D, "EOR", absoluteXMode, 4, true, opEOR)
	def(0x59, "EOR", absoluteYMode, 4, true, opEOR)
	def(0x41, "EOR", indirectXMode, 6, false, opEOR)
	def(0x51, "EOR", indirectYMode, 5, true, opEOR)

	def(0x24, "BIT", zeroPageMode, 3, false, opBIT)
	def(0x2C, "BIT", absoluteMode, 4, false, opBIT)

	// Compares
	def(0xC9, "CMP", immediateMode, 2, false, opCMP)
	def(0xC5, "CMP", zeroPageMode, 3, false, opCMP)
	def(0xD5, "CMP", zeroPageXMode, 4, false, opCMP)
	def(0xCD, "CMP", absoluteMode, 4, false, opCMP)
	def(0xDD, "CMP", absoluteXMode, 4, true, opCMP)
	def(0xD9, "CMP", absoluteYMode, 4, true, opCMP)
	def(0xC1, "CMP", indirectXMode, 6, false, opCMP)
	def(0xD1, "CMP", indirectYMode, 5, true, opCMP)

	def(0xE0, "CPX", immediateMode, 2, false, opCPX)
	def(0xE4, "CPX", zeroPageMode, 3, false, opCPX)
	def(0xEC, "CPX", absoluteMode, 4, false, opCPX)

	def(0xC0, "CPY", immediateMode, 2, false, opCPY)
	def(0xC4, "CPY", zeroPageMode, 3, false, opCPY)
	def(0xCC, "CPY", absoluteMode, 4, false, opCPY)

	// Increments/decrements
	def(0xE6, "INC", zeroPageMode, 5, false, opINC)
	def(0xF6, "INC", zeroPageXMode, 6, false, opINC)
	def(0xEE, "INC", absoluteMode, 6, false, opINC)
	def(0xFE, "INC", absoluteXMode, 7, false, opINC)

	def(0xC6, "DEC", zeroPageMode, 5, false, opDEC)
	def(0xD6, "DEC", zeroPageXMode, 6, false, opDEC)
	def(0xCE, "DEC", absoluteMode, 6, false, opDEC)
	def(0xDE, "DEC", absoluteXMode, 7, false, opDEC)

	def(0xE8, "INX", impliedMode, 2, false, opINX)
	def(0xC8, "INY", impliedMode, 2, false, opINY)
	def(0xCA, "DEX", impliedMode, 2, false, opDEX)
	def(0x88, "DEY", impliedMode, 2, false, opDEY)

	// Shifts/rotates
	def(0x0A, "ASL", accumulatorMode, 2, false, opASLAcc)
	def(0x06, "ASL", zeroPageMode, 5, false, opASLMem)
	def(0x16, "ASL", zeroPageXMode, 6, false, opASLMem)
	def(0x0E, "ASL", absoluteMode, 6, false, opASLMem)
	def(0x1E, "ASL", absoluteXMode, 7, false, opASLMem)

	def(0x4A, "LSR", accumulatorMode, 2, false, opLSRAcc)
	def(0x46, "LSR", zeroPageMode, 5, false, opLSRMem)
	def(0x56, "LSR", zeroPageXMode, 6, false, opLSRMem)
	def(0x4E, "LSR", absoluteMode, 6, false, opLSRMem)
	def(0x5E, "LSR", absoluteXMode, 7, false, opLSRMem)

	def(0x2A, "ROL", accumulatorMode, 2, false, opROLAcc)
	def(0x26, "ROL", zeroPageMode, 5, false, opROLMem)
	def(0x36, "ROL", zeroPageXMode, 6, false, opROLMem)
	def(0x2E, "ROL", absoluteMode, 6, false, opROLMem)
	def(0x3E, "ROL", absoluteXMode, 7, false, opROLMem)

	def(0x6A, "ROR", accumulatorMode, 2, false, opRORAcc)
	def(0x66, "ROR", zeroPageMode, 5, false, opRORMem)
	def(0x76, "ROR", zeroPageXMode, 6, false, opRORMem)
	def(0x6E, "ROR", absoluteMode, 6, false, opRORMem)
	def(0x7E, "ROR", absoluteXMode, 7, false, opRORMem)

	// Jumps and calls
	def(0x4C, "JMP", absoluteMode, 3, false, opJMP)
	def(0x6C, "JMP", indirectMode, 5, false, opJMP)
	def(0x20, "JSR", absoluteMode, 6, false, opJSR)
	def(0x60, "RTS", impliedMode, 6, false, opRTS)

	// Branches
	def(0x90, "BCC", relativeMode, 2, false, opBranch(func(c *CPU) bool { return !c.getFlag(FlagCarry) }))
	def(0xB0, "BCS", relativeMode, 2, false, opBranch(func(c *CPU) bool { return c.getFlag(FlagCarry) }))
	def(0xF0, "BEQ", relativeMode, 2, false, opBranch(func(c *CPU) bool { return c.getFlag(FlagZero) }))
	def(0x30, "BMI", relativeMode, 2, false, opBranch(func(c *CPU) bool { return c.getFlag(FlagNegative) }))
	def(0xD0, "BNE", relativeMode, 2, false, opBranch(func(c *CPU) bool { return !c.getFlag(FlagZero) }))
	def(0x10, "BPL", relativeMode, 2, false, opBranch(func(c *CPU) bool { return !c.getFlag(FlagNegative) }))
	def(0x50, "BVC", relativeMode, 2, false, opBranch(func(c *CPU) bool { return !c.getFlag(FlagOverflow) }))
	def(0x70, "BVS", relativeMode, 2, false, opBranch(func(c *CPU) bool { return c.getFlag(FlagOverflow) }))

	// Status flag ops
	def(0x18, "CLC", impliedMode, 2, false, opFlag(FlagCarry, false))
	def(0x38, "SEC", impliedMode, 2, false, opFlag(FlagCarry, true))
	def(0x58, "CLI", impliedMode, 2, false, opFlag(FlagInterrupt, false))
	def(0x78, "SEI", impliedMode, 2, false, opFlag(FlagInterrupt, true))
	def(0xD8, "CLD", impliedMode, 2, false, opFlag(FlagDecimal, false))
	def(0xF8, "SED", impliedMode, 2, false, opFlag(FlagDecimal, true))
	def(0xB8, "CLV", impliedMode, 2, false, opFlag(FlagOverflow, false))

	// System
	def(0x00, "BRK", impliedMode, 7, false, opBRK)
	def(0x40, "RTI", impliedMode, 6, false, opRTI)
	def(0xEA, "NOP", impliedMode, 2, false, opNOP)
}

func opUnknown(c *CPU, ea uint16) int { return 0 }

func opLDA(c *CPU, ea uint16) int { c.A = c.Bus.ReadByte(ea); c.updateNZ(c.A); return 0 }
func opLDX(c *CPU, ea uint16) int { c.X = c.Bus.ReadByte(ea); c.updateNZ(c.X); return 0 }
func opLDY(c *CPU, ea uint16) int { c.Y = c.Bus.ReadByte(ea); c.updateNZ(c.Y); return 0 }

func opSTA(c *CPU, ea uint16) int { c.Bus.WriteByte(ea, c.A); return 0 }
func opSTX(c *CPU, ea uint16) int { c.Bus.WriteByte(ea, c.X); return 0 }
func opSTY(c *CPU, ea uint16) int { c.Bus.WriteByte(ea, c.Y); return 0 }

func opTAX(c *CPU, ea uint16) int { c.X = c.A; c.updateNZ(c.X); return 0 }
func opTAY(c *CPU, ea uint16) int { c.Y = c.A; c.updateNZ(c.Y); return 0 }
func opTSX(c *CPU, ea uint16) int { c.X = c.SP; c.updateNZ(c.X); return 0 }
func opTXA(c *CPU, ea uint16) int { c.A = c.X; c.updateNZ(c.A); return 0 }
func opTXS(c *CPU, ea uint16) int { c.SP = c.X; return 0 }
func opTYA(c *CPU, ea uint16) int { c.A = c.Y; c.updateNZ(c.A); return 0 }

func opPHA(c *CPU, ea uint16) int { c.push(c.A); return 0 }
func opPHP(c *CPU, ea uint16) int { c.push(c.P | FlagBreak | FlagUnused); return 0 }
func opPLA(c *CPU, ea uint16) int { c.A = c.pop(); c.updateNZ(c.A); return 0 }
func opPLP(c *CPU, ea uint16) int {
	c.P = c.pop()
	c.setFlag(FlagBreak, false)
	c.setFlag(FlagUnused, true)
	return 0
}

func opADC(c *CPU, ea uint16) int { c.adc(c.Bus.ReadByte(ea)); return 0 }
func opSBC(c *CPU, ea uint16) int { c.sbc(c.Bus.ReadByte(ea)); return 0 }

func opAND(c *CPU, ea uint16) int { c.A &= c.Bus.ReadByte(ea); c.updateNZ(c.A); return 0 }
func opORA(c *CPU, ea uint16) int { c.A |= c.Bus.ReadByte(ea); c.updateNZ(c.A); return 0 }
func opEOR(c *CPU, ea uint16) int { c.A ^= c.Bus.ReadByte(ea); c.updateNZ(c.A); return 0 }
func opBIT(c *CPU, ea uint16) int { c.bit(c.Bus.ReadByte(ea)); return 0 }

func opCMP(c *CPU, ea uint16) int { c.compare(c.A, c.Bus.ReadByte(ea)); return 0 }
func opCPX(c *CPU, ea uint16) int { c.compare(c.X, c.Bus.ReadByte(ea)); return 0 }
func opCPY(c *CPU, ea uint16) int { c.compare(c.Y, c.Bus.ReadByte(ea)); return 0 }

func opINC(c *CPU, ea uint16) int { c.rmw(ea, c.incByte); return 0 }
func opDEC(c *CPU, ea uint16) int { c.rmw(ea, c.decByte); return 0 }
func opINX(c *CPU, ea uint16) int { c.X++; c.updateNZ(c.X); return 0 }
func opINY(c *CPU, ea uint16) int { c.Y++; c.updateNZ(c.Y); return 0 }
func opDEX(c *CPU, ea uint16) int { c.X--; c.updateNZ(c.X); return 0 }
func opDEY(c *CPU, ea uint16) int { c.Y--; c.updateNZ(c.Y); return 0 }

func opASLAcc(c *CPU, ea uint16) int { c.A = c.asl(c.A); return 0 }
func opASLMem(c *CPU, ea uint16) int { c.rmw(ea, c.asl); return 0 }
func opLSRAcc(c *CPU, ea uint16) int { c.A = c.lsr(c.A); return 0 }
func opLSRMem(c *CPU, ea uint16) int { c.rmw(ea, c.lsr); return 0 }
func opROLAcc(c *CPU, ea uint16) int { c.A = c.rol(c.A); return 0 }
func opROLMem(c *CPU, ea uint16) int { c.rmw(ea, c.rol); return 0 }
func opRORAcc(c *CPU, ea uint16) int { c.A = c.ror(c.A); return 0 }
func opRORMem(c *CPU, ea uint16) int { c.rmw(ea, c.ror); return 0 }

func opJMP(c *CPU, ea uint16) int { c.PC = ea; return 0 }

func opJSR(c *CPU, ea uint16) int {
	c.push16(c.PC - 1)
	c.PC = ea
	return 0
}

func opRTS(c *CPU, ea uint16) int { c.PC = c.pop16() + 1; return 0 }

func opBranch(taken func(*CPU) bool) opFunc {
	return func(c *CPU, ea uint16) int {
		if !taken(c) {
			return 0
		}
		same := (c.PC & 0xFF00) == (ea & 0xFF00)
		c.PC = ea
		if same {
			return 1
		}
		return 2
	}
}

func opFlag(flag byte, value bool) opFunc {
	return func(c *CPU, ea uint16) int {
		c.setFlag(flag, value)
		return 0
	}
}

func opBRK(c *CPU, ea uint16) int {
	c.PC++
	c.push16(c.PC)
	c.push(c.P | FlagBreak | FlagUnused)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.Read16(IRQVector)
	return 0
}

func opRTI(c *CPU, ea uint16) int {
	c.P = (c.pop() &^ FlagBreak) | FlagUnused
	c.PC = c.pop16()
	return 0
}

func opNOP(c *CPU, ea uint16) int { return 0 }
