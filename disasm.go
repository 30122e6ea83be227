package six502

import "fmt"

// DisassembledLine is one decoded instruction: its address, the raw
// bytes it occupies, and a formatted mnemonic/operand string in the
// conventional 6502 assembler notation.
type DisassembledLine struct {
	Addr  uint16
	Bytes []byte
	Text  string
}

// Disassemble decodes count instructions starting at addr, reading
// through the CPU's bus. It does not mutate PC or any other register.
func (c *CPU) Disassemble(addr uint16, count int) []DisassembledLine {
	lines := make([]DisassembledLine, 0, count)
	for i := 0; i < count; i++ {
		opcode := c.Bus.ReadByte(addr)
		entry := &opcodeTable[opcode]
		size := 1 + operandBytes(entry.mode)

		raw := make([]byte, size)
		for j := range raw {
			raw[j] = c.Bus.ReadByte(addr + uint16(j))
		}

		lines = append(lines, DisassembledLine{
			Addr:  addr,
			Bytes: raw,
			Text:  formatOperand(entry, addr, raw),
		})
		addr += uint16(size)
	}
	return lines
}

func formatOperand(entry *opEntry, addr uint16, raw []byte) string {
	switch entry.mode {
	case impliedMode:
		return entry.name
	case accumulatorMode:
		return fmt.Sprintf("%s A", entry.name)
	case immediateMode:
		return fmt.Sprintf("%s #$%02X", entry.name, raw[1])
	case zeroPageMode:
		return fmt.Sprintf("%s $%02X", entry.name, raw[1])
	case zeroPageXMode:
		return fmt.Sprintf("%s $%02X,X", entry.name, raw[1])
	case zeroPageYMode:
		return fmt.Sprintf("%s $%02X,Y", entry.name, raw[1])
	case relativeMode:
		target := uint16(int32(addr+2) + int32(int8(raw[1])))
		return fmt.Sprintf("%s $%04X", entry.name, target)
	case absoluteMode:
		return fmt.Sprintf("%s $%04X", entry.name, le16(raw[1], raw[2]))
	case absoluteXMode:
		return fmt.Sprintf("%s $%04X,X", entry.name, le16(raw[1], raw[2]))
	case absoluteYMode:
		return fmt.Sprintf("%s $%04X,Y", entry.name, le16(raw[1], raw[2]))
	case indirectMode:
		return fmt.Sprintf("%s ($%04X)", entry.name, le16(raw[1], raw[2]))
	case indirectXMode:
		return fmt.Sprintf("%s ($%02X,X)", entry.name, raw[1])
	case indirectYMode:
		return fmt.Sprintf("%s ($%02X),Y", entry.name, raw[1])
	}
	return entry.name
}

func le16(lo, hi byte) uint16 {
	return uint16(lo) | uint16(hi)<<8
}
