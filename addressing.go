package six502

// addrMode identifies how an opcode's operand resolves to an
// effective address. Undocumented opcodes are treated as mode
// impliedMode regardless of what a real 6502 decodes, since they
// consume no operand bytes in this core (see spec §4.4).
type addrMode byte

const (
	impliedMode addrMode = iota
	accumulatorMode
	immediateMode
	zeroPageMode
	zeroPageXMode
	zeroPageYMode
	relativeMode
	absoluteMode
	absoluteXMode
	absoluteYMode
	indirectMode
	indirectXMode
	indirectYMode
)

// operandBytes is the number of bytes following the opcode byte that
// the mode consumes.
func operandBytes(mode addrMode) int {
	switch mode {
	case impliedMode, accumulatorMode:
		return 0
	case immediateMode, zeroPageMode, zeroPageXMode, zeroPageYMode,
		relativeMode, indirectXMode, indirectYMode:
		return 1
	case absoluteMode, absoluteXMode, absoluteYMode, indirectMode:
		return 2
	}
	return 0
}

// resolve computes the effective address for mode, advancing PC past
// the operand, and reports whether the resolution crossed a page
// boundary (meaningful only for the indexed/indirect-Y modes; callers
// gate the +1 cycle penalty themselves since it applies only to
// read-only instructions).
func (c *CPU) resolve(mode addrMode) (ea uint16, crossed bool) {
	switch mode {
	case impliedMode, accumulatorMode:
		return 0, false

	case immediateMode:
		ea = c.PC
		c.PC++
		return ea, false

	case zeroPageMode:
		ea = uint16(c.Bus.ReadByte(c.PC))
		c.PC++
		return ea, false

	case zeroPageXMode:
		base := c.Bus.ReadByte(c.PC)
		c.PC++
		return uint16(base + c.X), false

	case zeroPageYMode:
		base := c.Bus.ReadByte(c.PC)
		c.PC++
		return uint16(base + c.Y), false

	case relativeMode:
		offset := int8(c.Bus.ReadByte(c.PC))
		c.PC++
		base := c.PC
		target := uint16(int32(base) + int32(offset))
		return target, (base & 0xFF00) != (target & 0xFF00)

	case absoluteMode:
		ea = c.Read16(c.PC)
		c.PC += 2
		return ea, false

	case absoluteXMode:
		base := c.Read16(c.PC)
		c.PC += 2
		ea = base + uint16(c.X)
		return ea, (base & 0xFF00) != (ea & 0xFF00)

	case absoluteYMode:
		base := c.Read16(c.PC)
		c.PC += 2
		ea = base + uint16(c.Y)
		return ea, (base & 0xFF00) != (ea & 0xFF00)

	case indirectMode:
		ptr := c.Read16(c.PC)
		c.PC += 2
		return c.Read16Bug(ptr), false

	case indirectXMode:
		base := c.Bus.ReadByte(c.PC)
		c.PC++
		ptr := uint16(base + c.X)
		lo := uint16(c.Bus.ReadByte(ptr & 0x00FF))
		hi := uint16(c.Bus.ReadByte((ptr + 1) & 0x00FF))
		return lo | hi<<8, false

	case indirectYMode:
		zp := c.Bus.ReadByte(c.PC)
		c.PC++
		lo := uint16(c.Bus.ReadByte(uint16(zp)))
		hi := uint16(c.Bus.ReadByte(uint16(zp + 1)))
		base := lo | hi<<8
		ea = base + uint16(c.Y)
		return ea, (base & 0xFF00) != (ea & 0xFF00)
	}
	return 0, false
}
