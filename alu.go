package six502

// adc adds value to A with carry, honoring the decimal flag. Binary
// mode is the textbook two's-complement add with overflow detection.
// Decimal mode derives Z from the plain binary intermediate, and N/V
// from the high nibble after BCD carry-correction but before the
// final >0x90 correction, per spec §4.3/§9.
func (c *CPU) adc(value byte) {
	carry := byte(0)
	if c.getFlag(FlagCarry) {
		carry = 1
	}

	if !c.getFlag(FlagDecimal) {
		c.adcBinary(value, carry)
		return
	}

	sum := uint16(c.A) + uint16(value) + uint16(carry)
	c.setFlag(FlagZero, byte(sum) == 0)

	ln := (c.A & 0x0F) + (value & 0x0F) + carry
	hiCarry := byte(0)
	if ln > 9 {
		ln += 6
		hiCarry = 0x10
	}
	hnPre := uint16(c.A&0xF0) + uint16(value&0xF0) + uint16(hiCarry)
	c.setFlag(FlagNegative, byte(hnPre)&0x80 != 0)
	c.setFlag(FlagOverflow, (uint16(c.A)^hnPre)&(uint16(value)^hnPre)&0x80 != 0)

	hn := hnPre
	if hn > 0x90 {
		hn += 0x60
	}
	c.setFlag(FlagCarry, hn > 0xFF)
	c.A = byte(hn) | (ln & 0x0F)
}

func (c *CPU) adcBinary(value byte, carry byte) {
	sum := uint16(c.A) + uint16(value) + uint16(carry)
	result := byte(sum)
	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (uint16(c.A)^sum)&(uint16(value)^sum)&0x80 != 0)
	c.A = result
	c.updateNZ(c.A)
}

// sbc subtracts value (with borrow) from A, honoring the decimal
// flag. Unlike adc, decimal mode derives all of Z/N/V from the binary
// intermediate and only uses BCD correction for A and carry.
func (c *CPU) sbc(value byte) {
	borrow := byte(0)
	if !c.getFlag(FlagCarry) {
		borrow = 1
	}

	if !c.getFlag(FlagDecimal) {
		c.sbcBinary(value, borrow)
		return
	}

	diff := int16(c.A) - int16(value) - int16(borrow)
	result := byte(diff)
	c.setFlag(FlagZero, result == 0)
	c.setFlag(FlagNegative, result&0x80 != 0)
	c.setFlag(FlagOverflow, (int16(c.A)^int16(value))&(int16(c.A)^diff)&0x80 != 0)

	ln := int16(c.A&0x0F) - int16(value&0x0F) - int16(borrow)
	hiBorrow := int16(0)
	if ln < 0 {
		ln = (ln - 6) & 0x0F
		hiBorrow = 1
	}
	hn := int16(c.A>>4) - int16(value>>4) - hiBorrow
	if hn < 0 {
		hn = (hn - 6) & 0x0F
	}
	c.setFlag(FlagCarry, diff >= 0)
	c.A = byte((hn<<4)&0xF0) | byte(ln&0x0F)
}

func (c *CPU) sbcBinary(value byte, borrow byte) {
	diff := int16(c.A) - int16(value) - int16(borrow)
	result := byte(diff)
	c.setFlag(FlagCarry, diff >= 0)
	c.setFlag(FlagOverflow, (int16(c.A)^int16(value))&(int16(c.A)^diff)&0x80 != 0)
	c.A = result
	c.updateNZ(c.A)
}

func (c *CPU) asl(v byte) byte {
	c.setFlag(FlagCarry, v&0x80 != 0)
	result := v << 1
	c.updateNZ(result)
	return result
}

func (c *CPU) lsr(v byte) byte {
	c.setFlag(FlagCarry, v&0x01 != 0)
	result := v >> 1
	c.updateNZ(result)
	return result
}

func (c *CPU) rol(v byte) byte {
	oldCarry := byte(0)
	if c.getFlag(FlagCarry) {
		oldCarry = 1
	}
	c.setFlag(FlagCarry, v&0x80 != 0)
	result := (v << 1) | oldCarry
	c.updateNZ(result)
	return result
}

func (c *CPU) ror(v byte) byte {
	oldCarry := byte(0)
	if c.getFlag(FlagCarry) {
		oldCarry = 0x80
	}
	c.setFlag(FlagCarry, v&0x01 != 0)
	result := (v >> 1) | oldCarry
	c.updateNZ(result)
	return result
}

func (c *CPU) compare(reg, value byte) {
	t := int16(reg) - int16(value)
	c.setFlag(FlagCarry, reg >= value)
	c.updateNZ(byte(t))
}

func (c *CPU) bit(value byte) {
	c.setFlag(FlagZero, c.A&value == 0)
	c.setFlag(FlagNegative, value&0x80 != 0)
	c.setFlag(FlagOverflow, value&0x40 != 0)
}

func (c *CPU) incByte(v byte) byte {
	v++
	c.updateNZ(v)
	return v
}

func (c *CPU) decByte(v byte) byte {
	v--
	c.updateNZ(v)
	return v
}
