package six502

import "testing"

func TestADCBinaryOverflow(t *testing.T) {
	r := newRig(t)
	r.cpu.PowerUp()
	r.cpu.A = 0x50
	r.cpu.setFlag(FlagCarry, false)
	r.cpu.adc(0x50)

	if r.cpu.A != 0xA0 {
		t.Fatalf("A = %02X, want A0", r.cpu.A)
	}
	if !r.cpu.getFlag(FlagOverflow) {
		t.Fatalf("V not set")
	}
	if !r.cpu.getFlag(FlagNegative) {
		t.Fatalf("N not set")
	}
	if r.cpu.getFlag(FlagZero) {
		t.Fatalf("Z set unexpectedly")
	}
	if r.cpu.getFlag(FlagCarry) {
		t.Fatalf("C set unexpectedly")
	}
}

func TestSBCBinary(t *testing.T) {
	r := newRig(t)
	r.cpu.PowerUp()
	r.cpu.A = 0x50
	r.cpu.setFlag(FlagCarry, true)
	r.cpu.sbc(0xF0)

	if r.cpu.A != 0x60 {
		t.Fatalf("A = %02X, want 60", r.cpu.A)
	}
	if r.cpu.getFlag(FlagOverflow) {
		t.Fatalf("V set unexpectedly")
	}
	if r.cpu.getFlag(FlagNegative) {
		t.Fatalf("N set unexpectedly")
	}
	if r.cpu.getFlag(FlagZero) {
		t.Fatalf("Z set unexpectedly")
	}
	if r.cpu.getFlag(FlagCarry) {
		t.Fatalf("C set unexpectedly")
	}
}

func TestADCDecimalZFromBinaryIntermediate(t *testing.T) {
	r := newRig(t)
	r.cpu.PowerUp()
	r.cpu.setFlag(FlagDecimal, true)
	r.cpu.A = 0x99
	r.cpu.setFlag(FlagCarry, false)
	r.cpu.adc(0x01)

	if r.cpu.A != 0x00 {
		t.Fatalf("A = %02X, want 00", r.cpu.A)
	}
	if !r.cpu.getFlag(FlagCarry) {
		t.Fatalf("C not set")
	}
	if r.cpu.getFlag(FlagZero) {
		t.Fatalf("Z set, but Klaus's rule derives Z from the binary sum 0x9A (nonzero)")
	}
}

func TestADCDecimalNVFromPartiallyCorrectedHighNibble(t *testing.T) {
	// A=0x79, M=0x01, C=0: the plain binary sum 0x7A has bit 7 clear, so
	// a naive tbin-derived N/V would read false/false. The actual high
	// nibble after low-nibble BCD correction (but before the final
	// >0x90 adjustment) is 0x80, which disagrees with tbin on both
	// flags — this is what the spec's hn<<4 rule actually requires.
	r := newRig(t)
	r.cpu.PowerUp()
	r.cpu.setFlag(FlagDecimal, true)
	r.cpu.A = 0x79
	r.cpu.setFlag(FlagCarry, false)
	r.cpu.adc(0x01)

	if r.cpu.A != 0x80 {
		t.Fatalf("A = %02X, want 80", r.cpu.A)
	}
	if r.cpu.getFlag(FlagCarry) {
		t.Fatalf("C set unexpectedly")
	}
	if !r.cpu.getFlag(FlagNegative) {
		t.Fatalf("N not set; must come from the partially corrected high nibble (0x80), not the binary sum (0x7A)")
	}
	if !r.cpu.getFlag(FlagOverflow) {
		t.Fatalf("V not set; must come from the partially corrected high nibble, not the binary sum")
	}
	if r.cpu.getFlag(FlagZero) {
		t.Fatalf("Z set unexpectedly")
	}
}

func TestCompareLaw(t *testing.T) {
	r := newRig(t)
	r.cpu.PowerUp()

	cases := []struct{ a, m byte }{
		{0x10, 0x10}, {0x10, 0x05}, {0x05, 0x10}, {0x00, 0x00}, {0xFF, 0x01},
	}
	for _, c := range cases {
		r.cpu.compare(c.a, c.m)
		wantC := c.a >= c.m
		wantZ := c.a == c.m
		if r.cpu.getFlag(FlagCarry) != wantC {
			t.Errorf("compare(%02X,%02X) C = %v, want %v", c.a, c.m, r.cpu.getFlag(FlagCarry), wantC)
		}
		if r.cpu.getFlag(FlagZero) != wantZ {
			t.Errorf("compare(%02X,%02X) Z = %v, want %v", c.a, c.m, r.cpu.getFlag(FlagZero), wantZ)
		}
	}
}

func TestBITLaw(t *testing.T) {
	r := newRig(t)
	r.cpu.PowerUp()
	r.cpu.A = 0x0F
	r.cpu.bit(0xC0)

	if !r.cpu.getFlag(FlagZero) {
		t.Fatalf("Z not set for A&M==0")
	}
	if !r.cpu.getFlag(FlagNegative) {
		t.Fatalf("N should mirror bit 7 of M")
	}
	if !r.cpu.getFlag(FlagOverflow) {
		t.Fatalf("V should mirror bit 6 of M")
	}
	if r.cpu.A != 0x0F {
		t.Fatalf("BIT must not modify A")
	}
}

func TestShiftsSetCarryFromVacatedBit(t *testing.T) {
	r := newRig(t)
	r.cpu.PowerUp()

	if got := r.cpu.asl(0x81); got != 0x02 || !r.cpu.getFlag(FlagCarry) {
		t.Fatalf("asl(81) = %02X C=%v, want 02 C=true", got, r.cpu.getFlag(FlagCarry))
	}
	if got := r.cpu.lsr(0x01); got != 0x00 || !r.cpu.getFlag(FlagCarry) {
		t.Fatalf("lsr(01) = %02X C=%v, want 00 C=true", got, r.cpu.getFlag(FlagCarry))
	}
}

func TestRotatesCarryThroughBit(t *testing.T) {
	r := newRig(t)
	r.cpu.PowerUp()
	r.cpu.setFlag(FlagCarry, true)

	got := r.cpu.rol(0x40)
	if got != 0x81 {
		t.Fatalf("rol(40) with C=1 = %02X, want 81", got)
	}
	if r.cpu.getFlag(FlagCarry) {
		t.Fatalf("rol(40) should clear carry (bit 7 of input was 0)")
	}
}
