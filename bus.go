package six502

// Bus is the memory a CPU executes against: a byte-addressable space
// with no fault conditions. Reads and writes never fail; an
// out-of-range address cannot occur because addresses are uint16.
type Bus interface {
	ReadByte(addr uint16) byte
	WriteByte(addr uint16, value byte)
}

// Memory is a flat 64 KiB byte-addressable store, the default Bus
// implementation. There are no peripheral chips, no bank switching,
// no I/O page — every address behaves like plain RAM.
type Memory struct {
	data [65536]byte
}

// NewMemory returns an empty 64 KiB memory image.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) ReadByte(addr uint16) byte {
	return m.data[addr]
}

func (m *Memory) WriteByte(addr uint16, value byte) {
	m.data[addr] = value
}

// Load copies program into memory starting at addr, wrapping around
// 0xFFFF if the image runs past the top of the address space.
func (m *Memory) Load(addr uint16, program []byte) {
	for _, b := range program {
		m.data[addr] = b
		addr++
	}
}

// Bytes returns the full 64 KiB backing array for bulk inspection,
// e.g. loading a Klaus Dormann test ROM image in one shot.
func (m *Memory) Bytes() *[65536]byte {
	return &m.data
}
