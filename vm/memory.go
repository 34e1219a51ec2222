package vm

import "fmt"

// memory layout constants
const (
	// MemorySize - CHIP-8 machines address 4KB of RAM.
	MemorySize = 4096

	// ProgramStart - programs load and begin execution at 0x200. Everything
	// below is reserved for the interpreter (font data lives there).
	ProgramStart = 0x200

	// FontStart - base address of the built-in hex digit glyphs.
	FontStart = 0x050
)

// Memory is the flat bounds-checked byte store of the machine.
type Memory struct {
	bytes [MemorySize]byte
}

// ReadWord returns the big-endian 16 bit word stored at addr, addr+1.
func (m *Memory) ReadWord(addr uint16) (uint16, error) {
	if int(addr)+1 >= MemorySize {
		return 0, fmt.Errorf("word read at %#04x, memory size %#04x: %w",
			addr, MemorySize, ErrOutOfBounds)
	}
	return uint16(m.bytes[addr])<<8 | uint16(m.bytes[addr+1]), nil
}

// ReadByte returns the byte stored at addr.
func (m *Memory) ReadByte(addr uint16) (byte, error) {
	if int(addr) >= MemorySize {
		return 0, fmt.Errorf("byte read at %#04x, memory size %#04x: %w",
			addr, MemorySize, ErrOutOfBounds)
	}
	return m.bytes[addr], nil
}

// WriteByte stores b at addr.
func (m *Memory) WriteByte(addr uint16, b byte) error {
	if int(addr) >= MemorySize {
		return fmt.Errorf("byte write at %#04x, memory size %#04x: %w",
			addr, MemorySize, ErrOutOfBounds)
	}
	m.bytes[addr] = b
	return nil
}

// Load copies data into memory starting at base. The copy is all or
// nothing: if data does not fit, memory is left untouched.
func (m *Memory) Load(base uint16, data []byte) error {
	if int(base)+len(data) > MemorySize {
		return fmt.Errorf("%d bytes at %#04x do not fit into memory of %d bytes: %w",
			len(data), base, MemorySize, ErrCapacityExceeded)
	}
	copy(m.bytes[base:], data)
	return nil
}
