package vm

import "fmt"

// operand layouts for the disassembly table
const (
	opndNone = iota
	opndAddr    // $nnn
	opndXKK     // Vx, $kk
	opndXY      // Vx, Vy
	opndXYN     // Vx, Vy, n
	opndX       // Vx
	opndIAddr   // I, $nnn
	opndV0Addr  // V0, $nnn
	opndXDT     // Vx, DT
	opndXKey    // Vx, K
	opndDTX     // DT, Vx
	opndSTX     // ST, Vx
	opndIX      // I, Vx
	opndFontX   // F, Vx
	opndBCDX    // B, Vx
	opndMemX    // [I], Vx
	opndXMem    // Vx, [I]
)

// disasmTable maps instruction words to Cowgod mnemonics. First match wins,
// so exact words come before masked groups.
var disasmTable = []struct {
	mask, value uint16
	msg         string
	opnd        int
}{
	{0xFFFF, 0x00E0, "CLS", opndNone},
	{0xFFFF, 0x00EE, "RET", opndNone},
	{0xF000, 0x1000, "JP", opndAddr},
	{0xF000, 0x2000, "CALL", opndAddr},
	{0xF000, 0x3000, "SE", opndXKK},
	{0xF000, 0x4000, "SNE", opndXKK},
	{0xF00F, 0x5000, "SE", opndXY},
	{0xF000, 0x6000, "LD", opndXKK},
	{0xF000, 0x7000, "ADD", opndXKK},
	{0xF00F, 0x8000, "LD", opndXY},
	{0xF00F, 0x8001, "OR", opndXY},
	{0xF00F, 0x8002, "AND", opndXY},
	{0xF00F, 0x8003, "XOR", opndXY},
	{0xF00F, 0x8004, "ADD", opndXY},
	{0xF00F, 0x8005, "SUB", opndXY},
	{0xF00F, 0x8006, "SHR", opndX},
	{0xF00F, 0x8007, "SUBN", opndXY},
	{0xF00F, 0x800E, "SHL", opndX},
	{0xF00F, 0x9000, "SNE", opndXY},
	{0xF000, 0xA000, "LD", opndIAddr},
	{0xF000, 0xB000, "JP", opndV0Addr},
	{0xF000, 0xC000, "RND", opndXKK},
	{0xF000, 0xD000, "DRW", opndXYN},
	{0xF0FF, 0xE09E, "SKP", opndX},
	{0xF0FF, 0xE0A1, "SKNP", opndX},
	{0xF0FF, 0xF007, "LD", opndXDT},
	{0xF0FF, 0xF00A, "LD", opndXKey},
	{0xF0FF, 0xF015, "LD", opndDTX},
	{0xF0FF, 0xF018, "LD", opndSTX},
	{0xF0FF, 0xF01E, "ADD", opndIX},
	{0xF0FF, 0xF029, "LD", opndFontX},
	{0xF0FF, 0xF033, "LD", opndBCDX},
	{0xF0FF, 0xF055, "LD", opndMemX},
	{0xF0FF, 0xF065, "LD", opndXMem},
}

// Disasm renders an instruction word as assembly. Words the decoder would
// reject come back as a raw data word directive.
func Disasm(word uint16) string {
	x := word >> 8 & 0x0F
	y := word >> 4 & 0x0F
	n := word & 0x0F
	kk := byte(word)
	nnn := word & 0x0FFF

	for _, l := range disasmTable {
		if word&l.mask != l.value {
			continue
		}
		switch l.opnd {
		case opndNone:
			return l.msg
		case opndAddr:
			return fmt.Sprintf("%s $%03X", l.msg, nnn)
		case opndXKK:
			return fmt.Sprintf("%s V%X, $%02X", l.msg, x, kk)
		case opndXY:
			return fmt.Sprintf("%s V%X, V%X", l.msg, x, y)
		case opndXYN:
			return fmt.Sprintf("%s V%X, V%X, %d", l.msg, x, y, n)
		case opndX:
			return fmt.Sprintf("%s V%X", l.msg, x)
		case opndIAddr:
			return fmt.Sprintf("%s I, $%03X", l.msg, nnn)
		case opndV0Addr:
			return fmt.Sprintf("%s V0, $%03X", l.msg, nnn)
		case opndXDT:
			return fmt.Sprintf("%s V%X, DT", l.msg, x)
		case opndXKey:
			return fmt.Sprintf("%s V%X, K", l.msg, x)
		case opndDTX:
			return fmt.Sprintf("%s DT, V%X", l.msg, x)
		case opndSTX:
			return fmt.Sprintf("%s ST, V%X", l.msg, x)
		case opndIX:
			return fmt.Sprintf("%s I, V%X", l.msg, x)
		case opndFontX:
			return fmt.Sprintf("%s F, V%X", l.msg, x)
		case opndBCDX:
			return fmt.Sprintf("%s B, V%X", l.msg, x)
		case opndMemX:
			return fmt.Sprintf("%s [I], V%X", l.msg, x)
		case opndXMem:
			return fmt.Sprintf("%s V%X, [I]", l.msg, x)
		}
	}
	return fmt.Sprintf("DW $%04X", word)
}
