package vm

import "fmt"

// Register indexes the V register file. Values always come from 4-bit
// instruction fields, so 0..15 holds by construction.
type Register byte

// Op enumerates the decoded instruction kinds. The executor switches over
// the full set; adding an Op without a handler trips the default case.
type Op byte

// decoded instruction kinds
const (
	OpClearScreen Op = iota // 00E0
	OpReturn                // 00EE
	OpJump                  // 1nnn
	OpCall                  // 2nnn
	OpSkipEqVal             // 3xkk
	OpSkipNeVal             // 4xkk
	OpSkipEqReg             // 5xy0
	OpSetVal                // 6xkk
	OpAddVal                // 7xkk
	OpCopy                  // 8xy0
	OpOr                    // 8xy1
	OpAnd                   // 8xy2
	OpXor                   // 8xy3
	OpAddReg                // 8xy4
	OpSub                   // 8xy5
	OpShiftRight            // 8xy6
	OpSubRev                // 8xy7
	OpShiftLeft             // 8xyE
	OpSkipNeReg             // 9xy0
	OpSetIndex              // Annn
	OpJumpV0                // Bnnn
	OpRandom                // Cxkk
	OpDraw                  // Dxyn
	OpSkipKey               // Ex9E
	OpSkipNoKey             // ExA1
	OpReadDelay             // Fx07
	OpWaitKey               // Fx0A
	OpSetDelay              // Fx15
	OpSetSound              // Fx18
	OpAddIndex              // Fx1E
	OpFontIndex             // Fx29
	OpStoreBCD              // Fx33
	OpStoreRegs             // Fx55
	OpLoadRegs              // Fx65
)

// Instruction is a decoded instruction word. Only the fields the Op uses
// carry meaning; the rest are zero.
type Instruction struct {
	Op  Op
	X   Register // second nibble, register operand
	Y   Register // third nibble, register operand
	N   byte     // fourth nibble
	KK  byte     // low byte immediate
	NNN uint16   // low 12 bits, address
}

// sub-dispatch tables for the 8xyN ALU group and the FxKK misc group,
// keyed by the selector nibble/byte
var (
	aluOps = map[byte]Op{
		0x0: OpCopy, 0x1: OpOr, 0x2: OpAnd, 0x3: OpXor,
		0x4: OpAddReg, 0x5: OpSub, 0x6: OpShiftRight,
		0x7: OpSubRev, 0xE: OpShiftLeft,
	}
	miscOps = map[byte]Op{
		0x07: OpReadDelay, 0x0A: OpWaitKey, 0x15: OpSetDelay,
		0x18: OpSetSound, 0x1E: OpAddIndex, 0x29: OpFontIndex,
		0x33: OpStoreBCD, 0x55: OpStoreRegs, 0x65: OpLoadRegs,
	}
)

// Decode classifies a 16 bit instruction word by its four nibbles.
// Unrecognized words fail with ErrUnknownOpcode carrying the raw value.
func Decode(word uint16) (Instruction, error) {
	in := Instruction{
		X:   Register(word >> 8 & 0x0F),
		Y:   Register(word >> 4 & 0x0F),
		N:   byte(word & 0x0F),
		KK:  byte(word),
		NNN: word & 0x0FFF,
	}

	// The 4-bit masks above keep register fields in range; this is the one
	// central place the invariant is checked.
	if in.X > 0x0F || in.Y > 0x0F {
		return Instruction{}, fmt.Errorf("instruction %#04x: %w", word, ErrInvalidRegister)
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			in.Op = OpClearScreen
			return in, nil
		case 0x00EE:
			in.Op = OpReturn
			return in, nil
		}
		// 0nnn (SYS) called native routines on the original COSMAC VIP
		// and is not implemented by modern interpreters.
	case 0x1:
		in.Op = OpJump
		return in, nil
	case 0x2:
		in.Op = OpCall
		return in, nil
	case 0x3:
		in.Op = OpSkipEqVal
		return in, nil
	case 0x4:
		in.Op = OpSkipNeVal
		return in, nil
	case 0x5:
		if in.N == 0 {
			in.Op = OpSkipEqReg
			return in, nil
		}
	case 0x6:
		in.Op = OpSetVal
		return in, nil
	case 0x7:
		in.Op = OpAddVal
		return in, nil
	case 0x8:
		if op, ok := aluOps[in.N]; ok {
			in.Op = op
			return in, nil
		}
	case 0x9:
		if in.N == 0 {
			in.Op = OpSkipNeReg
			return in, nil
		}
	case 0xA:
		in.Op = OpSetIndex
		return in, nil
	case 0xB:
		in.Op = OpJumpV0
		return in, nil
	case 0xC:
		in.Op = OpRandom
		return in, nil
	case 0xD:
		in.Op = OpDraw
		return in, nil
	case 0xE:
		switch in.KK {
		case 0x9E:
			in.Op = OpSkipKey
			return in, nil
		case 0xA1:
			in.Op = OpSkipNoKey
			return in, nil
		}
	case 0xF:
		if op, ok := miscOps[in.KK]; ok {
			in.Op = op
			return in, nil
		}
	}
	return Instruction{}, fmt.Errorf("instruction %#04x: %w", word, ErrUnknownOpcode)
}
