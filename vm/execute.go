package vm

import "fmt"

// execute runs one decoded instruction against the machine state. The PC has
// already been advanced past the instruction, so jumps, calls and returns
// simply overwrite it.
func (v *VM) execute(in Instruction) error {
	switch in.Op {
	case OpClearScreen:
		v.display.Clear()

	case OpReturn:
		addr, err := v.stack.Pop()
		if err != nil {
			return err
		}
		v.pc = addr

	case OpJump:
		v.pc = in.NNN

	case OpJumpV0:
		v.pc = in.NNN + uint16(v.regs[0])

	case OpCall:
		v.stack.Push(v.pc)
		v.pc = in.NNN

	case OpSkipEqVal:
		v.skipIf(v.regs[in.X] == in.KK)

	case OpSkipNeVal:
		v.skipIf(v.regs[in.X] != in.KK)

	case OpSkipEqReg:
		v.skipIf(v.regs[in.X] == v.regs[in.Y])

	case OpSkipNeReg:
		v.skipIf(v.regs[in.X] != v.regs[in.Y])

	case OpSetVal:
		v.regs[in.X] = in.KK

	case OpAddVal:
		// wraps at 8 bits, leaves VF alone
		v.regs[in.X] += in.KK

	case OpCopy:
		v.regs[in.X] = v.regs[in.Y]

	case OpOr:
		v.regs[in.X] |= v.regs[in.Y]

	case OpAnd:
		v.regs[in.X] &= v.regs[in.Y]

	case OpXor:
		v.regs[in.X] ^= v.regs[in.Y]

	case OpAddReg:
		sum := uint16(v.regs[in.X]) + uint16(v.regs[in.Y])
		v.regs[in.X] = byte(sum)
		v.setFlag(sum > 0xFF)

	case OpSub:
		noBorrow := v.regs[in.X] >= v.regs[in.Y]
		v.regs[in.X] -= v.regs[in.Y]
		v.setFlag(noBorrow)

	case OpSubRev:
		noBorrow := v.regs[in.Y] >= v.regs[in.X]
		v.regs[in.X] = v.regs[in.Y] - v.regs[in.X]
		v.setFlag(noBorrow)

	case OpShiftRight:
		// modern variant: shifts Vx in place, Vy ignored
		bit := v.regs[in.X] & 0x01
		v.regs[in.X] >>= 1
		v.setFlag(bit == 1)

	case OpShiftLeft:
		bit := v.regs[in.X] >> 7
		v.regs[in.X] <<= 1
		v.setFlag(bit == 1)

	case OpSetIndex:
		v.index = in.NNN

	case OpAddIndex:
		// no carry flag, matching the common interpreter behaviour
		v.index += uint16(v.regs[in.X])

	case OpRandom:
		v.regs[in.X] = byte(v.rand.Intn(0x100)) & in.KK

	case OpDraw:
		return v.drawSprite(in.X, in.Y, in.N)

	case OpSkipKey:
		v.skipIf(v.keypad.Pressed(v.regs[in.X]))

	case OpSkipNoKey:
		v.skipIf(!v.keypad.Pressed(v.regs[in.X]))

	case OpReadDelay:
		v.regs[in.X] = v.timers.Delay()

	case OpWaitKey:
		key, ok := v.keypad.FirstPressed()
		if !ok {
			// no key down yet: rewind so the instruction retries next tick
			v.pc -= 2
			return nil
		}
		v.regs[in.X] = key

	case OpSetDelay:
		v.timers.SetDelay(v.regs[in.X])

	case OpSetSound:
		v.timers.SetSound(v.regs[in.X])

	case OpFontIndex:
		v.index = FontAddress(v.regs[in.X])

	case OpStoreBCD:
		val := v.regs[in.X]
		for i, digit := range [3]byte{val / 100, val / 10 % 10, val % 10} {
			if err := v.memory.WriteByte(v.index+uint16(i), digit); err != nil {
				return err
			}
		}

	case OpStoreRegs:
		// modern variant: I itself is not advanced
		for i := Register(0); i <= in.X; i++ {
			if err := v.memory.WriteByte(v.index+uint16(i), v.regs[i]); err != nil {
				return err
			}
		}

	case OpLoadRegs:
		for i := Register(0); i <= in.X; i++ {
			val, err := v.memory.ReadByte(v.index + uint16(i))
			if err != nil {
				return err
			}
			v.regs[i] = val
		}

	default:
		return fmt.Errorf("no handler for decoded op %d: %w", in.Op, ErrUnknownOpcode)
	}
	return nil
}

// skipIf advances the PC over the next instruction when cond holds.
func (v *VM) skipIf(cond bool) {
	if cond {
		v.pc += 2
	}
}

// setFlag writes the carry/borrow/collision flag register VF.
func (v *VM) setFlag(on bool) {
	if on {
		v.regs[FlagRegister] = 1
	} else {
		v.regs[FlagRegister] = 0
	}
}

// drawSprite XORs an n-row sprite read from memory[I] onto the display at
// origin (Vx mod 64, Vy mod 32). VF reports whether any lit pixel was turned
// off. Sprites clip at the edges rather than wrapping: columns past the
// right edge end the row, rows past the bottom edge end the draw.
func (v *VM) drawSprite(xr, yr Register, rows byte) error {
	startX := int(v.regs[xr]) & (DisplayWidth - 1)
	startY := int(v.regs[yr]) & (DisplayHeight - 1)
	v.setFlag(false)

	for row := 0; row < int(rows); row++ {
		y := startY + row
		if y >= DisplayHeight {
			break
		}
		bits, err := v.memory.ReadByte(v.index + uint16(row))
		if err != nil {
			return err
		}
		for col := 0; col < 8; col++ {
			x := startX + col
			if x >= DisplayWidth {
				break
			}
			flip := bits&(0x80>>col) != 0
			turnedOff, err := v.display.Draw(x, y, flip)
			if err != nil {
				return err
			}
			if turnedOff {
				v.regs[FlagRegister] = 1
			}
		}
	}
	return nil
}
