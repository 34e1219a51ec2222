package vm

import "fmt"

// NumKeys - the CHIP-8 hex keypad has 16 keys, 0x0..0xF.
const NumKeys = 16

// Keypad mirrors the pressed state of the 16 key hex pad. The external
// event source records transitions; SKP/SKNP/LD Vx,K read them. Last write
// for a key wins within a frame.
type Keypad struct {
	pressed [NumKeys]bool
}

// RecordKey stores a key transition reported by the front end.
func (k *Keypad) RecordKey(key byte, down bool) error {
	if key >= NumKeys {
		return fmt.Errorf("key %#x outside the %d key pad: %w", key, NumKeys, ErrOutOfBounds)
	}
	k.pressed[key] = down
	return nil
}

// Pressed reports whether key & 0xF is currently down.
func (k *Keypad) Pressed(key byte) bool {
	return k.pressed[key&0x0F]
}

// FirstPressed returns the lowest key id currently down.
func (k *Keypad) FirstPressed() (byte, bool) {
	for i := byte(0); i < NumKeys; i++ {
		if k.pressed[i] {
			return i, true
		}
	}
	return 0, false
}
