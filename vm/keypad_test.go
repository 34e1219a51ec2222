package vm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypad(t *testing.T) {
	var k Keypad

	_, ok := k.FirstPressed()
	assert.False(t, ok)

	assert.NoError(t, k.RecordKey(0xB, true))
	assert.NoError(t, k.RecordKey(0x3, true))
	assert.True(t, k.Pressed(0xB))
	assert.True(t, k.Pressed(0x3))
	assert.False(t, k.Pressed(0x0))

	// lowest pressed key wins
	key, ok := k.FirstPressed()
	assert.True(t, ok)
	assert.Equal(t, byte(0x3), key)

	// last write wins
	assert.NoError(t, k.RecordKey(0x3, false))
	assert.False(t, k.Pressed(0x3))

	assert.Error(t, k.RecordKey(NumKeys, true))
}

func TestCallStack(t *testing.T) {
	var s callStack

	s.Push(0x202)
	s.Push(0x300)
	assert.Equal(t, 2, s.Depth())

	addr, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x300), addr)

	addr, err = s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x202), addr)

	_, err = s.Pop()
	assert.Error(t, err)
}
