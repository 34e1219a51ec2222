package vm

import "errors"

// Error kinds reported by the core. All of them surface synchronously at the
// Run boundary; the driver decides whether a failure halts the program.
var (
	// ErrOutOfBounds - an address or pixel coordinate points past a
	// fixed-size store.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrCapacityExceeded - a program load would overflow memory.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrStackUnderflow - RET with an empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")

	// ErrUnknownOpcode - the decoder cannot classify an instruction word.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrInvalidRegister - a register index outside 0..15. Structurally
	// impossible for 4-bit fields, validated once in the decoder anyway.
	ErrInvalidRegister = errors.New("invalid register")
)
