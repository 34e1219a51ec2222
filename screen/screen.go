// Package screen holds the front ends of the emulator. The core knows
// nothing about them; anything able to render a 64x32 frame and report key
// transitions can drive the machine, including nothing at all (headless).
package screen

import "chip8/vm"

// KeyEvent is one key transition on the 16 key hex pad.
type KeyEvent struct {
	Key  byte
	Down bool
}

// Screen is the contract between the frame loop and a front end.
type Screen interface {
	// Render displays a row-major 64x32 framebuffer snapshot.
	Render(frame []bool) error

	// Poll returns the key transitions since the last call and whether the
	// user asked to quit.
	Poll() ([]KeyEvent, bool)

	// Close releases the front end resources.
	Close()
}

// StatusDisplay is implemented by front ends that can show machine state
// next to the framebuffer.
type StatusDisplay interface {
	SetStatus(registers string, trace []string)
}

// interface checks
var (
	_ Screen = (*SDL)(nil)
	_ Screen = (*TUI)(nil)
	_ Screen = (*Headless)(nil)

	_ StatusDisplay = (*TUI)(nil)
)

// frameSize is the expected snapshot length.
const frameSize = vm.DisplayWidth * vm.DisplayHeight
