// Package vm implements the CHIP-8 execution core: memory, register file,
// call stack, timers, framebuffer, keypad state and the fetch/decode/execute
// interpreter driving them. The package has no opinion about windows,
// keyboards or clocks; an external driver loads a program, calls Run with a
// tick batch once per frame, feeds key transitions and decrements the timers.
package vm

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// register file constants
const (
	// NumRegisters - V0..VF.
	NumRegisters = 16

	// FlagRegister - VF doubles as the carry/borrow/collision flag and is
	// overwritten by the instructions that produce one.
	FlagRegister Register = 0x0F
)

// VM owns the whole machine state. All mutation happens on the caller's
// goroutine; the driver must not call into it concurrently.
type VM struct {
	memory  Memory
	display Display
	stack   callStack
	keypad  Keypad
	timers  Timers

	regs  [NumRegisters]byte
	index uint16
	pc    uint16

	rand  *rand.Rand
	trace *Trace
}

// New returns a machine with the font glyphs in low memory and everything
// else zeroed. No program is loaded; Run before LoadProgram faults with an
// unknown opcode on the zeroed program region.
func New() *VM {
	v := &VM{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	copy(v.memory.bytes[FontStart:], font[:])
	return v
}

// LoadProgram copies a program image to 0x200 and resets the PC there.
// Registers, stack, display and timers are deliberately left as they are,
// so a load over a paused machine resumes cleanly; callers wanting a cold
// start create a fresh VM.
func (v *VM) LoadProgram(data []byte) error {
	if err := v.memory.Load(ProgramStart, data); err != nil {
		return fmt.Errorf("could not load program: %w", err)
	}
	v.pc = ProgramStart
	return nil
}

// Run executes up to ticks fetch/decode/execute cycles. The first failure
// stops the batch and is returned; cycles already executed stay applied.
func (v *VM) Run(ticks int) error {
	for i := 0; i < ticks; i++ {
		if err := v.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step runs a single fetch/decode/execute cycle.
func (v *VM) Step() error {
	at := v.pc
	word, err := v.fetch()
	if err != nil {
		return err
	}
	in, err := Decode(word)
	if err != nil {
		return err
	}
	if v.trace != nil {
		v.trace.Append(fmt.Sprintf("%04x  %04x  %s", at, word, Disasm(word)))
	}
	return v.execute(in)
}

// fetch reads the instruction word at the PC and advances the PC past it,
// so control flow instructions can overwrite it.
func (v *VM) fetch() (uint16, error) {
	word, err := v.memory.ReadWord(v.pc)
	if err != nil {
		return 0, err
	}
	v.pc += 2
	return word, nil
}

// Framebuffer returns a row-major snapshot of the 64x32 display for the
// renderer.
func (v *VM) Framebuffer() []bool {
	return v.display.Snapshot()
}

// RecordKey stores a key transition from the external event source.
func (v *VM) RecordKey(key byte, down bool) error {
	return v.keypad.RecordKey(key, down)
}

// TickTimers decrements the delay and sound counters once. The driver calls
// this at its frame rate, decoupled from the instruction tick rate.
func (v *VM) TickTimers() {
	v.timers.Tick()
}

// SoundActive reports whether the sound timer is running.
func (v *VM) SoundActive() bool {
	return v.timers.SoundActive()
}

// PC returns the current program counter.
func (v *VM) PC() uint16 {
	return v.pc
}

// EnableTrace starts recording the most recent depth executed instructions.
func (v *VM) EnableTrace(depth int) {
	v.trace = NewTrace(depth)
}

// TraceLines returns the recorded instruction trace, oldest first.
func (v *VM) TraceLines() []string {
	if v.trace == nil {
		return nil
	}
	return v.trace.Lines()
}

// DumpRegisters renders the register file for the status display.
func (v *VM) DumpRegisters() string {
	var res strings.Builder
	for i, reg := range v.regs {
		fmt.Fprintf(&res, "V%X %02x ", i, reg)
	}
	fmt.Fprintf(&res, " I %04x  PC %04x  SP %d", v.index, v.pc, v.stack.Depth())
	return res.String()
}
