package vm

import (
	"errors"
	"strings"
	"testing"
)

// clear screen, V0 := 12, V1 := 8, draw the 5 row sprite at I at (V0, V1)
var glyphROM = []uint16{0x00E0, 0x600C, 0x6108, 0xD015}

func TestVM_GlyphEndToEnd(t *testing.T) {
	v := testVM(t, glyphROM...)
	v.index = FontAddress(0)

	if err := v.Run(4); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// the "0" glyph bitmap must appear at offset (12, 8)
	for row := 0; row < glyphHeight; row++ {
		bits := font[row]
		for col := 0; col < 8; col++ {
			want := bits&(0x80>>col) != 0
			got := v.display.Pixel(12+col, 8+row)
			if got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", 12+col, 8+row, got, want)
			}
		}
	}
	if v.regs[FlagRegister] != 0 {
		t.Errorf("VF = %d, want 0 (no collision on a cleared screen)", v.regs[FlagRegister])
	}
}

func TestVM_NewLoadsFont(t *testing.T) {
	v := New()
	for i, b := range font {
		if v.memory.bytes[FontStart+i] != b {
			t.Fatalf("font byte %d = %#02x, want %#02x", i, v.memory.bytes[FontStart+i], b)
		}
	}
	if v.pc != 0 {
		t.Errorf("PC = %#04x before load, want 0", v.pc)
	}
}

func TestVM_LoadProgram(t *testing.T) {
	v := New()
	program := make([]byte, MemorySize-ProgramStart)
	program[0] = 0x12
	if err := v.LoadProgram(program); err != nil {
		t.Fatalf("LoadProgram() error = %v", err)
	}
	if v.pc != ProgramStart {
		t.Errorf("PC = %#04x, want %#04x", v.pc, ProgramStart)
	}
	if v.memory.bytes[ProgramStart] != 0x12 {
		t.Error("program bytes not copied")
	}
}

func TestVM_LoadProgramTooLarge(t *testing.T) {
	v := New()
	v.pc = 0x456

	err := v.LoadProgram(make([]byte, MemorySize-ProgramStart+1))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("LoadProgram() error = %v, want ErrCapacityExceeded", err)
	}
	if v.pc != 0x456 {
		t.Errorf("PC = %#04x changed by a failed load", v.pc)
	}
}

func TestVM_LoadProgramKeepsMachineState(t *testing.T) {
	v := testVM(t, 0x6107) // LD V1, $07
	if err := v.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	v.stack.Push(0x321)
	v.timers.SetDelay(9)

	// loading a new program resets only the PC and the program region
	if err := v.LoadProgram([]byte{0x00, 0xE0}); err != nil {
		t.Fatalf("LoadProgram() error = %v", err)
	}
	if v.pc != ProgramStart {
		t.Errorf("PC = %#04x, want %#04x", v.pc, ProgramStart)
	}
	if v.regs[1] != 7 {
		t.Errorf("V1 = %d, registers must survive a load", v.regs[1])
	}
	if v.stack.Depth() != 1 {
		t.Errorf("stack depth = %d, stack must survive a load", v.stack.Depth())
	}
	if v.timers.Delay() != 9 {
		t.Errorf("delay = %d, timers must survive a load", v.timers.Delay())
	}
}

func TestVM_FramebufferSnapshot(t *testing.T) {
	v := testVM(t, 0xF029, 0xD005) // LD F,V0; DRW V0,V0,5
	if err := v.Run(2); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	frame := v.Framebuffer()
	if len(frame) != DisplayWidth*DisplayHeight {
		t.Fatalf("frame has %d pixels", len(frame))
	}
	if !frame[0] {
		t.Error("glyph pixel missing from the snapshot")
	}
	frame[0] = false
	if !v.display.Pixel(0, 0) {
		t.Error("snapshot aliases the framebuffer")
	}
}

func TestVM_Trace(t *testing.T) {
	v := testVM(t, 0x6001, 0x6102, 0x6203)
	v.EnableTrace(2)

	if err := v.Run(3); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	lines := v.TraceLines()
	if len(lines) != 2 {
		t.Fatalf("trace kept %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], "LD V2, $03") {
		t.Errorf("last trace line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[1], "0204") {
		t.Errorf("last trace line = %q, want the instruction address first", lines[1])
	}
}

func TestVM_DumpRegisters(t *testing.T) {
	v := testVM(t, 0x6A42)
	if err := v.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}

	dump := v.DumpRegisters()
	for _, part := range []string{"VA 42", "PC 0202", "I 0000", "SP 0"} {
		if !strings.Contains(dump, part) {
			t.Errorf("DumpRegisters() = %q, missing %q", dump, part)
		}
	}
}

func TestVM_RecordKeyRejectsBadKey(t *testing.T) {
	v := New()
	if err := v.RecordKey(16, true); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("RecordKey(16) error = %v, want ErrOutOfBounds", err)
	}
	if err := v.RecordKey(15, true); err != nil {
		t.Errorf("RecordKey(15) error = %v", err)
	}
}
