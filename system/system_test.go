package system

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"chip8/logger"
	"chip8/screen"
	"chip8/vm"
)

// stubScreen scripts poll results for one frame and records renders.
type stubScreen struct {
	events  []screen.KeyEvent
	quit    bool
	renders int
}

func (s *stubScreen) Render(frame []bool) error {
	s.renders++
	return nil
}

func (s *stubScreen) Poll() ([]screen.KeyEvent, bool) {
	events := s.events
	s.events = nil
	return events, s.quit
}

func (s *stubScreen) Close() {}

// writeROM stores instruction words as a big-endian ROM file.
func writeROM(t *testing.T, words ...uint16) string {
	t.Helper()
	data := make([]byte, 0, 2*len(words))
	for _, w := range words {
		data = append(data, byte(w>>8), byte(w))
	}
	path := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("could not write ROM: %v", err)
	}
	return path
}

func TestSystem_RunFrames(t *testing.T) {
	scr := screen.NewHeadless()
	sys := New(scr, logger.New(false, true), 2)

	if err := sys.LoadROM(writeROM(t, 0x1200)); err != nil { // JP $200
		t.Fatalf("LoadROM() error = %v", err)
	}
	if err := sys.RunFrames(3); err != nil {
		t.Fatalf("RunFrames() error = %v", err)
	}
	if scr.Frames() != 3 {
		t.Errorf("rendered %d frames, want 3", scr.Frames())
	}
}

func TestSystem_FaultStopsRun(t *testing.T) {
	sys := New(screen.NewHeadless(), logger.New(false, true), 1)

	if err := sys.LoadROM(writeROM(t, 0x0000)); err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}
	err := sys.RunFrames(5)
	if !errors.Is(err, vm.ErrUnknownOpcode) {
		t.Errorf("RunFrames() error = %v, want ErrUnknownOpcode", err)
	}
}

func TestSystem_QuitStopsFrames(t *testing.T) {
	scr := &stubScreen{quit: true}
	sys := New(scr, logger.New(false, true), 1)

	if err := sys.LoadROM(writeROM(t, 0x1200)); err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}
	if err := sys.RunFrames(5); err != nil {
		t.Fatalf("RunFrames() error = %v", err)
	}
	if scr.renders != 0 {
		t.Errorf("rendered %d frames after quit", scr.renders)
	}
}

func TestSystem_KeyEventsReachTheCore(t *testing.T) {
	// LD V0, $05 then SKP V0: with key 5 down the skip is taken
	scr := &stubScreen{events: []screen.KeyEvent{{Key: 0x5, Down: true}}}
	sys := New(scr, logger.New(false, true), 2)

	if err := sys.LoadROM(writeROM(t, 0x6005, 0xE09E)); err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}
	if err := sys.RunFrames(1); err != nil {
		t.Fatalf("RunFrames() error = %v", err)
	}
	if want := uint16(0x206); sys.VM.PC() != want {
		t.Errorf("PC = %#04x, want %#04x (skip taken)", sys.VM.PC(), want)
	}
}

func TestSystem_LoadROMMissingFile(t *testing.T) {
	sys := New(screen.NewHeadless(), logger.New(false, true), 1)
	if err := sys.LoadROM(filepath.Join(t.TempDir(), "missing.ch8")); err == nil {
		t.Error("LoadROM() succeeded on a missing file")
	}
}

func TestSystem_RunStopsOnCancel(t *testing.T) {
	sys := New(screen.NewHeadless(), logger.New(false, true), 1)
	if err := sys.LoadROM(writeROM(t, 0x1200)); err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sys.Run(ctx); err != nil {
		t.Errorf("Run() error = %v, want nil on cancel", err)
	}
}
