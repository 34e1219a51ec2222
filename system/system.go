// Package system wires the execution core to a front end and drives the
// frame loop: poll input, run a tick batch, decrement the timers, render.
package system

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/retroenv/retrogolib/log"

	"chip8/screen"
	"chip8/vm"
)

const (
	// FrameRate - frames (and timer decrements) per second.
	FrameRate = 60

	// DefaultTicksPerFrame - instruction ticks per frame when the caller
	// does not choose one. A tick batch, not a simulated clock.
	DefaultTicksPerFrame = 10
)

// System owns the VM, the front end and the logger. Single-threaded: every
// VM call happens on the goroutine running the frame loop.
type System struct {
	VM *vm.VM

	screen        screen.Screen
	logger        *log.Logger
	ticksPerFrame int
}

// New wires a fresh machine to the given front end.
func New(scr screen.Screen, logger *log.Logger, ticksPerFrame int) *System {
	if ticksPerFrame <= 0 {
		ticksPerFrame = DefaultTicksPerFrame
	}
	return &System{
		VM:            vm.New(),
		screen:        scr,
		logger:        logger,
		ticksPerFrame: ticksPerFrame,
	}
}

// LoadROM reads a program image from disk and loads it at 0x200.
func (sys *System) LoadROM(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read ROM: %w", err)
	}
	if err := sys.VM.LoadProgram(data); err != nil {
		return err
	}
	sys.logger.Info("ROM loaded",
		log.String("path", path),
		log.Int("bytes", len(data)))
	return nil
}

// Run drives frames at FrameRate until the context is cancelled, the front
// end asks to quit or the core faults. The first core failure ends the run;
// whether that is fatal is decided here, not inside the core.
func (sys *System) Run(ctx context.Context) error {
	frame := time.NewTicker(time.Second / FrameRate)
	defer frame.Stop()

	for {
		select {
		case <-ctx.Done():
			sys.logger.Info("shutting down")
			return nil
		case <-frame.C:
			done, err := sys.Frame()
			if err != nil || done {
				return err
			}
		}
	}
}

// RunFrames executes n frames back to back without a wall clock, for
// headless runs and tests.
func (sys *System) RunFrames(n int) error {
	for i := 0; i < n; i++ {
		done, err := sys.Frame()
		if err != nil || done {
			return err
		}
	}
	return nil
}

// Frame executes one frame and reports whether the front end asked to quit.
func (sys *System) Frame() (bool, error) {
	events, quit := sys.screen.Poll()
	if quit {
		return true, nil
	}
	for _, ev := range events {
		if err := sys.VM.RecordKey(ev.Key, ev.Down); err != nil {
			sys.logger.Error("dropping key event", log.Err(err))
		}
	}

	if err := sys.VM.Run(sys.ticksPerFrame); err != nil {
		sys.logger.Error("execution fault",
			log.Err(err),
			log.Uint16("pc", sys.VM.PC()))
		return true, err
	}
	sys.VM.TickTimers()

	if err := sys.screen.Render(sys.VM.Framebuffer()); err != nil {
		return true, fmt.Errorf("could not render frame: %w", err)
	}
	if sd, ok := sys.screen.(screen.StatusDisplay); ok {
		sd.SetStatus(sys.VM.DumpRegisters(), sys.VM.TraceLines())
	}
	return false, nil
}
