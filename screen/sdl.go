package screen

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"chip8/vm"
)

const windowTitle = "chip8"

// sdlKeymap maps the conventional COSMAC keyboard layout
//
//	1 2 3 4        1 2 3 C
//	Q W E R   to   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
//
// onto the hex pad.
var sdlKeymap = map[sdl.Scancode]byte{
	sdl.SCANCODE_1: 0x1, sdl.SCANCODE_2: 0x2, sdl.SCANCODE_3: 0x3, sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_Q: 0x4, sdl.SCANCODE_W: 0x5, sdl.SCANCODE_E: 0x6, sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_A: 0x7, sdl.SCANCODE_S: 0x8, sdl.SCANCODE_D: 0x9, sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_Z: 0xA, sdl.SCANCODE_X: 0x0, sdl.SCANCODE_C: 0xB, sdl.SCANCODE_V: 0xF,
}

// SDL renders the framebuffer into a scaled SDL2 window, one filled
// rectangle per lit pixel.
type SDL struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
}

// NewSDL opens the emulator window at the given pixel scale.
func NewSDL(scale int32) (*SDL, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid window scale %d", scale)
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("could not initialize SDL: %w", err)
	}

	window, err := sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		vm.DisplayWidth*scale, vm.DisplayHeight*scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("could not create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("could not create renderer: %w", err)
	}

	return &SDL{window: window, renderer: renderer, scale: scale}, nil
}

// Render draws one frame.
func (s *SDL) Render(frame []bool) error {
	if len(frame) != frameSize {
		return fmt.Errorf("frame has %d pixels, want %d", len(frame), frameSize)
	}
	if err := s.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := s.renderer.Clear(); err != nil {
		return err
	}
	if err := s.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return err
	}
	for i, lit := range frame {
		if !lit {
			continue
		}
		x := int32(i%vm.DisplayWidth) * s.scale
		y := int32(i/vm.DisplayWidth) * s.scale
		rect := sdl.Rect{X: x, Y: y, W: s.scale, H: s.scale}
		if err := s.renderer.FillRect(&rect); err != nil {
			return err
		}
	}
	s.renderer.Present()
	return nil
}

// Poll drains the SDL event queue into key transitions.
func (s *SDL) Poll() ([]KeyEvent, bool) {
	var events []KeyEvent
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return events, true

		case *sdl.KeyboardEvent:
			if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return events, true
			}
			key, ok := sdlKeymap[ev.Keysym.Scancode]
			if !ok {
				continue
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				events = append(events, KeyEvent{Key: key, Down: true})
			case sdl.KEYUP:
				events = append(events, KeyEvent{Key: key, Down: false})
			}
		}
	}
	return events, false
}

// Close tears down the window and the SDL subsystem.
func (s *SDL) Close() {
	s.renderer.Destroy()
	s.window.Destroy()
	sdl.Quit()
}
