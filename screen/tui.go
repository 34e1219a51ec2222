package screen

import (
	"fmt"
	"sync"
	"time"

	"github.com/jroimartin/gocui"

	"chip8/vm"
)

// keyHold is how long a terminal key press counts as held. Terminals only
// report presses, never releases, so releases are synthesized after this
// interval.
const keyHold = 150 * time.Millisecond

// tuiKeymap maps the COSMAC layout onto the hex pad, same as the SDL one.
var tuiKeymap = map[rune]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// TUI renders the framebuffer into a gocui terminal layout with display,
// registers and status views.
type TUI struct {
	g *gocui.Gui

	mu      sync.Mutex
	pressed map[byte]time.Time
	fresh   []byte
	quit    bool
}

// NewTUI builds the terminal front end and starts its event loop.
func NewTUI() (*TUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("could not create gui: %w", err)
	}

	t := &TUI{
		g:       g,
		pressed: make(map[byte]time.Time),
	}
	g.SetManagerFunc(layout)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, t.quitBinding); err != nil {
		g.Close()
		return nil, err
	}
	for key, code := range tuiKeymap {
		code := code
		handler := func(*gocui.Gui, *gocui.View) error {
			t.press(code)
			return nil
		}
		if err := g.SetKeybinding("", key, gocui.ModNone, handler); err != nil {
			g.Close()
			return nil, err
		}
	}

	// any exit of the event loop, clean or not, reads as a quit request
	go func() {
		_ = g.MainLoop()
		t.mu.Lock()
		t.quit = true
		t.mu.Unlock()
	}()

	return t, nil
}

// gocui layout: display on top, registers and status below, like a front
// panel.
func layout(g *gocui.Gui) error {
	maxX, _ := g.Size()
	displayH := vm.DisplayHeight + 1
	if v, err := g.SetView("display", 0, 0, maxX-1, displayH); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Display"
	}
	if v, err := g.SetView("registers", 0, displayH+1, maxX-1, displayH+3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Registers"
	}
	if v, err := g.SetView("status", 0, displayH+4, maxX-1, displayH+12); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	return nil
}

func (t *TUI) quitBinding(*gocui.Gui, *gocui.View) error {
	return gocui.ErrQuit
}

// press records a key press from the gocui loop.
func (t *TUI) press(key byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, held := t.pressed[key]; !held {
		t.fresh = append(t.fresh, key)
	}
	t.pressed[key] = time.Now()
}

// Render draws the framebuffer with two block characters per pixel.
func (t *TUI) Render(frame []bool) error {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("display")
		if err != nil {
			return err
		}
		v.Clear()
		for y := 0; y < vm.DisplayHeight; y++ {
			for x := 0; x < vm.DisplayWidth; x++ {
				if frame[x+y*vm.DisplayWidth] {
					fmt.Fprint(v, "██")
				} else {
					fmt.Fprint(v, "  ")
				}
			}
			fmt.Fprintln(v)
		}
		return nil
	})
	return nil
}

// SetStatus shows the register dump and the recent instruction trace.
func (t *TUI) SetStatus(registers string, trace []string) {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("registers")
		if err != nil {
			return err
		}
		v.Clear()
		fmt.Fprintln(v, registers)

		v, err = g.View("status")
		if err != nil {
			return err
		}
		v.Clear()
		for _, line := range trace {
			fmt.Fprintln(v, line)
		}
		return nil
	})
}

// Poll returns fresh presses as key-down events and synthesizes key-up
// events for presses older than keyHold.
func (t *TUI) Poll() ([]KeyEvent, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var events []KeyEvent
	for _, key := range t.fresh {
		events = append(events, KeyEvent{Key: key, Down: true})
	}
	t.fresh = t.fresh[:0]

	now := time.Now()
	for key, at := range t.pressed {
		if now.Sub(at) > keyHold {
			delete(t.pressed, key)
			events = append(events, KeyEvent{Key: key, Down: false})
		}
	}
	return events, t.quit
}

// Close shuts the terminal UI down.
func (t *TUI) Close() {
	t.g.Close()
}
