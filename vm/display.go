package vm

import "fmt"

// display dimensions, fixed for the classic CHIP-8.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the 64x32 monochrome framebuffer. Pixels are addressed
// row-major as x + y*DisplayWidth and toggled by XOR sprite drawing.
type Display struct {
	pixels [DisplayWidth * DisplayHeight]bool
}

// Draw XORs the pixel at (x, y) with flip and reports whether the toggle
// turned a lit pixel off - the collision signal DRW folds into VF.
func (d *Display) Draw(x, y int, flip bool) (bool, error) {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false, fmt.Errorf("pixel %d:%d outside the %dx%d display: %w",
			x, y, DisplayWidth, DisplayHeight, ErrOutOfBounds)
	}
	pos := x + y*DisplayWidth
	old := d.pixels[pos]
	d.pixels[pos] = old != flip
	return old && !d.pixels[pos], nil
}

// Pixel reports whether the pixel at (x, y) is lit. Out of range is false.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return d.pixels[x+y*DisplayWidth]
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.pixels = [DisplayWidth * DisplayHeight]bool{}
}

// Snapshot returns a row-major copy of the framebuffer for the renderer.
func (d *Display) Snapshot() []bool {
	frame := make([]bool, len(d.pixels))
	copy(frame, d.pixels[:])
	return frame
}
