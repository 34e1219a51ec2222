package screen

// Headless is the no-output front end, used for tests and for running
// programs purely for their side effects.
type Headless struct {
	frames int
}

// NewHeadless returns a front end that renders nowhere.
func NewHeadless() *Headless {
	return &Headless{}
}

// Render counts the frame and drops it.
func (h *Headless) Render(frame []bool) error {
	h.frames++
	return nil
}

// Frames returns the number of frames rendered so far.
func (h *Headless) Frames() int {
	return h.frames
}

// Poll never reports events or a quit request.
func (h *Headless) Poll() ([]KeyEvent, bool) {
	return nil, false
}

// Close is a no-op.
func (h *Headless) Close() {}
