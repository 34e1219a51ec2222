package vm

// Timers holds the delay and sound counters. Both count down at a fixed
// external rate (conventionally 60Hz) independent of the instruction tick
// rate, saturating at zero. Instruction execution never decrements them.
type Timers struct {
	delay byte
	sound byte
}

// Tick decrements both counters by one, stopping at zero. Called by the
// external driver once per real-time frame.
func (t *Timers) Tick() {
	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
}

// Delay returns the delay counter, read by LD Vx,DT.
func (t *Timers) Delay() byte {
	return t.delay
}

// SetDelay loads the delay counter, written by LD DT,Vx.
func (t *Timers) SetDelay(v byte) {
	t.delay = v
}

// SetSound loads the sound counter, written by LD ST,Vx.
func (t *Timers) SetSound(v byte) {
	t.sound = v
}

// SoundActive reports whether a front end should be beeping. No audio is
// synthesized here; the counter just runs down.
func (t *Timers) SoundActive() bool {
	return t.sound > 0
}
