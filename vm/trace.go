package vm

// Trace is a bounded FIFO of recently executed instructions, filled by Step
// when tracing is enabled and drained by the status display or debug log.
type Trace struct {
	lines   []string
	maxSize int
}

// NewTrace creates an empty trace keeping at most maxSize lines.
func NewTrace(maxSize int) *Trace {
	return &Trace{maxSize: maxSize}
}

// Append adds a line, dropping the oldest one at capacity.
func (t *Trace) Append(line string) {
	if len(t.lines) == t.maxSize {
		t.lines = t.lines[1:]
	}
	t.lines = append(t.lines, line)
}

// Lines returns the recorded lines, oldest first.
func (t *Trace) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}
