package frame

import "github.com/san-kum/laxsim/internal/lax"

// MemorySink keeps a copy of every frame.
type MemorySink struct {
	Frames []Frame
	Closed bool
}

func (m *MemorySink) WriteFrame(step int, g lax.Grid) error {
	m.Frames = append(m.Frames, Frame{Step: step, Values: g.Clone()})
	return nil
}

func (m *MemorySink) Close() error {
	m.Closed = true
	return nil
}

// Last returns the most recent frame, or false if none was written.
func (m *MemorySink) Last() (Frame, bool) {
	if len(m.Frames) == 0 {
		return Frame{}, false
	}
	return m.Frames[len(m.Frames)-1], true
}

// Discard accepts and drops every frame.
var Discard discard

type discard struct{}

func (discard) WriteFrame(int, lax.Grid) error { return nil }
func (discard) Close() error                   { return nil }
