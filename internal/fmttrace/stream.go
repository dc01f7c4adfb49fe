package fmttrace

import (
	"fmt"
	"io"
)

// StreamTracer writes one line per event immediately to w. Useful for
// `-trace` style debugging of a single format() call.
type StreamTracer struct {
	w io.Writer
}

func NewStreamTracer(w io.Writer) *StreamTracer {
	return &StreamTracer{w: w}
}

func (t *StreamTracer) Enabled() bool { return true }

func (t *StreamTracer) Emit(ev Event) {
	if ev.Duration == 0 {
		fmt.Fprintf(t.w, "-> %s %s\n", ev.Phase, ev.Name)
		return
	}
	fmt.Fprintf(t.w, "<- %s %s (%s)\n", ev.Phase, ev.Name, ev.Duration)
}
