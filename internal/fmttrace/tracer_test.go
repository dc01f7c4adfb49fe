package fmttrace

import (
	"bytes"
	"strings"
	"testing"
)

func TestNopSpanIsZeroCost(t *testing.T) {
	s := Begin(Nop, PhaseParse, "file.gd")
	s.End() // must not panic, must not block
}

func TestStreamTracerEmitsBeginAndEnd(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf)

	s := Begin(tr, PhaseLayout, "file.gd")
	s.End()

	out := buf.String()
	if !strings.Contains(out, "-> layout file.gd") {
		t.Fatalf("missing begin line, got:\n%s", out)
	}
	if !strings.Contains(out, "<- layout file.gd") {
		t.Fatalf("missing end line, got:\n%s", out)
	}
}

func TestNilTracerBeginIsSafe(t *testing.T) {
	s := Begin(nil, PhaseLex, "x")
	s.End()
}
