// Package fmttrace provides optional phase-level tracing for a format
// call (lex, parse, normalize, layout, print). It carries no global
// state: a Tracer is passed in explicitly, and Begin falls back to the
// no-op Nop tracer when given nil. Format itself takes no Tracer and
// emits no spans.
package fmttrace
