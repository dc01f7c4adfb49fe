package diag

import "github.com/Razoric480/gdformat/internal/source"

// Reporter is the minimal contract the lexer and parser use to surface
// diagnostics without depending on how they are collected.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string)
}

// BagReporter adapts a Reporter onto a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{Severity: sev, Code: code, Message: msg, Primary: primary})
}

// NopReporter discards every diagnostic. Useful when a caller only
// wants the formatted output and is prepared to treat any parse failure
// as "leave it alone" (spec §4.2 error recovery).
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string) {}
