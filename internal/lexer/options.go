package lexer

import (
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/source"
)

// Options configures a Lexer. Reporter may be nil; lexing then continues
// past errors silently (the formatter's caller decides whether a
// diagnostic aborts the run).
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, sp, msg)
	}
}
