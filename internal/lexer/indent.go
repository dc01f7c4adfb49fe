package lexer

import (
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/token"
)

// measureIndent consumes the run of leading tabs on the current line
// and returns how many there were. A space encountered before the run
// ends is a mixed-indentation error (spec §4.1); the offending run is
// still consumed so lexing can continue.
func (lx *Lexer) measureIndent() int {
	start := lx.cursor.Mark()
	tabs := 0
	mixed := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\t' {
			lx.cursor.Bump()
			tabs++
			continue
		}
		if b == ' ' {
			lx.cursor.Bump()
			mixed = true
			continue
		}
		break
	}
	if mixed {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.CodeInvalidIndent, diag.SevError, sp, "mixed tabs and spaces in indentation")
	}
	return tabs
}

// lineIsBlankOrComment reports whether the rest of the current
// physical line, starting right after indentation, is empty or
// contains only a comment — such lines never change the indent stack
// (spec §4.1).
func (lx *Lexer) lineIsBlankOrComment() bool {
	b := lx.cursor.Peek()
	return lx.cursor.EOF() || b == '\n' || b == '#'
}

// syncIndent compares tabs against the indent stack and queues
// Indent/Dedent tokens (spec §4.1). It must only be called at the
// start of a logical line outside any bracket, on a line that has real
// content.
func (lx *Lexer) syncIndent(tabs int) {
	top := 0
	if n := len(lx.indentStack); n > 0 {
		top = lx.indentStack[n-1]
	}
	switch {
	case tabs > top:
		lx.indentStack = append(lx.indentStack, tabs)
		lx.pending = append(lx.pending, lx.mkStructural(token.Indent))
	case tabs < top:
		for len(lx.indentStack) > 0 && lx.indentStack[len(lx.indentStack)-1] > tabs {
			lx.indentStack = lx.indentStack[:len(lx.indentStack)-1]
			lx.pending = append(lx.pending, lx.mkStructural(token.Dedent))
		}
		newTop := 0
		if n := len(lx.indentStack); n > 0 {
			newTop = lx.indentStack[n-1]
		}
		if newTop != tabs {
			lx.report(diag.CodeInvalidIndent, diag.SevError, lx.emptySpan(),
				"indentation does not match any enclosing level")
		}
	}
}
