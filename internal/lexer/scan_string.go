package lexer

import (
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/token"
)

// scanString lexes every quoted string form: plain/raw, single- or
// double-quoted, triple-quoted multiline, and the &"..." (string-name)
// and ^"..." (node-path) prefixed forms (spec §4.1). The caller has
// already confirmed the current byte starts one of these.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	kind := token.StringLit
	raw := false

	switch lx.cursor.Peek() {
	case 'r':
		raw = true
		lx.cursor.Bump()
	case '&':
		kind = token.StringNameLit
		lx.cursor.Bump()
	case '^':
		kind = token.NodePathLit
		lx.cursor.Bump()
	}

	quote := lx.cursor.Peek()
	triple := lx.isTripleQuote(quote)
	if triple {
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Bump()
	} else {
		lx.cursor.Bump()
	}

	ok := lx.consumeStringBody(quote, triple, raw)
	sp := lx.cursor.SpanFrom(start)
	if !ok {
		lx.report(diag.CodeUnterminatedString, diag.SevError, sp, "unterminated string literal")
	}
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanGetNode lexes a `$Path/To/Node` or `$"..."` get-node literal.
func (lx *Lexer) scanGetNode() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'

	if lx.cursor.Peek() == '"' {
		quote := lx.cursor.Peek()
		triple := lx.isTripleQuote(quote)
		if triple {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.cursor.Bump()
		} else {
			lx.cursor.Bump()
		}
		ok := lx.consumeStringBody(quote, triple, false)
		sp := lx.cursor.SpanFrom(start)
		if !ok {
			lx.report(diag.CodeUnterminatedString, diag.SevError, sp, "unterminated get-node path literal")
		}
		return token.Token{Kind: token.NodePathLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) || b == '/' || b == '.' || b == '%' || b == ':' {
			lx.cursor.Bump()
			continue
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NodePathLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) isTripleQuote(q byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	return ok && b0 == q && b1 == q && b2 == q
}

// consumeStringBody advances the cursor from just after the opening
// quote(s) to just after the closing quote(s), honoring backslash
// escapes unless raw. Returns false if EOF was reached first.
func (lx *Lexer) consumeStringBody(quote byte, triple, raw bool) bool {
	for {
		if lx.cursor.EOF() {
			return false
		}
		b := lx.cursor.Peek()
		if !raw && b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if b == quote {
			if !triple {
				lx.cursor.Bump()
				return true
			}
			if lx.isTripleQuote(quote) {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.cursor.Bump()
				return true
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' && !triple {
			return false
		}
		lx.cursor.Bump()
	}
}
