package lexer

import "github.com/Razoric480/gdformat/internal/token"

// scanNumber lexes decimal, hex (0x), binary (0b), and float literals
// (with optional exponent), keeping the verbatim spelling so the
// printer reproduces base/exponent/underscore grouping exactly (spec
// §4.1).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() && (isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_') {
			lx.cursor.Bump()
		}
		return lx.finishNumber(start)
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'b' || b1 == 'B') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() && (lx.cursor.Peek() == '0' || lx.cursor.Peek() == '1' || lx.cursor.Peek() == '_') {
			lx.cursor.Bump()
		}
		return lx.finishNumber(start)
	}

	for !lx.cursor.EOF() && (isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_') {
		lx.cursor.Bump()
	}

	isFloat := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		isFloat = true
		lx.cursor.Bump() // '.'
		for !lx.cursor.EOF() && (isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_') {
			lx.cursor.Bump()
		}
	} else if lx.cursor.Peek() == '.' {
		// Trailing dot with no following digit, e.g. "1." — still a float.
		isFloat = true
		lx.cursor.Bump()
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		save := lx.cursor.Mark()
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			isFloat = true
			for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		} else {
			lx.cursor.Reset(save)
		}
	}

	tok := lx.finishNumber(start)
	if isFloat {
		tok.Kind = token.FloatLit
	}
	return tok
}

func (lx *Lexer) finishNumber(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
