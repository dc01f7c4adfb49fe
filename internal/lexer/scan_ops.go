package lexer

import (
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/token"
)

// scanOperatorOrPunct lexes one operator/punctuation token, preferring
// the longest match (`**=` over `**` over `*`).
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	kind := token.Invalid
	switch b {
	case '+':
		if lx.cursor.Eat('=') {
			kind = token.PlusAssign
		} else {
			kind = token.Plus
		}
	case '-':
		if lx.cursor.Eat('=') {
			kind = token.MinusAssign
		} else if lx.cursor.Eat('>') {
			kind = token.Arrow
		} else {
			kind = token.Minus
		}
	case '*':
		if lx.cursor.Eat('*') {
			if lx.cursor.Eat('=') {
				kind = token.StarStarAssign
			} else {
				kind = token.StarStar
			}
		} else if lx.cursor.Eat('=') {
			kind = token.StarAssign
		} else {
			kind = token.Star
		}
	case '/':
		if lx.cursor.Eat('=') {
			kind = token.SlashAssign
		} else {
			kind = token.Slash
		}
	case '%':
		if lx.cursor.Eat('=') {
			kind = token.PercentAssign
		} else {
			kind = token.Percent
		}
	case '=':
		if lx.cursor.Eat('=') {
			kind = token.EqEq
		} else {
			kind = token.Assign
		}
	case '!':
		if lx.cursor.Eat('=') {
			kind = token.BangEq
		} else {
			kind = token.Bang
		}
	case '<':
		if lx.cursor.Eat('<') {
			if lx.cursor.Eat('=') {
				kind = token.ShlAssign
			} else {
				kind = token.Shl
			}
		} else if lx.cursor.Eat('=') {
			kind = token.LtEq
		} else {
			kind = token.Lt
		}
	case '>':
		if lx.cursor.Eat('>') {
			if lx.cursor.Eat('=') {
				kind = token.ShrAssign
			} else {
				kind = token.Shr
			}
		} else if lx.cursor.Eat('=') {
			kind = token.GtEq
		} else {
			kind = token.Gt
		}
	case '&':
		if lx.cursor.Eat('=') {
			kind = token.AmpAssign
		} else {
			kind = token.Amp
		}
	case '|':
		if lx.cursor.Eat('=') {
			kind = token.PipeAssign
		} else {
			kind = token.Pipe
		}
	case '^':
		if lx.cursor.Eat('=') {
			kind = token.CaretAssign
		} else {
			kind = token.Caret
		}
	case '~':
		kind = token.Tilde
	case ':':
		if lx.cursor.Eat('=') {
			kind = token.ColonEq
		} else {
			kind = token.Colon
		}
	case ',':
		kind = token.Comma
	case '.':
		if lx.cursor.Eat('.') {
			kind = token.DotDot
		} else {
			kind = token.Dot
		}
	case '(':
		kind = token.LParen
		lx.bracketDepth++
	case ')':
		kind = token.RParen
		lx.decBracketDepth()
	case '{':
		kind = token.LBrace
		lx.bracketDepth++
	case '}':
		kind = token.RBrace
		lx.decBracketDepth()
	case '[':
		kind = token.LBracket
		lx.bracketDepth++
	case ']':
		kind = token.RBracket
		lx.decBracketDepth()
	case '@':
		kind = token.At
	case '$':
		// Unreachable: '$' is dispatched to scanGetNode before this
		// scanner runs. Kept as a defensive fallback.
		kind = token.Dollar
	case '_':
		kind = token.Underscore
	case ';':
		kind = token.Semicolon
	}

	sp := lx.cursor.SpanFrom(start)
	if kind == token.Invalid {
		lx.report(diag.CodeUnexpectedChar, diag.SevError, sp, "unexpected character")
	}
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) decBracketDepth() {
	if lx.bracketDepth > 0 {
		lx.bracketDepth--
	}
}
