package token

import "github.com/Razoric480/gdformat/internal/source"

// Token is a single lexical token: its category, source location, raw
// text, and any trivia (comments) that preceded it.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a literal value.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, StringNameLit, NodePathLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwVar, KwConst, KwSignal, KwEnum, KwFunc, KwClassName, KwExtends, KwClass,
		KwIf, KwElif, KwElse, KwWhile, KwFor, KwIn, KwMatch, KwReturn, KwPass, KwBreak,
		KwContinue, KwBreakpoint, KwAssert, KwAwait, KwStatic, KwIs, KwAs, KwAnd, KwOr,
		KwNot, KwSelf, KwSuper, KwPreload, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is an operator or punctuation
// mark.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, StarStar, Slash, Percent, Assign, PlusAssign, MinusAssign,
		StarAssign, SlashAssign, PercentAssign, StarStarAssign, AmpAssign, PipeAssign,
		CaretAssign, ShlAssign, ShrAssign, EqEq, Bang, BangEq, Lt, LtEq, Gt, GtEq, Shl,
		Shr, Amp, Pipe, Caret, Tilde, Colon, ColonEq, Comma, Dot, DotDot, Arrow, LParen, RParen,
		LBrace, RBrace, LBracket, RBracket, At, Dollar, Underscore, Semicolon:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is a plain identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
