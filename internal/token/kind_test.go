package token_test

import (
	"testing"

	"github.com/Razoric480/gdformat/internal/source"
	"github.com/Razoric480/gdformat/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntLit, token.FloatLit, token.StringLit, token.StringNameLit,
		token.NodePathLit, token.KwTrue, token.KwFalse, token.KwNull,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwVar, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.Minus, token.Star, token.StarStar, token.Slash, token.Percent,
		token.Assign, token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.Shl, token.Shr, token.Amp, token.Pipe, token.Caret, token.Tilde,
		token.Colon, token.ColonEq, token.Comma, token.Dot, token.DotDot, token.Arrow,
		token.LParen, token.RParen, token.LBrace, token.RBrace, token.LBracket, token.RBracket,
		token.At, token.Dollar, token.Underscore, token.Semicolon,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwIf, token.IntLit}
	for _, k := range non {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Ident).IsIdent() {
		t.Fatalf("Ident should be ident")
	}
	if tok(token.KwFunc).IsIdent() {
		t.Fatalf("KwFunc must not be ident")
	}
}

func TestIsKeyword(t *testing.T) {
	kws := []token.Kind{
		token.KwVar, token.KwConst, token.KwSignal, token.KwEnum, token.KwFunc,
		token.KwClassName, token.KwExtends, token.KwClass, token.KwIf, token.KwElif,
		token.KwElse, token.KwWhile, token.KwFor, token.KwIn, token.KwMatch,
		token.KwReturn, token.KwPass, token.KwBreak, token.KwContinue,
		token.KwBreakpoint, token.KwAssert, token.KwAwait, token.KwStatic,
		token.KwIs, token.KwAs, token.KwAnd, token.KwOr, token.KwNot,
		token.KwSelf, token.KwSuper, token.KwPreload, token.KwTrue, token.KwFalse, token.KwNull,
	}
	for _, k := range kws {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	if tok(token.Ident).IsKeyword() {
		t.Fatalf("Ident must not be keyword")
	}
}
