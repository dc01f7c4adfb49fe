package parser

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/token"
)

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.IntLit:
		return p.parseLiteral(ast.LiteralInt), true
	case token.FloatLit:
		return p.parseLiteral(ast.LiteralFloat), true
	case token.StringLit:
		return p.parseLiteral(ast.LiteralString), true
	case token.StringNameLit:
		return p.parseLiteral(ast.LiteralStringName), true
	case token.NodePathLit:
		return p.parseNodePathOrGetNode(), true
	case token.KwTrue:
		return p.parseLiteral(ast.LiteralBool), true
	case token.KwFalse:
		return p.parseLiteral(ast.LiteralBool), true
	case token.KwNull:
		return p.parseLiteral(ast.LiteralNull), true
	case token.KwSelf:
		p.advance()
		return p.b.NewExpr(ast.ExprSelf, tok.Span), true
	case token.KwSuper:
		p.advance()
		return p.b.NewExpr(ast.ExprSuper, tok.Span), true
	case token.KwPreload:
		return p.parsePreload()
	case token.KwFunc:
		return p.parseLambda()
	case token.Ident:
		p.advance()
		id := p.b.NewExpr(ast.ExprIdentifier, tok.Span)
		p.b.Exprs.Get(id).Name = p.b.Strings.Intern(tok.Text)
		return id, true
	case token.LParen:
		return p.parseParenthesized()
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseDictLiteral()
	default:
		p.report(diag.CodeUnexpectedToken, diag.SevError, "expected an expression")
		return ast.NoExprID, false
	}
}

func (p *Parser) parseLiteral(kind ast.LiteralKind) ast.ExprID {
	tok := p.advance()
	id := p.b.NewExpr(ast.ExprLiteral, tok.Span)
	e := p.b.Exprs.Get(id)
	e.LitKind, e.Text = kind, tok.Text
	return id
}

// parseNodePathOrGetNode disambiguates the shared NodePathLit token
// kind: a `^"..."` literal is a Literal(nodepath); a `$Path` or
// `$"..."` form is a GetNode expression (spec §3/§4.1).
func (p *Parser) parseNodePathOrGetNode() ast.ExprID {
	tok := p.advance()
	if len(tok.Text) > 0 && tok.Text[0] == '$' {
		id := p.b.NewExpr(ast.ExprGetNode, tok.Span)
		e := p.b.Exprs.Get(id)
		if len(tok.Text) > 1 && tok.Text[1] == '"' {
			e.Quoted = true
			e.Text = tok.Text
		} else {
			e.Name = p.b.Strings.Intern(tok.Text[1:])
		}
		return id
	}
	id := p.b.NewExpr(ast.ExprLiteral, tok.Span)
	e := p.b.Exprs.Get(id)
	e.LitKind, e.Text = ast.LiteralNodePath, tok.Text
	return id
}

func (p *Parser) parsePreload() (ast.ExprID, bool) {
	kw := p.advance()
	args, closeSpan, ok := p.parseArgList()
	id := p.b.NewExpr(ast.ExprPreload, kw.Span.Cover(closeSpan))
	p.b.Exprs.Get(id).Args = args
	return id, ok
}

// parseParenthesized parses a `(expr)` group; the normalizer decides
// whether it is redundant and should be unwrapped (spec §4.2/§4.3).
func (p *Parser) parseParenthesized() (ast.ExprID, bool) {
	open := p.advance()
	inner, ok := p.parseExpr()
	// A comment sharing the '(' line classifies as trailing the paren
	// (absorbLeading treats it as finishing the prior construct), but
	// it logically precedes the value; stash it as the wrapper's own
	// Leading so maybeUnwrap can re-home it onto the enclosing
	// construct if these parens turn out to be redundant (spec §9).
	openTrailing := p.takeTrailing()
	if !ok {
		p.resync(token.RParen)
	}
	close, closeOk := p.expect(token.RParen, diag.CodeUnexpectedToken, "expected ')' to close parenthesized expression")
	id := p.b.NewExpr(ast.ExprParenthesized, open.Span.Cover(close.Span))
	e := p.b.Exprs.Get(id)
	e.Operand = inner
	if openTrailing != nil {
		e.Leading = append(e.Leading, *openTrailing)
	}
	return id, ok && closeOk
}

// Inside brackets the lexer treats a newline as pure whitespace (see
// internal/lexer/trivia.go), so a comment sharing an element's line
// never gets its own terminator token to attach to: it is only
// classified into pendingTrailing once the *next* element's first
// token is actually consumed. So each element's Trailing can only be
// captured one step behind — right after the following element's
// first token has been lexed, or, for the last element, once the
// closing bracket has been consumed.
func (p *Parser) parseArrayLiteral() (ast.ExprID, bool) {
	open := p.advance()
	var elements []ast.ExprID
	var prev ast.ExprID
	havePrev := false
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		leading := p.takeLeading()
		elem, ok := p.parseExpr()
		if havePrev {
			if t := p.takeTrailing(); t != nil {
				p.b.Exprs.Get(prev).Trailing = t
			}
		}
		havePrev = false
		if !ok {
			p.resync(token.Comma, token.RBracket)
		} else {
			e := p.b.Exprs.Get(elem)
			e.Leading = append(leading, e.Leading...)
			elements = append(elements, elem)
			prev, havePrev = elem, true
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	dangling := len(elements) == 0
	close, ok := p.expect(token.RBracket, diag.CodeUnexpectedToken, "expected ']' to close array literal")
	if havePrev {
		if t := p.takeTrailing(); t != nil {
			p.b.Exprs.Get(prev).Trailing = t
		}
	}
	id := p.b.NewExpr(ast.ExprArray, open.Span.Cover(close.Span))
	e := p.b.Exprs.Get(id)
	e.Elements = elements
	if dangling {
		e.Dangling = p.takeDangling()
	}
	return id, ok
}

func (p *Parser) parseDictLiteral() (ast.ExprID, bool) {
	open := p.advance()
	var entries []ast.DictEntry
	style := ast.DictStylePython
	prev := -1
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		entry, ok := p.parseDictEntry(&style)
		if prev >= 0 {
			if t := p.takeTrailing(); t != nil {
				entries[prev].Trailing = t
			}
		}
		prev = -1
		if !ok {
			p.resync(token.Comma, token.RBrace)
		} else {
			entries = append(entries, entry)
			prev = len(entries) - 1
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	dangling := len(entries) == 0
	close, ok := p.expect(token.RBrace, diag.CodeUnexpectedToken, "expected '}' to close dictionary literal")
	if prev >= 0 {
		if t := p.takeTrailing(); t != nil {
			entries[prev].Trailing = t
		}
	}
	id := p.b.NewExpr(ast.ExprDictionary, open.Span.Cover(close.Span))
	e := p.b.Exprs.Get(id)
	e.Entries, e.Style = entries, style
	if dangling {
		e.Dangling = p.takeDangling()
	}
	return id, ok
}

// parseDictEntry parses one entry of either dictionary key syntax:
// Python-style `"key": value` (or `key: value` when the key is an
// identifier used as a bare string key) or Lua-style `key = value`.
// The caller claims Trailing once the entry's terminator is consumed.
func (p *Parser) parseDictEntry(style *ast.DictStyle) (ast.DictEntry, bool) {
	leading := p.takeLeading()
	key, ok := p.parseExpr()
	if !ok {
		return ast.DictEntry{}, false
	}
	var value ast.ExprID
	switch {
	case p.at(token.Colon):
		p.advance()
		*style = ast.DictStylePython
		value, ok = p.parseExpr()
	case p.at(token.Assign):
		p.advance()
		*style = ast.DictStyleLua
		value, ok = p.parseExpr()
	default:
		p.report(diag.CodeUnexpectedToken, diag.SevError, "expected ':' or '=' in dictionary entry")
		ok = false
	}
	if !ok {
		return ast.DictEntry{}, false
	}
	keySpan := p.b.Exprs.Get(key).Span
	valueSpan := p.b.Exprs.Get(value).Span
	entry := ast.DictEntry{Key: key, Value: value, Span: keySpan.Cover(valueSpan)}
	entry.Leading = leading
	return entry, true
}

// parseLambda parses an anonymous function: `func(params) -> Type:` or
// `func name(params):`, followed by an indented block body.
func (p *Parser) parseLambda() (ast.ExprID, bool) {
	kw := p.advance()
	if p.at(token.Ident) {
		p.advance() // optional lambda name, not preserved as a distinct field
	}
	params, ok := p.parseParamList()
	if !ok {
		return ast.NoExprID, false
	}
	var retType *ast.TypeRef
	if p.at(token.Arrow) {
		p.advance()
		retType = p.parseOptionalTypeAnnotationForced()
	}
	if _, ok := p.expect(token.Colon, diag.CodeUnexpectedToken, "expected ':' to start lambda body"); !ok {
		return ast.NoExprID, false
	}
	body, bodySpan, ok := p.parseBlock()
	id := p.b.NewExpr(ast.ExprLambda, kw.Span.Cover(bodySpan))
	e := p.b.Exprs.Get(id)
	e.Params, e.ReturnType, e.Body = params, retType, body
	return id, ok
}

// parseOptionalTypeAnnotationForced parses a bare type reference (no
// leading ':'), used after '->' where the colon was already the
// annotation's own delimiter for something else (function return type).
func (p *Parser) parseOptionalTypeAnnotationForced() *ast.TypeRef {
	ref, ok := p.parseTypeRef()
	if !ok {
		return nil
	}
	return &ref
}
