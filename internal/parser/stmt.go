package parser

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/source"
	"github.com/Razoric480/gdformat/internal/token"
)

var assignOps = []token.Kind{
	token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
	token.SlashAssign, token.PercentAssign, token.StarStarAssign,
	token.AmpAssign, token.PipeAssign, token.CaretAssign,
	token.ShlAssign, token.ShrAssign,
}

// parseBlock consumes a Newline, an Indent, a run of statements, and the
// matching Dedent (spec §4.1: a body is one tab deeper than its header).
func (p *Parser) parseBlock() ([]ast.StmtID, source.Span, bool) {
	p.skipNewlines()
	open, ok := p.expect(token.Indent, diag.CodeUnexpectedToken, "expected an indented block")
	if !ok {
		return nil, open.Span, false
	}
	p.depth++
	var stmts []ast.StmtID
	for !p.at(token.Dedent) && !p.at(token.EOF) {
		p.skipNewlines()
		if p.at(token.Dedent) || p.at(token.EOF) {
			break
		}
		stmt, ok := p.parseStmt()
		// A statement that got far enough to have a valid id is kept
		// even when it could not be fully parsed (spec §4.7: "the parser
		// returns the partially-built tree"), e.g. a match statement with
		// a truncated final arm.
		if stmt.IsValid() {
			stmts = append(stmts, stmt)
		}
		if !ok {
			p.resync(token.Newline, token.Dedent)
			p.skipNewlines()
			continue
		}
	}
	p.depth--
	close, ok := p.expect(token.Dedent, diag.CodeUnexpectedToken, "expected dedent to close block")
	span := open.Span.Cover(close.Span)
	return stmts, span, ok
}

func (p *Parser) atStmtEnd() bool {
	return p.at(token.Newline) || p.at(token.Dedent) || p.at(token.EOF)
}

func (p *Parser) expectStmtEnd() bool {
	if p.at(token.Newline) {
		p.advance()
		return true
	}
	if p.at(token.Dedent) || p.at(token.EOF) {
		return true
	}
	p.report(diag.CodeUnexpectedToken, diag.SevError, "expected end of statement")
	p.resync(token.Newline, token.Dedent)
	p.skipNewlines()
	return false
}

// parseStmt parses one statement and attaches whatever comments were
// collected immediately before and on its own last line (spec §4.2).
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	leading := p.takeLeading()
	id, ok := p.parseStmtInner()
	if id.IsValid() {
		s := p.b.Stmts.Get(id)
		s.Leading = leading
		s.Trailing = p.takeTrailing()
	}
	return id, ok
}

func (p *Parser) parseStmtInner() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwMatch:
		return p.parseMatch()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwPass:
		return p.parseSimpleKeyword(ast.StmtPass)
	case token.KwBreak:
		return p.parseSimpleKeyword(ast.StmtBreak)
	case token.KwContinue:
		return p.parseSimpleKeyword(ast.StmtContinue)
	case token.KwBreakpoint:
		return p.parseSimpleKeyword(ast.StmtBreakpoint)
	case token.KwAssert:
		return p.parseAssert()
	case token.KwAwait:
		return p.parseAwaitStmt()
	case token.KwVar:
		return p.parseLocalDecl(ast.StmtVarDecl)
	case token.KwConst:
		return p.parseLocalDecl(ast.StmtConstDecl)
	default:
		return p.parseExpressionOrAssignment()
	}
}

func (p *Parser) parseSimpleKeyword(kind ast.StmtKind) (ast.StmtID, bool) {
	kw := p.advance()
	id := p.b.NewStmt(kind, kw.Span)
	ok := p.expectStmtEnd()
	return id, ok
}

func (p *Parser) parseIf() (ast.StmtID, bool) {
	kw := p.advance()
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Colon, diag.CodeUnexpectedToken, "expected ':' after if condition"); !ok {
		return ast.NoStmtID, false
	}
	then, thenSpan, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	id := p.b.NewStmt(ast.StmtIf, kw.Span.Cover(thenSpan))
	s := p.b.Stmts.Get(id)
	s.Cond, s.Then = cond, then
	end := thenSpan

	for p.at(token.KwElif) {
		ekw := p.advance()
		econd, ok := p.parseExpr()
		if !ok {
			return id, false
		}
		if _, ok := p.expect(token.Colon, diag.CodeUnexpectedToken, "expected ':' after elif condition"); !ok {
			return id, false
		}
		body, bodySpan, ok := p.parseBlock()
		if !ok {
			return id, false
		}
		s.Elifs = append(s.Elifs, ast.ElifClause{Cond: econd, Body: body, Span: ekw.Span.Cover(bodySpan)})
		end = bodySpan
	}

	if p.at(token.KwElse) {
		p.advance()
		if _, ok := p.expect(token.Colon, diag.CodeUnexpectedToken, "expected ':' after else"); !ok {
			return id, false
		}
		elseBody, elseSpan, ok := p.parseBlock()
		if !ok {
			return id, false
		}
		s.Else = elseBody
		end = elseSpan
	}
	s.Span = s.Span.Cover(end)
	return id, true
}

func (p *Parser) parseWhile() (ast.StmtID, bool) {
	kw := p.advance()
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Colon, diag.CodeUnexpectedToken, "expected ':' after while condition"); !ok {
		return ast.NoStmtID, false
	}
	body, bodySpan, ok := p.parseBlock()
	id := p.b.NewStmt(ast.StmtWhile, kw.Span.Cover(bodySpan))
	s := p.b.Stmts.Get(id)
	s.Cond, s.Then = cond, body
	return id, ok
}

func (p *Parser) parseFor() (ast.StmtID, bool) {
	kw := p.advance()
	nameTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected a loop variable name")
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwIn, diag.CodeUnexpectedToken, "expected 'in' in for statement"); !ok {
		return ast.NoStmtID, false
	}
	iterable, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Colon, diag.CodeUnexpectedToken, "expected ':' after for iterable"); !ok {
		return ast.NoStmtID, false
	}
	body, bodySpan, ok := p.parseBlock()
	id := p.b.NewStmt(ast.StmtFor, kw.Span.Cover(bodySpan))
	s := p.b.Stmts.Get(id)
	s.LoopVar = p.b.Strings.Intern(nameTok.Text)
	s.Iterable, s.Then = iterable, body
	return id, ok
}

func (p *Parser) parseReturn() (ast.StmtID, bool) {
	kw := p.advance()
	id := p.b.NewStmt(ast.StmtReturn, kw.Span)
	if p.atStmtEnd() {
		return id, p.expectStmtEnd()
	}
	value, ok := p.parseExpr()
	if !ok {
		return id, false
	}
	s := p.b.Stmts.Get(id)
	s.Value = value
	s.Span = s.Span.Cover(p.b.Exprs.Get(value).Span)
	return id, p.expectStmtEnd()
}

func (p *Parser) parseAwaitStmt() (ast.StmtID, bool) {
	kw := p.advance()
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	id := p.b.NewStmt(ast.StmtAwait, kw.Span.Cover(p.b.Exprs.Get(value).Span))
	p.b.Stmts.Get(id).Value = value
	return id, p.expectStmtEnd()
}

func (p *Parser) parseAssert() (ast.StmtID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LParen, diag.CodeUnexpectedToken, "expected '(' after assert"); !ok {
		return ast.NoStmtID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	var message ast.ExprID = ast.NoExprID
	if p.at(token.Comma) {
		p.advance()
		message, ok = p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
	}
	close, ok := p.expect(token.RParen, diag.CodeUnexpectedToken, "expected ')' to close assert")
	id := p.b.NewStmt(ast.StmtAssert, kw.Span.Cover(close.Span))
	s := p.b.Stmts.Get(id)
	s.Value, s.Message = cond, message
	return id, ok && p.expectStmtEnd()
}

func (p *Parser) parseLocalDecl(kind ast.StmtKind) (ast.StmtID, bool) {
	kw := p.advance()
	nameTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected a declaration name")
	if !ok {
		return ast.NoStmtID, false
	}
	id := p.b.NewStmt(kind, kw.Span.Cover(nameTok.Span))
	s := p.b.Stmts.Get(id)
	s.DeclName = p.b.Strings.Intern(nameTok.Text)

	switch {
	case p.at(token.ColonEq):
		p.advance()
		value, ok := p.parseExpr()
		if !ok {
			return id, false
		}
		s.Inferred = true
		s.Value = value
		s.Span = s.Span.Cover(p.b.Exprs.Get(value).Span)
	case p.at(token.Colon):
		s.DeclType = p.parseOptionalTypeAnnotation()
		if s.DeclType != nil {
			s.Span = s.Span.Cover(s.DeclType.Span)
		}
		if p.at(token.Assign) {
			p.advance()
			value, ok := p.parseExpr()
			if !ok {
				return id, false
			}
			s.Value = value
			s.Span = s.Span.Cover(p.b.Exprs.Get(value).Span)
		}
	case p.at(token.Assign):
		p.advance()
		value, ok := p.parseExpr()
		if !ok {
			return id, false
		}
		s.Value = value
		s.Span = s.Span.Cover(p.b.Exprs.Get(value).Span)
	}
	return id, p.expectStmtEnd()
}

func (p *Parser) parseExpressionOrAssignment() (ast.StmtID, bool) {
	lhs, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	lhsSpan := p.b.Exprs.Get(lhs).Span
	if p.atAny(assignOps...) {
		opTok := p.advance()
		rhs, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		id := p.b.NewStmt(ast.StmtAssignment, lhsSpan.Cover(p.b.Exprs.Get(rhs).Span))
		s := p.b.Stmts.Get(id)
		s.Target, s.Op, s.RHS = lhs, opTok.Kind, rhs
		return id, p.expectStmtEnd()
	}
	id := p.b.NewStmt(ast.StmtExpression, lhsSpan)
	p.b.Stmts.Get(id).Value = lhs
	return id, p.expectStmtEnd()
}

// parseParamList parses a parenthesized, comma-separated parameter list
// shared by functions, signals, and lambdas. Inside the parens a
// newline is pure trivia (internal/lexer/trivia.go), so a parameter's
// trailing comment is only classified into pendingTrailing once the
// next parameter's name token (or the closing ')') is actually lexed;
// each parameter's Trailing is therefore captured one step behind.
func (p *Parser) parseParamList() ([]ast.Parameter, bool) {
	if _, ok := p.expect(token.LParen, diag.CodeUnexpectedToken, "expected '('"); !ok {
		return nil, false
	}
	var params []ast.Parameter
	prev := -1
	for !p.at(token.RParen) && !p.at(token.EOF) {
		leading := p.takeLeading()
		nameTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected a parameter name")
		if prev >= 0 {
			if t := p.takeTrailing(); t != nil {
				params[prev].Trailing = t
			}
		}
		prev = -1
		if !ok {
			p.resync(token.Comma, token.RParen)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		param := ast.Parameter{Name: p.b.Strings.Intern(nameTok.Text), Span: nameTok.Span}
		param.Leading = leading
		param.Type = p.parseOptionalTypeAnnotation()
		param.Default = ast.NoExprID
		if p.at(token.Assign) {
			p.advance()
			def, ok := p.parseExpr()
			if ok {
				param.Default = def
				param.Span = param.Span.Cover(p.b.Exprs.Get(def).Span)
			}
		}
		params = append(params, param)
		prev = len(params) - 1
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	_, ok := p.expect(token.RParen, diag.CodeUnexpectedToken, "expected ')' to close parameter list")
	if prev >= 0 {
		if t := p.takeTrailing(); t != nil {
			params[prev].Trailing = t
		}
	}
	return params, ok
}
