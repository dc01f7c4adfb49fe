package parser

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/source"
	"github.com/Razoric480/gdformat/internal/token"
)

// parseExpr is the entry point for expression parsing: the fixed
// precedence table of spec §4.2, loosest (ternary) at the top, down to
// primary/postfix at the bottom.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseTernary()
}

func (p *Parser) parseTernary() (ast.ExprID, bool) {
	then, ok := p.parseCast()
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.KwIf) {
		return then, true
	}
	p.advance()
	cond, ok := p.parseCast()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.KwElse, diag.CodeUnexpectedToken, "expected 'else' in ternary expression"); !ok {
		return ast.NoExprID, false
	}
	elseExpr, ok := p.parseTernary()
	if !ok {
		return ast.NoExprID, false
	}
	thenSpan := p.b.Exprs.Get(then).Span
	elseSpan := p.b.Exprs.Get(elseExpr).Span
	id := p.b.NewExpr(ast.ExprTernary, thenSpan.Cover(elseSpan))
	e := p.b.Exprs.Get(id)
	e.ThenExpr, e.Cond, e.ElseExpr = then, cond, elseExpr
	return id, true
}

// parseCast is spec's "as" level.
func (p *Parser) parseCast() (ast.ExprID, bool) {
	left, ok := p.parseOr()
	if !ok {
		return ast.NoExprID, false
	}
	for p.at(token.KwAs) {
		p.advance()
		ty, ok := p.parseTypeRef()
		if !ok {
			return left, false
		}
		leftSpan := p.b.Exprs.Get(left).Span
		id := p.b.NewExpr(ast.ExprCast, leftSpan.Cover(ty.Span))
		e := p.b.Exprs.Get(id)
		e.Operand, e.TargetType = left, ty
		left = id
	}
	return left, true
}

func (p *Parser) parseOr() (ast.ExprID, bool) {
	return p.parseBinaryLevel(p.parseAnd, token.KwOr)
}

func (p *Parser) parseAnd() (ast.ExprID, bool) {
	return p.parseBinaryLevel(p.parseComparison, token.KwAnd)
}

func (p *Parser) parseComparison() (ast.ExprID, bool) {
	return p.parseBinaryLevel(p.parseBitwiseOr, token.EqEq, token.BangEq,
		token.Lt, token.LtEq, token.Gt, token.GtEq, token.KwIs, token.KwIn)
}

func (p *Parser) parseBitwiseOr() (ast.ExprID, bool) {
	return p.parseBinaryLevel(p.parseBitwiseXor, token.Pipe)
}

func (p *Parser) parseBitwiseXor() (ast.ExprID, bool) {
	return p.parseBinaryLevel(p.parseBitwiseAnd, token.Caret)
}

func (p *Parser) parseBitwiseAnd() (ast.ExprID, bool) {
	return p.parseBinaryLevel(p.parseShift, token.Amp)
}

func (p *Parser) parseShift() (ast.ExprID, bool) {
	return p.parseBinaryLevel(p.parseAdditive, token.Shl, token.Shr)
}

func (p *Parser) parseAdditive() (ast.ExprID, bool) {
	return p.parseBinaryLevel(p.parseMultiplicative, token.Plus, token.Minus)
}

func (p *Parser) parseMultiplicative() (ast.ExprID, bool) {
	return p.parseBinaryLevel(p.parseUnary, token.Star, token.Slash, token.Percent)
}

// parseBinaryLevel parses one left-associative precedence level: next()
// parses the tighter level, ops lists the operator kinds this level
// owns.
func (p *Parser) parseBinaryLevel(next func() (ast.ExprID, bool), ops ...token.Kind) (ast.ExprID, bool) {
	left, ok := next()
	if !ok {
		return ast.NoExprID, false
	}
	for p.atAny(ops...) {
		opTok := p.advance()
		right, ok := next()
		if !ok {
			return left, false
		}
		leftSpan := p.b.Exprs.Get(left).Span
		rightSpan := p.b.Exprs.Get(right).Span
		id := p.b.NewExpr(ast.ExprBinary, leftSpan.Cover(rightSpan))
		e := p.b.Exprs.Get(id)
		e.Left, e.Op, e.Right = left, opTok.Kind, right
		left = id
	}
	return left, true
}

func (p *Parser) parseUnary() (ast.ExprID, bool) {
	if p.atAny(token.Minus, token.KwNot, token.Tilde, token.Bang) {
		opTok := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return ast.NoExprID, false
		}
		operandSpan := p.b.Exprs.Get(operand).Span
		id := p.b.NewExpr(ast.ExprUnary, opTok.Span.Cover(operandSpan))
		e := p.b.Exprs.Get(id)
		e.Op, e.Operand = opTok.Kind, operand
		return id, true
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		switch {
		case p.at(token.Dot):
			p.advance()
			nameTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected a member name after '.'")
			if !ok {
				return expr, false
			}
			base := expr
			baseSpan := p.b.Exprs.Get(base).Span
			id := p.b.NewExpr(ast.ExprAttribute, baseSpan.Cover(nameTok.Span))
			e := p.b.Exprs.Get(id)
			e.Base, e.Name = base, p.b.Strings.Intern(nameTok.Text)
			expr = id
		case p.at(token.LBracket):
			p.advance()
			index, ok := p.parseExpr()
			if !ok {
				return expr, false
			}
			closeTok, ok := p.expect(token.RBracket, diag.CodeUnexpectedToken, "expected ']' to close subscript")
			if !ok {
				return expr, false
			}
			base := expr
			baseSpan := p.b.Exprs.Get(base).Span
			id := p.b.NewExpr(ast.ExprSubscript, baseSpan.Cover(closeTok.Span))
			e := p.b.Exprs.Get(id)
			e.Base, e.Operand = base, index
			expr = id
		case p.at(token.LParen):
			args, closeSpan, ok := p.parseArgList()
			if !ok {
				return expr, false
			}
			callee := expr
			calleeSpan := p.b.Exprs.Get(callee).Span
			id := p.b.NewExpr(ast.ExprCall, calleeSpan.Cover(closeSpan))
			e := p.b.Exprs.Get(id)
			e.Callee, e.Args = callee, args
			expr = id
		default:
			return expr, true
		}
	}
}

// parseArgList parses a parenthesized, comma-separated expression list,
// attaching each element's leading and trailing comments (spec §4.2).
// Inside the parens a newline is pure trivia (internal/lexer/trivia.go),
// so an argument's trailing comment is only classified into
// pendingTrailing once the next argument's first token (or the closing
// ')') is actually lexed; each argument's Trailing is therefore
// captured one step behind, mirroring parseArrayLiteral.
func (p *Parser) parseArgList() ([]ast.ExprID, source.Span, bool) {
	openTok, ok := p.expect(token.LParen, diag.CodeUnexpectedToken, "expected '('")
	if !ok {
		return nil, openTok.Span, false
	}
	var args []ast.ExprID
	prev := -1
	for !p.at(token.RParen) && !p.at(token.EOF) {
		leading := p.takeLeading()
		arg, ok := p.parseExpr()
		if prev >= 0 {
			if t := p.takeTrailing(); t != nil {
				p.b.Exprs.Get(args[prev]).Trailing = t
			}
		}
		prev = -1
		if !ok {
			p.resync(token.Comma, token.RParen)
		} else {
			e := p.b.Exprs.Get(arg)
			e.Leading = append(leading, e.Leading...)
			args = append(args, arg)
			prev = len(args) - 1
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	closeTok, ok := p.expect(token.RParen, diag.CodeUnexpectedToken, "expected ')' to close argument list")
	if prev >= 0 {
		if t := p.takeTrailing(); t != nil {
			p.b.Exprs.Get(args[prev]).Trailing = t
		}
	}
	return args, closeTok.Span, ok
}
