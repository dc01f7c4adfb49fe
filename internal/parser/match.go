package parser

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/token"
)

// parseMatch implements the match-arm state machine of spec §4.6:
// expect a pattern list, then ':', then an indented arm body, repeating
// until the block dedents back out of the match.
func (p *Parser) parseMatch() (ast.StmtID, bool) {
	kw := p.advance()
	subject, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Colon, diag.CodeUnexpectedToken, "expected ':' after match subject"); !ok {
		return ast.NoStmtID, false
	}
	p.skipNewlines()
	_, ok = p.expect(token.Indent, diag.CodeUnexpectedToken, "expected an indented match body")
	if !ok {
		return ast.NoStmtID, false
	}
	p.depth++
	var arms []ast.MatchArm
	for !p.at(token.Dedent) && !p.at(token.EOF) {
		p.skipNewlines()
		if p.at(token.Dedent) || p.at(token.EOF) {
			break
		}
		arm, ok := p.parseMatchArm()
		if !ok {
			if p.pendingRawTail != "" {
				rawTail := p.pendingRawTail
				p.pendingRawTail = ""
				p.depth--
				id := p.b.NewStmt(ast.StmtMatch, kw.Span.Cover(p.lx.Peek().Span))
				s := p.b.Stmts.Get(id)
				s.Subject, s.Arms, s.RawTail = subject, arms, rawTail
				return id, false
			}
			p.resync(token.Newline, token.Dedent)
			p.skipNewlines()
			continue
		}
		arms = append(arms, arm)
	}
	p.depth--
	close, ok := p.expect(token.Dedent, diag.CodeUnexpectedToken, "expected dedent to close match body")
	id := p.b.NewStmt(ast.StmtMatch, kw.Span.Cover(close.Span))
	s := p.b.Stmts.Get(id)
	s.Subject, s.Arms = subject, arms
	return id, ok
}

func (p *Parser) parseMatchArm() (ast.MatchArm, bool) {
	leading := p.takeLeading()
	var patterns []ast.Pattern
	for {
		pat, ok := p.parsePattern()
		if !ok {
			return ast.MatchArm{}, false
		}
		patterns = append(patterns, pat)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	// An arm whose pattern list is complete but whose ':' never arrives
	// because the file simply ends is an opened-but-truncated construct
	// (spec §4.7), not an ordinary syntax error: the caller passes the
	// arm's source through unchanged instead of erroring out.
	if tok := p.lx.Peek(); tok.Kind == token.EOF || int(tok.Span.Start) == len(p.fs.Get(p.file).Content) {
		p.reportTruncatedTail(patterns[0].Span.Start, "match arm truncated before end of file")
		return ast.MatchArm{}, false
	}
	if _, ok := p.expect(token.Colon, diag.CodeUnexpectedToken, "expected ':' after match pattern"); !ok {
		return ast.MatchArm{}, false
	}
	body, bodySpan, ok := p.parseBlock()
	first := patterns[0].Span
	arm := ast.MatchArm{Patterns: patterns, Body: body, Span: first.Cover(bodySpan)}
	arm.Leading = leading
	arm.Trailing = p.takeTrailing()
	return arm, ok
}

func (p *Parser) parsePattern() (ast.Pattern, bool) {
	// The lexer scans a lone `_` as an identifier, so the wildcard is
	// recognized by its text.
	if tok := p.lx.Peek(); tok.Kind == token.Ident && tok.Text == "_" {
		p.advance()
		return ast.Pattern{Kind: ast.PatternWildcard, Span: tok.Span}, true
	}
	switch p.lx.Peek().Kind {
	case token.Underscore:
		tok := p.advance()
		return ast.Pattern{Kind: ast.PatternWildcard, Span: tok.Span}, true
	case token.KwVar:
		kw := p.advance()
		nameTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected a binding name")
		if !ok {
			return ast.Pattern{}, false
		}
		return ast.Pattern{
			Kind:    ast.PatternBinding,
			Binding: p.b.Strings.Intern(nameTok.Text),
			Span:    kw.Span.Cover(nameTok.Span),
		}, true
	case token.LBracket:
		return p.parseArrayPattern()
	case token.LBrace:
		return p.parseDictPattern()
	default:
		lit, ok := p.parseExpr()
		if !ok {
			return ast.Pattern{}, false
		}
		sp := p.b.Exprs.Get(lit).Span
		return ast.Pattern{Kind: ast.PatternLiteral, Literal: lit, Span: sp}, true
	}
}

func (p *Parser) parseArrayPattern() (ast.Pattern, bool) {
	open := p.advance()
	var elements []ast.Pattern
	openEnded := false
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.DotDot) {
			p.advance()
			openEnded = true
			break
		}
		elem, ok := p.parsePattern()
		if !ok {
			p.resync(token.Comma, token.RBracket)
		} else {
			elements = append(elements, elem)
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	close, ok := p.expect(token.RBracket, diag.CodeUnexpectedToken, "expected ']' to close array pattern")
	return ast.Pattern{
		Kind:      ast.PatternArray,
		Elements:  elements,
		OpenEnded: openEnded,
		Span:      open.Span.Cover(close.Span),
	}, ok
}

func (p *Parser) parseDictPattern() (ast.Pattern, bool) {
	open := p.advance()
	var entries []ast.DictPatternEntry
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		key, ok := p.parseExpr()
		if !ok {
			p.resync(token.Comma, token.RBrace)
			continue
		}
		if _, ok := p.expect(token.Colon, diag.CodeUnexpectedToken, "expected ':' in dictionary pattern"); !ok {
			p.resync(token.Comma, token.RBrace)
			continue
		}
		value, ok := p.parsePattern()
		if !ok {
			p.resync(token.Comma, token.RBrace)
			continue
		}
		entries = append(entries, ast.DictPatternEntry{Key: key, Value: value})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	close, ok := p.expect(token.RBrace, diag.CodeUnexpectedToken, "expected '}' to close dictionary pattern")
	return ast.Pattern{Kind: ast.PatternDictionary, DictEntries: entries, Span: open.Span.Cover(close.Span)}, ok
}
