package parser

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/token"
)

// parseAnnotations collects zero or more `@name` / `@name(args...)`
// annotations preceding a member or header (spec §3). The parser just
// records source order; the normalizer only marks same-line
// eligibility.
func (p *Parser) parseAnnotations() []ast.Annotation {
	var out []ast.Annotation
	for p.at(token.At) {
		leading := p.takeLeading()
		at := p.advance()
		nameTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected an annotation name")
		if !ok {
			continue
		}
		ann := ast.Annotation{Name: p.b.Strings.Intern(nameTok.Text), Span: at.Span.Cover(nameTok.Span)}
		if p.at(token.LParen) {
			args, closeSpan, ok := p.parseArgList()
			if ok {
				ann.Args = args
				ann.Span = ann.Span.Cover(closeSpan)
			}
		}
		ann.Leading = leading
		ann.Trailing = p.takeTrailing()
		out = append(out, ann)
		p.skipNewlines()
	}
	return out
}

// parseMember parses one class-level declaration, including any
// annotations immediately preceding it.
func (p *Parser) parseMember() (ast.MemberID, bool) {
	leading := p.takeLeading()
	annotations := p.parseAnnotations()
	leading = append(leading, p.takeLeading()...)

	var id ast.MemberID
	var ok bool
	switch p.lx.Peek().Kind {
	case token.KwVar:
		id, ok = p.parseMemberVarOrConst(ast.MemberVar)
	case token.KwConst:
		id, ok = p.parseMemberVarOrConst(ast.MemberConst)
	case token.KwSignal:
		id, ok = p.parseMemberSignal()
	case token.KwEnum:
		id, ok = p.parseMemberEnum()
	case token.KwStatic, token.KwFunc:
		id, ok = p.parseMemberFunc()
	case token.KwClass:
		id, ok = p.parseMemberInnerClass()
	default:
		p.report(diag.CodeUnexpectedToken, diag.SevError, "expected a class member")
		return ast.NoMemberID, false
	}
	if !id.IsValid() {
		return id, ok
	}
	m := p.b.Members.Get(id)
	m.Annotations = annotations
	m.Leading = leading
	m.Trailing = p.takeTrailing()
	return id, ok
}

// parseMemberVarOrConst parses `var name[: Type][= value]` and its
// optional `get`/`set` accessor suite, which turns the member into a
// MemberProperty (see parseAccessorSuite).
func (p *Parser) parseMemberVarOrConst(kind ast.MemberKind) (ast.MemberID, bool) {
	kw := p.advance()
	nameTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected a variable name")
	if !ok {
		return ast.NoMemberID, false
	}
	id := p.b.NewMember(kind, kw.Span.Cover(nameTok.Span), p.b.Strings.Intern(nameTok.Text))
	m := p.b.Members.Get(id)
	switch {
	case p.at(token.ColonEq):
		p.advance()
		value, ok := p.parseExpr()
		if !ok {
			return id, false
		}
		m.Inferred = true
		m.Value = value
		m.Span = m.Span.Cover(p.b.Exprs.Get(value).Span)
	default:
		m.Type = p.parseOptionalTypeAnnotation()
		if p.at(token.Assign) {
			p.advance()
			value, ok := p.parseExpr()
			if !ok {
				return id, false
			}
			m.Value = value
			m.Span = m.Span.Cover(p.b.Exprs.Get(value).Span)
		}
	}
	if !p.atStmtEnd() || p.at(token.Colon) {
		return p.parseAccessorSuite(id)
	}
	return id, p.expectStmtEnd()
}

// parseAccessorSuite parses a `var`'s trailing `:` followed by an
// indented `set(v):`/`get:` pair in either order (spec §3 invariant:
// the printer, not this parser, emits set before get).
func (p *Parser) parseAccessorSuite(varID ast.MemberID) (ast.MemberID, bool) {
	if _, ok := p.expect(token.Colon, diag.CodeUnexpectedToken, "expected ':' to start accessor block"); !ok {
		return varID, false
	}
	p.skipNewlines()
	if _, ok := p.expect(token.Indent, diag.CodeUnexpectedToken, "expected an indented accessor block"); !ok {
		return varID, false
	}
	p.depth++
	v := p.b.Members.Get(varID)
	v.Kind = ast.MemberProperty
	for !p.at(token.Dedent) && !p.at(token.EOF) {
		p.skipNewlines()
		if p.at(token.Dedent) || p.at(token.EOF) {
			break
		}
		accID, isGetter, ok := p.parseAccessor()
		if !ok {
			p.resync(token.Newline, token.Dedent)
			p.skipNewlines()
			continue
		}
		if isGetter {
			v.Getter = accID
		} else {
			v.Setter = accID
		}
	}
	p.depth--
	close, ok := p.expect(token.Dedent, diag.CodeUnexpectedToken, "expected dedent to close accessor block")
	v.Span = v.Span.Cover(close.Span)
	return varID, ok
}

// parseAccessor parses one `get:` / `set(value):` arm as a MemberFunc,
// identified by the literal accessor keyword rather than the owning
// var's name.
func (p *Parser) parseAccessor() (ast.MemberID, bool, bool) {
	nameTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected 'get' or 'set'")
	if !ok {
		return ast.NoMemberID, false, false
	}
	isGetter := nameTok.Text == "get"
	id := p.b.NewMember(ast.MemberFunc, nameTok.Span, p.b.Strings.Intern(nameTok.Text))
	m := p.b.Members.Get(id)
	if p.at(token.LParen) {
		params, ok := p.parseParamList()
		if !ok {
			return id, isGetter, false
		}
		m.Params = params
	}
	if _, ok := p.expect(token.Colon, diag.CodeUnexpectedToken, "expected ':' to start accessor body"); !ok {
		return id, isGetter, false
	}
	body, bodySpan, ok := p.parseBlock()
	m.Body = body
	m.Span = m.Span.Cover(bodySpan)
	return id, isGetter, ok
}

func (p *Parser) parseMemberSignal() (ast.MemberID, bool) {
	kw := p.advance()
	nameTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected a signal name")
	if !ok {
		return ast.NoMemberID, false
	}
	id := p.b.NewMember(ast.MemberSignal, kw.Span.Cover(nameTok.Span), p.b.Strings.Intern(nameTok.Text))
	m := p.b.Members.Get(id)
	if p.at(token.LParen) {
		params, ok := p.parseParamList()
		if !ok {
			return id, false
		}
		m.Params = params
	}
	return id, p.expectStmtEnd()
}

func (p *Parser) parseMemberEnum() (ast.MemberID, bool) {
	kw := p.advance()
	nameID := p.b.Strings.Intern("")
	if p.at(token.Ident) {
		nameTok := p.advance()
		nameID = p.b.Strings.Intern(nameTok.Text)
	}
	id := p.b.NewMember(ast.MemberEnum, kw.Span, nameID)
	m := p.b.Members.Get(id)
	if _, ok := p.expect(token.LBrace, diag.CodeUnexpectedToken, "expected '{' to start enum body"); !ok {
		return id, false
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		leading := p.takeLeading()
		entryTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected an enum entry name")
		if !ok {
			p.resync(token.Comma, token.RBrace)
			continue
		}
		entry := ast.EnumEntry{Name: p.b.Strings.Intern(entryTok.Text), Value: ast.NoExprID, Span: entryTok.Span}
		entry.Leading = leading
		if p.at(token.Assign) {
			p.advance()
			value, ok := p.parseExpr()
			if ok {
				entry.Value = value
				entry.Span = entry.Span.Cover(p.b.Exprs.Get(value).Span)
			}
		}
		entry.Trailing = p.takeTrailing()
		m.EnumEntries = append(m.EnumEntries, entry)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	close, ok := p.expect(token.RBrace, diag.CodeUnexpectedToken, "expected '}' to close enum body")
	m.Span = m.Span.Cover(close.Span)
	return id, ok && p.expectStmtEnd()
}

func (p *Parser) parseMemberFunc() (ast.MemberID, bool) {
	start := p.lx.Peek()
	static := false
	if p.at(token.KwStatic) {
		p.advance()
		static = true
	}
	if _, ok := p.expect(token.KwFunc, diag.CodeUnexpectedToken, "expected 'func'"); !ok {
		return ast.NoMemberID, false
	}
	nameTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected a function name")
	if !ok {
		return ast.NoMemberID, false
	}
	id := p.b.NewMember(ast.MemberFunc, start.Span, p.b.Strings.Intern(nameTok.Text))
	m := p.b.Members.Get(id)
	m.Static = static
	params, ok := p.parseParamList()
	if !ok {
		return id, false
	}
	m.Params = params
	if p.at(token.Arrow) {
		p.advance()
		m.ReturnType = p.parseOptionalTypeAnnotationForced()
	}
	if _, ok := p.expect(token.Colon, diag.CodeUnexpectedToken, "expected ':' to start function body"); !ok {
		return id, false
	}
	body, bodySpan, ok := p.parseBlock()
	m.Body = body
	m.Span = m.Span.Cover(bodySpan)
	return id, ok
}

func (p *Parser) parseMemberInnerClass() (ast.MemberID, bool) {
	kw := p.advance()
	nameTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected an inner class name")
	if !ok {
		return ast.NoMemberID, false
	}
	id := p.b.NewMember(ast.MemberInnerClass, kw.Span.Cover(nameTok.Span), p.b.Strings.Intern(nameTok.Text))
	m := p.b.Members.Get(id)

	var extends *ast.ExtendsHeader
	if p.at(token.KwExtends) {
		ekw := p.advance()
		base, ok := p.parseTypeRef()
		if ok {
			extends = &ast.ExtendsHeader{Base: base, Span: ekw.Span.Cover(base.Span)}
		}
	}
	if _, ok := p.expect(token.Colon, diag.CodeUnexpectedToken, "expected ':' to start inner class body"); !ok {
		return id, false
	}
	p.skipNewlines()
	if _, ok := p.expect(token.Indent, diag.CodeUnexpectedToken, "expected an indented class body"); !ok {
		return id, false
	}
	p.depth++
	inner := &ast.File{Span: kw.Span, Extends: extends}
	for !p.at(token.Dedent) && !p.at(token.EOF) {
		p.skipNewlines()
		if p.at(token.Dedent) || p.at(token.EOF) {
			break
		}
		memberID, ok := p.parseMember()
		if !ok {
			p.resync(token.Newline, token.Dedent)
			p.skipNewlines()
			continue
		}
		inner.Members = append(inner.Members, memberID)
	}
	p.depth--
	close, ok := p.expect(token.Dedent, diag.CodeUnexpectedToken, "expected dedent to close inner class body")
	inner.Span = inner.Span.Cover(close.Span)
	m.Inner = inner
	m.Span = m.Span.Cover(close.Span)
	return id, ok
}
