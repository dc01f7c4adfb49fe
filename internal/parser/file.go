package parser

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/token"
)

// parseFile parses a whole source file: optional class_name, optional
// extends, file-scope annotations, then class-level members (spec §3).
func (p *Parser) parseFile() ast.FileID {
	start := p.lx.Peek()
	id := p.b.NewFile(start.Span)
	f := p.b.Files.Get(id)

	p.skipNewlines()

	// File-scope annotations (`@tool`, `@icon(...)`, `@static_unload`)
	// may appear before class_name, between class_name and extends, or
	// after extends; fileDoc prints them after both headers (spec §4.3).
	// Any other annotation met here belongs to the first member.
	var annotations []ast.Annotation
	annotations = append(annotations, p.parseAnnotations()...)
	p.skipNewlines()

	if p.at(token.KwClassName) {
		kw := p.advance()
		nameTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected a name after class_name")
		if ok {
			f.ClassName = &ast.ClassNameHeader{
				Name: p.b.Strings.Intern(nameTok.Text),
				Span: kw.Span.Cover(nameTok.Span),
			}
			f.ClassName.Trailing = p.takeTrailing()
			p.expectStmtEnd()
		}
		p.skipNewlines()
	}

	annotations = append(annotations, p.parseAnnotations()...)
	p.skipNewlines()

	if p.at(token.KwExtends) {
		kw := p.advance()
		base, ok := p.parseTypeRef()
		if ok {
			f.Extends = &ast.ExtendsHeader{Base: base, Span: kw.Span.Cover(base.Span)}
			f.Extends.Trailing = p.takeTrailing()
			p.expectStmtEnd()
		}
		p.skipNewlines()
	}

	annotations = append(annotations, p.parseAnnotations()...)
	var carry []ast.Annotation
	for _, a := range annotations {
		switch p.b.Strings.MustLookup(a.Name) {
		case "tool", "icon", "static_unload":
			f.Annotations = append(f.Annotations, a)
		default:
			carry = append(carry, a)
		}
	}
	p.skipNewlines()

	for !p.at(token.EOF) {
		p.skipNewlines()
		if p.at(token.EOF) {
			break
		}
		memberID, ok := p.parseMember()
		// Keep a member that got far enough to have a valid id even when
		// it could not be fully parsed (spec §4.7), e.g. a function whose
		// body holds a truncated match statement.
		if memberID.IsValid() {
			f.Members = append(f.Members, memberID)
			if carry != nil {
				m := p.b.Members.Get(memberID)
				m.Annotations = append(carry, m.Annotations...)
				carry = nil
			}
		}
		if !ok {
			p.resync(token.Newline, token.EOF)
			p.skipNewlines()
			continue
		}
	}

	f.Annotations = append(f.Annotations, carry...)
	eof := p.lx.Peek()
	f.Span = f.Span.Cover(eof.Span)
	return id
}
