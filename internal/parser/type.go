package parser

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/token"
)

// parseTypeRef parses `Name` or `Name[Generic]` (spec §3: at most one
// generic argument).
func (p *Parser) parseTypeRef() (ast.TypeRef, bool) {
	nameTok, ok := p.expect(token.Ident, diag.CodeUnexpectedToken, "expected a type name")
	if !ok {
		return ast.TypeRef{}, false
	}
	ref := ast.TypeRef{
		Name: p.b.Strings.Intern(nameTok.Text),
		Span: nameTok.Span,
	}
	if p.at(token.LBracket) {
		p.advance()
		inner, ok := p.parseTypeRef()
		if !ok {
			return ref, false
		}
		closeTok, ok := p.expect(token.RBracket, diag.CodeUnexpectedToken, "expected ']' to close generic argument")
		if ok {
			ref.Span = ref.Span.Cover(closeTok.Span)
		}
		ref.Generic = &inner
	}
	return ref, true
}

// parseOptionalTypeAnnotation parses `: Type` when present (var/const/
// parameter declarations).
func (p *Parser) parseOptionalTypeAnnotation() *ast.TypeRef {
	if !p.at(token.Colon) {
		return nil
	}
	p.advance()
	ref, ok := p.parseTypeRef()
	if !ok {
		return nil
	}
	return &ref
}
