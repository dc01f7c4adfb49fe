package parser

import (
	"strings"

	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/token"
)

// absorbLeading classifies the trivia carried by a just-consumed token
// (spec §4.2). A comment on the same physical line as the previously
// consumed real token is a trailing comment for whatever construct just
// finished; a comment on its own line is a leading comment for whatever
// construct comes next. Indent/Dedent/Newline tokens never themselves
// count as "real" code for line-tracking purposes.
func (p *Parser) absorbLeading(tok token.Token) {
	for _, tr := range tok.Leading {
		startLine, _ := p.fs.Resolve(tr.Span)
		c := ast.Comment{
			Text:   tr.Text,
			Span:   tr.Span,
			Column: tr.Column,
		}
		if p.lastCodeLine != 0 && startLine.Line == p.lastCodeLine {
			p.pendingTrailing = &c
			continue
		}
		c.Disabled = p.isDisabledLine(tr.Column, tr.Text)
		p.pendingLeading = append(p.pendingLeading, c)
	}

	switch tok.Kind {
	case token.Newline, token.Indent, token.Dedent, token.EOF:
		// Structural tokens never move lastCodeLine.
	default:
		_, end := p.fs.Resolve(tok.Span)
		p.lastCodeLine = end.Line
	}
}

// isDisabledLine reports whether a stand-alone comment's column marks
// it as commented-out code left at a non-matching indentation (spec
// §4.1/§GLOSSARY). A comment at the block's own expected column is
// ordinary; one that sits deeper (and looks like code: a tab right
// after the `#`) is disabled-line. The printer does not keep its
// original column; it prints at the block's indentation.
func (p *Parser) isDisabledLine(column uint32, text string) bool {
	expected := uint32(p.depth) + 1
	if column <= expected {
		return false
	}
	body := strings.TrimPrefix(text, "#")
	return strings.HasPrefix(body, "\t")
}

// takeLeading returns and clears the accumulated stand-alone comments,
// for attachment as a construct's Leading slot.
func (p *Parser) takeLeading() []ast.Comment {
	if len(p.pendingLeading) == 0 {
		return nil
	}
	out := p.pendingLeading
	p.pendingLeading = nil
	return out
}

// takeTrailing returns and clears a same-line comment waiting to attach
// to whatever construct just finished.
func (p *Parser) takeTrailing() *ast.Comment {
	c := p.pendingTrailing
	p.pendingTrailing = nil
	return c
}

// takeDangling converts any stand-alone comments collected while
// scanning for (but not finding) elements inside a bracketed construct
// into that construct's Dangling slot (spec §3).
func (p *Parser) takeDangling() []ast.Comment {
	return p.takeLeading()
}
