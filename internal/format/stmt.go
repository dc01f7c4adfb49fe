package format

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/layout"
	"github.com/Razoric480/gdformat/internal/token"
)

// blockDoc renders an indented statement list following a header's
// trailing ':' (spec §4.1: a body is one tab deeper than its header).
func (c *converter) blockDoc(stmts []ast.StmtID) *layout.Doc {
	var parts []*layout.Doc
	for i, id := range stmts {
		s := c.b.Stmts.Get(id)
		if i > 0 {
			prev := c.b.Stmts.Get(stmts[i-1])
			if c.blankLinesBefore(prev.Span, firstSpan(s.Leading, s.Span)) {
				parts = append(parts, layout.HardBreak())
			}
		}
		parts = append(parts, layout.HardBreak(), leadingDoc(s.Leading), c.stmtDoc(id), trailingDoc(s.Trailing))
	}
	return layout.Indent(1, layout.Concat(parts...))
}

func (c *converter) stmtDoc(id ast.StmtID) *layout.Doc {
	s := c.b.Stmts.Get(id)
	if s == nil {
		return layout.Concat()
	}
	switch s.Kind {
	case ast.StmtIf:
		return c.ifDoc(s)
	case ast.StmtWhile:
		return layout.Concat(layout.Text("while "), c.exprDoc(s.Cond, false), layout.Text(":"), c.blockDoc(s.Then))
	case ast.StmtFor:
		return layout.Concat(
			layout.Text("for "), layout.Text(c.b.Strings.MustLookup(s.LoopVar)), layout.Text(" in "),
			c.exprDoc(s.Iterable, false), layout.Text(":"), c.blockDoc(s.Then),
		)
	case ast.StmtMatch:
		return c.matchDoc(s)
	case ast.StmtReturn:
		if !s.Value.IsValid() {
			return layout.Text("return")
		}
		return layout.Concat(layout.Text("return "), c.exprDoc(s.Value, true))
	case ast.StmtPass:
		return layout.Text("pass")
	case ast.StmtBreak:
		return layout.Text("break")
	case ast.StmtContinue:
		return layout.Text("continue")
	case ast.StmtBreakpoint:
		return layout.Text("breakpoint")
	case ast.StmtAssert:
		return c.assertDoc(s)
	case ast.StmtAwait:
		return layout.Concat(layout.Text("await "), c.exprDoc(s.Value, true))
	case ast.StmtAssignment:
		return layout.Concat(c.exprDoc(s.Target, false), layout.Text(" "+token.Spelling(s.Op)+" "), c.exprDoc(s.RHS, true))
	case ast.StmtExpression:
		return c.exprDoc(s.Value, true)
	case ast.StmtVarDecl:
		return c.localDeclDoc("var", s)
	case ast.StmtConstDecl:
		return c.localDeclDoc("const", s)
	default:
		return layout.Concat()
	}
}

func (c *converter) localDeclDoc(kw string, s *ast.Stmt) *layout.Doc {
	parts := []*layout.Doc{layout.Text(kw + " " + c.b.Strings.MustLookup(s.DeclName))}
	parts = append(parts, c.optionalTypeAnnotationDoc(s.DeclType))
	if s.Value.IsValid() {
		parts = append(parts, layout.Text(assignSpelling(s.Inferred)), c.exprDoc(s.Value, true))
	}
	return layout.Concat(parts...)
}

func (c *converter) ifDoc(s *ast.Stmt) *layout.Doc {
	parts := []*layout.Doc{
		layout.Text("if "), c.exprDoc(s.Cond, false), layout.Text(":"), c.blockDoc(s.Then),
	}
	for _, el := range s.Elifs {
		parts = append(parts, layout.HardBreak(), leadingDoc(el.Leading),
			layout.Text("elif "), c.exprDoc(el.Cond, false), layout.Text(":"), c.blockDoc(el.Body), trailingDoc(el.Trailing))
	}
	if len(s.Else) > 0 {
		parts = append(parts, layout.HardBreak(), layout.Text("else:"), c.blockDoc(s.Else))
	}
	return layout.Concat(parts...)
}

// assertDoc renders `assert(cond)` / `assert(cond, message)`. Only the
// condition breaks across lines; the message always stays on the same
// line as the condition's closing paren (spec §4.4), so the message is
// appended outside the condition's own Group rather than treated as a
// second bracketed argument.
func (c *converter) assertDoc(s *ast.Stmt) *layout.Doc {
	condDoc := s.Value
	cond := c.exprDoc(condDoc, false)
	inner := layout.Group(layout.Concat(
		layout.Indent(c.collectionIndent(), layout.Concat(layout.SoftBreak(), cond)),
		layout.SoftBreak(),
	))
	if !s.Message.IsValid() {
		return layout.Concat(layout.Text("assert("), inner, layout.Text(")"))
	}
	return layout.Concat(layout.Text("assert("), inner, layout.Text(", "), c.exprDoc(s.Message, false), layout.Text(")"))
}

func (c *converter) matchDoc(s *ast.Stmt) *layout.Doc {
	parts := []*layout.Doc{layout.Text("match "), c.exprDoc(s.Subject, false), layout.Text(":")}
	if s.RawTail != "" {
		// The final arm was opened but never completed before EOF (spec
		// §4.7's TruncatedConstruct): pass its source through verbatim
		// rather than rendering the partially-parsed arms.
		parts = append(parts, layout.Indent(1, layout.Concat(layout.HardBreak(), layout.Text(s.RawTail))))
		return layout.Concat(parts...)
	}
	var armParts []*layout.Doc
	for i, arm := range s.Arms {
		if i > 0 {
			armParts = append(armParts, layout.HardBreak())
		}
		armParts = append(armParts, layout.HardBreak(), leadingDoc(arm.Leading), c.matchArmHeaderDoc(arm), trailingDoc(arm.Trailing))
	}
	parts = append(parts, layout.Indent(1, layout.Concat(armParts...)))
	return layout.Concat(parts...)
}

func (c *converter) matchArmHeaderDoc(arm ast.MatchArm) *layout.Doc {
	patternDocs := make([]*layout.Doc, len(arm.Patterns))
	for i, pat := range arm.Patterns {
		patternDocs[i] = c.patternDoc(pat)
	}
	var parts []*layout.Doc
	for i, pd := range patternDocs {
		if i > 0 {
			parts = append(parts, layout.Text(", "))
		}
		parts = append(parts, pd)
	}
	parts = append(parts, layout.Text(":"))
	parts = append(parts, c.blockDoc(arm.Body))
	return layout.Concat(parts...)
}

func (c *converter) patternDoc(p ast.Pattern) *layout.Doc {
	switch p.Kind {
	case ast.PatternWildcard:
		return layout.Text("_")
	case ast.PatternBinding:
		return layout.Text("var " + c.b.Strings.MustLookup(p.Binding))
	case ast.PatternLiteral:
		return c.exprDoc(p.Literal, false)
	case ast.PatternArray:
		var parts []*layout.Doc
		for i, el := range p.Elements {
			if i > 0 {
				parts = append(parts, layout.Text(", "))
			}
			parts = append(parts, c.patternDoc(el))
		}
		if p.OpenEnded {
			if len(p.Elements) > 0 {
				parts = append(parts, layout.Text(", "))
			}
			parts = append(parts, layout.Text(".."))
		}
		return layout.Concat(append([]*layout.Doc{layout.Text("[")}, append(parts, layout.Text("]"))...)...)
	case ast.PatternDictionary:
		var parts []*layout.Doc
		for i, entry := range p.DictEntries {
			if i > 0 {
				parts = append(parts, layout.Text(", "))
			}
			parts = append(parts, c.exprDoc(entry.Key, false), layout.Text(": "), c.patternDoc(entry.Value))
		}
		return layout.Concat(append([]*layout.Doc{layout.Text("{")}, append(parts, layout.Text("}"))...)...)
	case ast.PatternMulti:
		var parts []*layout.Doc
		for i, v := range p.Values {
			if i > 0 {
				parts = append(parts, layout.Text(", "))
			}
			parts = append(parts, c.patternDoc(v))
		}
		return layout.Concat(parts...)
	default:
		return layout.Concat()
	}
}
