package format

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/layout"
)

// annotationsDoc renders the annotation run directly above a
// declaration, then the declaration's own header doc. Every annotation
// but the last sits on its own line; the last one is promoted onto the
// header's line by a single Group when the normalizer marked it
// SameLine-eligible (spec §4.3) — whether it actually fits the line
// budget is exactly the Group's own flat-vs-broken decision, so no
// extra bookkeeping is needed here.
func (c *converter) annotationsDoc(list []ast.Annotation, header *layout.Doc) *layout.Doc {
	if len(list) == 0 {
		return header
	}
	var parts []*layout.Doc
	for i, a := range list {
		parts = append(parts, leadingDoc(a.Leading))
		ad := c.annotationDoc(a)
		if i == len(list)-1 {
			if a.SameLine {
				parts = append(parts, layout.Group(layout.Concat(ad, layout.Line(), header)))
			} else {
				parts = append(parts, ad, trailingDoc(a.Trailing), layout.HardBreak(), header)
			}
			return layout.Concat(parts...)
		}
		parts = append(parts, ad, trailingDoc(a.Trailing), layout.HardBreak())
	}
	return layout.Concat(parts...)
}

func (c *converter) annotationDoc(a ast.Annotation) *layout.Doc {
	name := "@" + c.b.Strings.MustLookup(a.Name)
	if len(a.Args) == 0 {
		return layout.Text(name)
	}
	return layout.Concat(layout.Text(name), c.argListDoc(a.Args))
}

func (c *converter) memberDoc(id ast.MemberID) *layout.Doc {
	m := c.b.Members.Get(id)
	if m == nil {
		return layout.Concat()
	}
	switch m.Kind {
	case ast.MemberVar:
		return c.annotationsDoc(m.Annotations, c.varLikeHeaderDoc("var", m))
	case ast.MemberConst:
		return c.annotationsDoc(m.Annotations, c.varLikeHeaderDoc("const", m))
	case ast.MemberSignal:
		return c.annotationsDoc(m.Annotations, layout.Concat(
			layout.Text("signal "+c.b.Strings.MustLookup(m.Name)), c.paramListDoc(m.Params)))
	case ast.MemberEnum:
		return c.annotationsDoc(m.Annotations, c.enumDoc(m))
	case ast.MemberFunc:
		return c.annotationsDoc(m.Annotations, c.funcDoc(m))
	case ast.MemberProperty:
		return c.annotationsDoc(m.Annotations, c.propertyDoc(m))
	case ast.MemberInnerClass:
		return c.annotationsDoc(m.Annotations, c.innerClassDoc(m))
	default:
		return layout.Concat()
	}
}

func (c *converter) varLikeHeaderDoc(kw string, m *ast.Member) *layout.Doc {
	parts := []*layout.Doc{layout.Text(kw + " " + c.b.Strings.MustLookup(m.Name))}
	parts = append(parts, c.optionalTypeAnnotationDoc(m.Type))
	if m.Value.IsValid() {
		parts = append(parts, layout.Text(assignSpelling(m.Inferred)), c.exprDoc(m.Value, true))
	}
	return layout.Concat(parts...)
}

// assignSpelling picks the initializer operator a var/const declaration
// prints with: `:=` for an inferred-type declaration, `=` otherwise
// (spec §8 scenario 2 preserves `:=` rather than collapsing it to `=`).
func assignSpelling(inferred bool) string {
	if inferred {
		return " := "
	}
	return " = "
}

func (c *converter) enumDoc(m *ast.Member) *layout.Doc {
	items := make([]elemDoc, len(m.EnumEntries))
	for i, entry := range m.EnumEntries {
		items[i] = elemDoc{content: c.enumEntryDoc(entry), leading: entry.Leading, trailing: entry.Trailing}
	}
	body := bracketed("{", "}", c.collectionIndent(), items, nil)
	name := c.b.Strings.MustLookup(m.Name)
	if name == "" {
		return layout.Concat(layout.Text("enum "), body)
	}
	return layout.Concat(layout.Text("enum "+name+" "), body)
}

func (c *converter) enumEntryDoc(e ast.EnumEntry) *layout.Doc {
	name := c.b.Strings.MustLookup(e.Name)
	if !e.Value.IsValid() {
		return layout.Text(name)
	}
	return layout.Concat(layout.Text(name+" = "), c.exprDoc(e.Value, false))
}

func (c *converter) funcDoc(m *ast.Member) *layout.Doc {
	var parts []*layout.Doc
	if m.Static {
		parts = append(parts, layout.Text("static "))
	}
	parts = append(parts, layout.Text("func "+c.b.Strings.MustLookup(m.Name)), c.paramListDoc(m.Params))
	if m.ReturnType != nil {
		parts = append(parts, layout.Text(" -> "), c.typeRefDoc(*m.ReturnType))
	}
	parts = append(parts, layout.Text(":"), c.blockDoc(m.Body))
	return layout.Concat(parts...)
}

// propertyDoc renders the var header followed by its accessors, set
// first and then get, regardless of source order (spec §3, §4.3, §8
// scenario 4).
func (c *converter) propertyDoc(m *ast.Member) *layout.Doc {
	header := c.varLikeHeaderDoc("var", m)
	var body []*layout.Doc
	if m.Setter.IsValid() {
		body = append(body, layout.HardBreak(), c.accessorDoc("set", m.Setter))
	}
	if m.Getter.IsValid() {
		body = append(body, layout.HardBreak(), c.accessorDoc("get", m.Getter))
	}
	return layout.Concat(header, layout.Text(":"), layout.Indent(1, layout.Concat(body...)))
}

func (c *converter) accessorDoc(name string, id ast.MemberID) *layout.Doc {
	fn := c.b.Members.Get(id)
	var head *layout.Doc
	if len(fn.Params) > 0 {
		head = layout.Concat(layout.Text(name), c.paramListDoc(fn.Params), layout.Text(":"))
	} else {
		head = layout.Text(name + ":")
	}
	return layout.Concat(head, c.blockDoc(fn.Body))
}

func (c *converter) innerClassDoc(m *ast.Member) *layout.Doc {
	header := layout.Text("class " + c.b.Strings.MustLookup(m.Name))
	if m.Inner.Extends != nil {
		header = layout.Concat(header, layout.Text(" extends "), c.typeRefDoc(m.Inner.Extends.Base))
	}
	return layout.Concat(header, layout.Text(":"), layout.Indent(1, layout.Concat(layout.HardBreak(), c.membersDoc(m.Inner.Members))))
}

// membersDoc renders an ordered member list with the blank-line policy
// between siblings (spec §4.2/§4.4): two blank lines ahead of a
// function or inner class, one after a property, up to one user blank
// preserved between two members of the same kind, one otherwise.
func (c *converter) membersDoc(members []ast.MemberID) *layout.Doc {
	var parts []*layout.Doc
	var prev *ast.Member
	for i, id := range members {
		m := c.b.Members.Get(id)
		if i > 0 {
			parts = append(parts, c.memberSeparatorDoc(prev, m))
		}
		parts = append(parts, leadingDoc(m.Leading), c.memberDoc(id), trailingDoc(m.Trailing))
		prev = m
	}
	return layout.Concat(parts...)
}

func (c *converter) memberSeparatorDoc(prev, next *ast.Member) *layout.Doc {
	blanks := 0
	switch {
	case next.Kind == ast.MemberFunc || next.Kind == ast.MemberInnerClass:
		blanks = 2
	case prev.Kind == ast.MemberProperty:
		blanks = 1
	case prev.Kind == next.Kind:
		if c.blankLinesBefore(prev.Span, firstSpan(next.Leading, next.Span)) {
			blanks = 1
		}
	default:
		blanks = 1
	}
	parts := make([]*layout.Doc, 0, blanks+1)
	for i := 0; i <= blanks; i++ {
		parts = append(parts, layout.HardBreak())
	}
	return layout.Concat(parts...)
}
