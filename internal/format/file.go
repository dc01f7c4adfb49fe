package format

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/layout"
)

// fileDoc renders a whole file: its class_name/extends header, then
// file-scope annotations, placed after the headers whatever their
// source position (spec §4.3), then the member list.
func (c *converter) fileDoc(id ast.FileID) *layout.Doc {
	f := c.b.Files.Get(id)
	var parts []*layout.Doc
	wroteHeader := false

	if f.ClassName != nil {
		parts = append(parts, leadingDoc(f.ClassName.Leading),
			layout.Text("class_name "+c.b.Strings.MustLookup(f.ClassName.Name)),
			trailingDoc(f.ClassName.Trailing))
		wroteHeader = true
	}
	if f.Extends != nil {
		if wroteHeader {
			parts = append(parts, layout.HardBreak())
		}
		parts = append(parts, leadingDoc(f.Extends.Leading),
			layout.Text("extends "), c.typeRefDoc(f.Extends.Base),
			trailingDoc(f.Extends.Trailing))
		wroteHeader = true
	}
	for _, a := range f.Annotations {
		if wroteHeader {
			parts = append(parts, layout.HardBreak())
		}
		parts = append(parts, leadingDoc(a.Leading), c.annotationDoc(a), trailingDoc(a.Trailing))
		wroteHeader = true
	}

	if wroteHeader && len(f.Members) > 0 {
		parts = append(parts, layout.HardBreak(), layout.HardBreak())
	}
	parts = append(parts, c.membersDoc(f.Members))

	return layout.Concat(parts...)
}
