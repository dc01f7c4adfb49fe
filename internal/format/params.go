package format

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/layout"
)

func (c *converter) paramListDoc(params []ast.Parameter) *layout.Doc {
	items := make([]elemDoc, len(params))
	for i, p := range params {
		items[i] = elemDoc{content: c.paramDoc(p), leading: p.Leading, trailing: p.Trailing}
	}
	return bracketed("(", ")", c.collectionIndent(), items, nil)
}

func (c *converter) paramDoc(p ast.Parameter) *layout.Doc {
	parts := []*layout.Doc{layout.Text(c.b.Strings.MustLookup(p.Name))}
	parts = append(parts, c.optionalTypeAnnotationDoc(p.Type))
	if p.Default.IsValid() {
		parts = append(parts, layout.Text(" = "), c.exprDoc(p.Default, false))
	}
	return layout.Concat(parts...)
}
