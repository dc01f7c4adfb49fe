package format

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/layout"
)

// typeRefDoc renders `Name` or `Name[Generic]`; a generic argument is
// never wide enough on its own to need a break (spec §3: at most one
// generic slot).
func (c *converter) typeRefDoc(t ast.TypeRef) *layout.Doc {
	name := c.b.Strings.MustLookup(t.Name)
	if t.Generic == nil {
		return layout.Text(name)
	}
	return layout.Concat(layout.Text(name), layout.Text("["), c.typeRefDoc(*t.Generic), layout.Text("]"))
}

func (c *converter) optionalTypeAnnotationDoc(t *ast.TypeRef) *layout.Doc {
	if t == nil {
		return layout.Concat()
	}
	return layout.Concat(layout.Text(": "), c.typeRefDoc(*t))
}
