package format

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/layout"
)

// elemDoc is one entry of a bracketed, comma-separated construct (array
// element, dictionary entry, call argument, parameter, enum entry).
type elemDoc struct {
	content  *layout.Doc
	leading  []ast.Comment
	trailing *ast.Comment
}

// bracketed builds the `open ... close` document for any comma-
// separated construct per spec §4.4: a flat line first, falling back
// to "compact broken" (all elements on one inner line) then "expanded
// broken" (one element per line) — the two nested Groups below give
// each of those two decisions independently, and a trailing comma is
// inserted exactly when the outer (bracket) group breaks. An element
// with a trailing comment always ends its physical line (a comment
// runs to end-of-line), which is what naturally forces both groups
// broken whenever one is present, not a special case.
func bracketed(open, close string, indentLevels int, items []elemDoc, dangling []ast.Comment) *layout.Doc {
	if len(items) == 0 {
		if len(dangling) == 0 {
			return layout.Text(open + close)
		}
		return layout.Concat(
			layout.Text(open),
			layout.Indent(indentLevels, layout.Concat(layout.HardBreak(), danglingDoc(dangling))),
			layout.Text(close),
		)
	}

	var innerParts []*layout.Doc
	for i, it := range items {
		innerParts = append(innerParts, leadingDoc(it.leading), it.content)
		if i < len(items)-1 {
			innerParts = append(innerParts, layout.Text(","))
			if it.trailing != nil {
				innerParts = append(innerParts, trailingDoc(it.trailing), layout.HardBreak())
			} else {
				innerParts = append(innerParts, layout.Line())
			}
		}
	}
	itemsGroup := layout.Group(layout.Concat(innerParts...))

	last := items[len(items)-1]
	tail := layout.Concat(
		layout.IfBroken(layout.Text(","), layout.Concat()),
		trailingDoc(last.trailing),
	)
	closing := layout.SoftBreak()
	if last.trailing != nil {
		closing = layout.HardBreak()
	}

	return layout.Concat(
		layout.Text(open),
		layout.Group(layout.Concat(
			layout.Indent(indentLevels, layout.Concat(layout.SoftBreak(), itemsGroup, tail)),
			closing,
		)),
		layout.Text(close),
	)
}
