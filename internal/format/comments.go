package format

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/layout"
)

// leadingDoc renders a node's stand-alone comments, one per line, each
// forcing a hard break so the enclosing group always renders broken
// when a leading comment is present (spec §4.3's MustBreak freezing
// relies on exactly this propagation).
func leadingDoc(comments []ast.Comment) *layout.Doc {
	if len(comments) == 0 {
		return layout.Concat()
	}
	parts := make([]*layout.Doc, 0, len(comments)*2)
	for _, c := range comments {
		parts = append(parts, layout.Text(c.Text), layout.HardBreak())
	}
	return layout.Concat(parts...)
}

// trailingDoc renders a node's same-line comment, if any, as a single
// space plus the comment text with no break of its own; the caller
// supplies whatever ends the line.
func trailingDoc(c *ast.Comment) *layout.Doc {
	if c == nil {
		return layout.Concat()
	}
	return layout.Concat(layout.Text(" "), layout.Text(c.Text))
}

// danglingDoc renders the comments left inside an otherwise-empty
// bracketed construct, one per line.
func danglingDoc(comments []ast.Comment) *layout.Doc {
	return leadingDoc(comments)
}
