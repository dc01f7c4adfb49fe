// Package format builds the public Format entry point (spec §6):
// lex, parse, normalize, then walk the resulting ast.File into an
// internal/layout.Doc tree and render it with the best-fit printer.
package format

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/fmtconfig"
	"github.com/Razoric480/gdformat/internal/source"
)

// converter walks one already-normalized ast.File into a layout.Doc
// tree. It carries no mutable state of its own beyond the shared
// builder, options, and file set (needed only to measure blank-line
// gaps between sibling statements/members), matching the teacher's
// stateless per-construct print_*.go functions
// (internal/format/print_call.go and siblings), adapted here to build a
// document instead of writing text directly.
type converter struct {
	b    *ast.Builder
	fs   *source.FileSet
	file source.FileID
	opts fmtconfig.Options
}

// collectionIndent is the indent level a broken call/array/dictionary
// body gets, per Options.IndentInMultilineBlock (spec §4.4).
func (c *converter) collectionIndent() int {
	return 1 + c.opts.IndentInMultilineBlock
}

// blankLinesBefore reports whether source left at least one fully
// blank physical line between the end of prevEnd and the start of the
// next node's own leading comments (or the node itself, when it has
// none) — spec §4.2/§4.5: "up to one user blank line is preserved
// between members/statements of the same kind."
func (c *converter) blankLinesBefore(prevEnd, nextStart source.Span) bool {
	if prevEnd.Empty() && prevEnd.Start == 0 && prevEnd.End == 0 {
		return false
	}
	_, prevLC := c.fs.Resolve(prevEnd)
	nextLC, _ := c.fs.Resolve(nextStart)
	return nextLC.Line > prevLC.Line+1
}

// firstSpan returns the span a blank-line check should measure from:
// a node's leading comments if any (a blank line above the first
// comment still counts), else the node's own span.
func firstSpan(leading []ast.Comment, own source.Span) source.Span {
	if len(leading) > 0 {
		return leading[0].Span
	}
	return own
}
