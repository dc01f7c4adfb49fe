// Package normalize rewrites a parsed file in place into the canonical
// shape the layout/printer stage expects (spec §4.3): redundant
// parentheses removed, comment-bearing collections frozen to a broken
// layout, and declaration-level annotations marked eligible for
// same-line promotion. It runs once per file, after parsing and
// before layout, the way the teacher's internal/hir.NormalizeModule
// runs once per module between parsing and lowering.
package normalize

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/source"
)

// File normalizes the parsed tree rooted at id in place.
//
// Property accessor ordering needs no pass here: the parser already
// records a property's Setter/Getter as independent Member fields
// regardless of which one the source wrote first, so there is nothing
// left to reorder at the AST level; only the printer's fixed emission
// order (set then get) is left to enforce, which is its job, not
// normalize's.
func File(fs *source.FileSet, b *ast.Builder, id ast.FileID) {
	c := &ctx{fs: fs, b: b}
	c.file(b.Files.Get(id))
}

type ctx struct {
	fs *source.FileSet
	b  *ast.Builder
}

func (c *ctx) file(f *ast.File) {
	annotations(f.Annotations)
	for _, mid := range f.Members {
		c.member(mid)
	}
}

func (c *ctx) member(id ast.MemberID) {
	m := c.b.Members.Get(id)
	if m == nil {
		return
	}
	annotations(m.Annotations)
	m.Value = c.expr(m.Value)
	for i := range m.Params {
		m.Params[i].Default = c.expr(m.Params[i].Default)
	}
	for i := range m.EnumEntries {
		m.EnumEntries[i].Value = c.expr(m.EnumEntries[i].Value)
	}
	c.block(m.Body)
	if m.Setter.IsValid() {
		c.member(m.Setter)
	}
	if m.Getter.IsValid() {
		c.member(m.Getter)
	}
	if m.Inner != nil {
		c.file(m.Inner)
	}
}
