package ast

import "github.com/Razoric480/gdformat/internal/source"

// Hints sizes each arena's initial capacity; zero picks a default.
type Hints struct{ Files, Members, Stmts, Exprs uint }

// Builder owns every arena the parser allocates into plus the string
// interner shared across identifiers, annotation names, and type names.
type Builder struct {
	Files   *Files
	Members *Members
	Stmts   *Stmts
	Exprs   *Exprs
	Strings *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1
	}
	if hints.Members == 0 {
		hints.Members = 1 << 6
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 7
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Files:   NewFiles(hints.Files),
		Members: NewMembers(hints.Members),
		Stmts:   NewStmts(hints.Stmts),
		Exprs:   NewExprs(hints.Exprs),
		Strings: source.NewInterner(),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) NewMember(kind MemberKind, sp source.Span, name source.StringID) MemberID {
	return b.Members.New(kind, sp, name)
}

func (b *Builder) NewStmt(kind StmtKind, sp source.Span) StmtID {
	return b.Stmts.New(kind, sp)
}

func (b *Builder) NewExpr(kind ExprKind, sp source.Span) ExprID {
	return b.Exprs.New(kind, sp)
}

func (b *Builder) PushMember(file FileID, member MemberID) {
	f := b.Files.Get(file)
	f.Members = append(f.Members, member)
}
