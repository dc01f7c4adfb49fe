package ast

import "github.com/Razoric480/gdformat/internal/source"

// MemberKind is the tag of a class-level member.
type MemberKind uint8

const (
	MemberInvalid MemberKind = iota
	MemberVar
	MemberConst
	MemberSignal
	MemberEnum
	MemberFunc
	// MemberProperty is a var with a get/set accessor suite; its
	// Setter/Getter reference MemberFunc entries kept in separate fields
	// whatever order the source wrote them in, and the printer emits
	// set before get (spec §3 invariant).
	MemberProperty
	MemberInnerClass
)

// EnumEntry is one `Name = value` (or implicit) entry of an enum.
type EnumEntry struct {
	Name  source.StringID
	Value ExprID // NoExprID when the value is implicit
	Span  source.Span
	Comments
}

// Member is a tagged union over every class-level declaration kind.
// Fields not used by Kind are left at their zero value.
type Member struct {
	Kind        MemberKind
	Span        source.Span
	Name        source.StringID
	Annotations []Annotation
	Comments

	// MemberVar, MemberConst, MemberProperty.
	Type  *TypeRef
	Value ExprID
	// Inferred marks a `:=` declaration (inferred static type, no
	// explicit TypeRef) so the printer can keep that spelling instead
	// of rendering a plain `=` (spec §8 scenario 2: `var a := [...]`
	// round-trips with `:=`, not `=`).
	Inferred bool

	// MemberProperty only: accessor bodies, one field each regardless of
	// source order; the printer emits Setter before Getter (spec §3
	// invariant).
	Setter MemberID
	Getter MemberID

	// MemberSignal, MemberFunc.
	Params []Parameter

	// MemberEnum.
	EnumEntries []EnumEntry

	// MemberFunc (including accessor bodies referenced by Setter/Getter above).
	Static     bool
	ReturnType *TypeRef
	Body       []StmtID

	// MemberInnerClass.
	Inner *File
}

type Members struct {
	Arena *Arena[Member]
}

func NewMembers(capHint uint) *Members {
	return &Members{Arena: NewArena[Member](capHint)}
}

func (m *Members) New(kind MemberKind, sp source.Span, name source.StringID) MemberID {
	return MemberID(m.Arena.Allocate(Member{Kind: kind, Span: sp, Name: name}))
}

func (m *Members) Get(id MemberID) *Member {
	return m.Arena.Get(uint32(id))
}
