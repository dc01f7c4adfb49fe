package ast

import (
	"github.com/Razoric480/gdformat/internal/source"
	"github.com/Razoric480/gdformat/internal/token"
)

// ExprKind is the tag of an expression node.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprLiteral
	ExprIdentifier
	ExprSelf
	ExprSuper
	ExprGetNode
	ExprPreload
	ExprCall
	ExprAttribute
	ExprSubscript
	ExprUnary
	ExprBinary
	ExprTernary
	ExprCast
	ExprArray
	ExprDictionary
	ExprLambda
	ExprParenthesized
)

// LiteralKind distinguishes the literal kinds spec §3 lists under Literal.
type LiteralKind uint8

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralString
	LiteralStringName
	LiteralNodePath
	LiteralBool
	LiteralNull
)

// DictStyle records which of GDScript's two dictionary key syntaxes the
// source used, so the printer can preserve it (spec §3).
type DictStyle uint8

const (
	DictStylePython DictStyle = iota // "key": value
	DictStyleLua                     // key = value
)

// DictEntry is one key/value pair of a Dictionary literal.
type DictEntry struct {
	Key   ExprID
	Value ExprID
	Span  source.Span
	Comments
}

// Expr is a tagged union over every expression kind. Fields not used by
// Kind are left at their zero value.
type Expr struct {
	Kind ExprKind
	Span source.Span
	Comments

	// ExprLiteral: Text is the verbatim source spelling (quote style,
	// number base/exponent) so it round-trips byte-for-byte.
	LitKind LiteralKind
	Text    string

	// ExprIdentifier, ExprAttribute.Attr, ExprLambda's optional name.
	Name source.StringID

	// ExprGetNode: Name holds an unquoted `$Path/To/Node`; Quoted marks
	// the `$"..."` form, in which case Text holds the quoted spelling.
	Quoted bool

	// ExprCall: Callee/Args. ExprPreload: Args[0] is the path argument.
	Callee ExprID
	Args   []ExprID

	// ExprAttribute, ExprSubscript, ExprUnary, ExprCast, ExprParenthesized.
	Base    ExprID
	Op      token.Kind
	Operand ExprID

	// ExprBinary.
	Left  ExprID
	Right ExprID

	// ExprTernary: `ThenExpr if Cond else ElseExpr`.
	Cond     ExprID
	ThenExpr ExprID
	ElseExpr ExprID

	// ExprCast: `Operand as TargetType`.
	TargetType TypeRef

	// ExprArray, ExprDictionary.
	Elements []ExprID
	Entries  []DictEntry
	Style    DictStyle
	// MustBreak is set by the normalizer when the collection contains a
	// comment and so must render multi-line regardless of width (spec §4.3).
	MustBreak bool

	// ExprLambda.
	Params     []Parameter
	ReturnType *TypeRef
	Body       []StmtID
}

type Exprs struct {
	Arena *Arena[Expr]
}

func NewExprs(capHint uint) *Exprs {
	return &Exprs{Arena: NewArena[Expr](capHint)}
}

func (e *Exprs) New(kind ExprKind, sp source.Span) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: sp}))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}
