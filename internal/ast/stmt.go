package ast

import (
	"github.com/Razoric480/gdformat/internal/source"
	"github.com/Razoric480/gdformat/internal/token"
)

// StmtKind is the tag of a statement node.
type StmtKind uint8

const (
	StmtInvalid StmtKind = iota
	StmtIf
	StmtWhile
	StmtFor
	StmtMatch
	StmtReturn
	StmtPass
	StmtBreak
	StmtContinue
	StmtBreakpoint
	StmtAssert
	StmtAwait
	StmtAssignment
	StmtExpression
	// StmtVarDecl and StmtConstDecl are function-local declarations; the
	// grammar allows `var`/`const` inside a body the same as at class
	// scope, just without annotations or accessors.
	StmtVarDecl
	StmtConstDecl
)

// ElifClause is one `elif cond:` arm of an If chain.
type ElifClause struct {
	Cond ExprID
	Body []StmtID
	Span source.Span
	Comments
}

// PatternKind is the tag of a match-arm pattern (spec §3/§4.6).
type PatternKind uint8

const (
	PatternLiteral PatternKind = iota
	PatternWildcard
	PatternBinding
	PatternArray
	PatternDictionary
	// PatternMulti is a comma-separated list of patterns sharing one
	// arm body, e.g. "50, 75, 100:".
	PatternMulti
)

// DictPatternEntry is one `key: pattern` entry of a dictionary pattern.
type DictPatternEntry struct {
	Key   ExprID
	Value Pattern
}

// Pattern is a match-arm pattern. Fields not used by Kind are zero.
type Pattern struct {
	Kind PatternKind
	Span source.Span

	Literal ExprID // PatternLiteral

	Binding source.StringID // PatternBinding: `var x`

	Elements  []Pattern // PatternArray
	OpenEnded bool      // PatternArray followed by `, ..`

	DictEntries []DictPatternEntry // PatternDictionary

	Values []Pattern // PatternMulti
}

// MatchArm is one `pattern(s):` body in a match statement.
type MatchArm struct {
	Patterns []Pattern
	Body     []StmtID
	Span     source.Span
	Comments
}

// Stmt is a tagged union over every statement kind. Fields not used by
// Kind are left at their zero value.
type Stmt struct {
	Kind StmtKind
	Span source.Span
	Comments

	// StmtIf: Cond/Then, zero or more Elifs, optional Else.
	// StmtWhile: Cond/Then.
	Cond  ExprID
	Then  []StmtID
	Elifs []ElifClause
	Else  []StmtID

	// StmtFor.
	LoopVar  source.StringID
	Iterable ExprID
	// Body reuses Then.

	// StmtMatch.
	Subject ExprID
	Arms    []MatchArm
	// RawTail holds the verbatim source text of a match arm that was
	// opened but not completed before EOF (spec §4.7's TruncatedConstruct):
	// everything from the arm's first token through EOF, passed through
	// unchanged instead of reformatted.
	RawTail string

	// StmtReturn, StmtAwait, StmtExpression: the bare expression.
	Value ExprID

	// StmtAssert: condition in Value, optional message here.
	Message ExprID

	// StmtAssignment.
	Target ExprID
	Op     token.Kind
	RHS    ExprID

	// StmtVarDecl, StmtConstDecl: a function-local `var`/`const`.
	DeclName source.StringID
	DeclType *TypeRef
	// Value (above) holds the optional initializer.
	// Inferred marks a `:=` declaration; see ast.Member.Inferred.
	Inferred bool
}

type Stmts struct {
	Arena *Arena[Stmt]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{Arena: NewArena[Stmt](capHint)}
}

func (s *Stmts) New(kind StmtKind, sp source.Span) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: sp}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}
