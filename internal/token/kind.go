package token

// Kind categorizes a single token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	// Indent/Dedent/Newline are synthetic structural tokens the lexer
	// derives from leading-tab columns (spec §4.1); they never
	// correspond to a single literal rune.
	Indent
	Dedent
	Newline

	Ident

	// Keywords.
	KwVar
	KwConst
	KwSignal
	KwEnum
	KwFunc
	KwClassName
	KwExtends
	KwClass
	KwIf
	KwElif
	KwElse
	KwWhile
	KwFor
	KwIn
	KwMatch
	KwReturn
	KwPass
	KwBreak
	KwContinue
	KwBreakpoint
	KwAssert
	KwAwait
	KwStatic
	KwIs
	KwAs
	KwAnd
	KwOr
	KwNot
	KwSelf
	KwSuper
	KwPreload
	KwTrue
	KwFalse
	KwNull

	// Literals.
	IntLit
	FloatLit
	StringLit     // '...' or "..." or triple-quoted, or r"..."
	StringNameLit // &"..."
	NodePathLit   // ^"..." or $Path/To/Node or $"..."

	// Operators and punctuation.
	Plus             // +
	Minus            // -
	Star             // *
	StarStar         // **
	Slash            // /
	Percent          // %
	Assign           // =
	PlusAssign       // +=
	MinusAssign      // -=
	StarAssign       // *=
	SlashAssign      // /=
	PercentAssign    // %=
	StarStarAssign   // **=
	AmpAssign        // &=
	PipeAssign       // |=
	CaretAssign      // ^=
	ShlAssign        // <<=
	ShrAssign        // >>=
	EqEq             // ==
	Bang             // !
	BangEq           // !=
	Lt               // <
	LtEq             // <=
	Gt               // >
	GtEq             // >=
	Shl              // <<
	Shr              // >>
	Amp              // &
	Pipe             // |
	Caret            // ^
	Tilde            // ~
	Colon            // :
	ColonEq          // :=
	Comma            // ,
	Dot              // .
	DotDot           // ..
	Arrow            // ->
	LParen           // (
	RParen           // )
	LBrace           // {
	RBrace           // }
	LBracket         // [
	RBracket         // ]
	At         // @
	Dollar     // $
	Underscore // _
	Semicolon  // ;
)
