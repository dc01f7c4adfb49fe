package token

import "github.com/Razoric480/gdformat/internal/source"

// TriviaKind categorizes non-structural material attached to a token.
// Horizontal whitespace and blank lines are not represented as trivia:
// the printer never reproduces original spacing, and blank lines show
// up directly in the main token stream as repeated Newline tokens, so
// the only trivia kind is a comment.
type TriviaKind uint8

const (
	TriviaLineComment TriviaKind = iota
)

// Trivia is a `#`-comment recognized by the lexer but not consumed as a
// grammar token. It is attached to the following significant token's
// Leading list; the parser decides how each entry attaches to the tree
// (leading/trailing/dangling, and whether it counts as "disabled-line"
// — spec §4.2), using Column and a same-line comparison against
// neighboring tokens.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
	// Column is the trivia's originating 1-based column, which the
	// parser uses to detect disabled-line comments.
	Column uint32
}
