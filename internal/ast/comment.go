package ast

import "github.com/Razoric480/gdformat/internal/source"

// Comment is one recognized `#`-comment, classified by the parser
// (isDisabledLine) as ordinary or disabled-line (spec §4.1/§4.2).
type Comment struct {
	Text     string
	Span     source.Span
	Disabled bool
	// Column is the comment's original 1-based column. The printer does
	// not use it: a disabled-line comment is printed at the surrounding
	// block's indentation like any other comment, not at this column.
	Column uint32
}

// Comments holds the three comment slots every node carries (spec §3):
// full-line comments immediately above it, one inline comment sharing
// its last line, and comments that belong inside an otherwise-empty
// bracketed construct.
type Comments struct {
	Leading  []Comment
	Trailing *Comment
	Dangling []Comment
}
