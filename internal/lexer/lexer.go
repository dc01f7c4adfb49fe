package lexer

import (
	"github.com/Razoric480/gdformat/internal/source"
	"github.com/Razoric480/gdformat/internal/token"
)

// Lexer turns one source file into a stream of tokens. It carries no
// state beyond a single file, so callers may lex many files concurrently
// each with their own Lexer (spec §5).
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	look *token.Token
	hold []token.Trivia

	pending      []token.Token
	bracketDepth int
	lineStart    uint32
	indentStack  []int

	atLineStart bool
	done        bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts,
		atLineStart: true,
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		t := lx.next()
		lx.look = &t
	}
	return *lx.look
}

// Next consumes and returns the next token.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		t := *lx.look
		lx.look = nil
		return t
	}
	return lx.next()
}

func (lx *Lexer) next() token.Token {
	if len(lx.pending) > 0 {
		t := lx.pending[0]
		lx.pending = lx.pending[1:]
		return lx.attachLeading(t)
	}

	if lx.atLineStart && lx.bracketDepth == 0 {
		lx.atLineStart = false
		if tok, handled := lx.handleLineStart(); handled {
			return lx.attachLeading(tok)
		}
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		if !lx.done {
			lx.done = true
			for len(lx.indentStack) > 0 {
				lx.indentStack = lx.indentStack[:len(lx.indentStack)-1]
				lx.pending = append(lx.pending, lx.mkStructural(token.Dedent))
			}
			if len(lx.pending) > 0 {
				t := lx.pending[0]
				lx.pending = lx.pending[1:]
				return lx.attachLeading(t)
			}
		}
		return lx.attachLeading(lx.mkStructural(token.EOF))
	}

	if lx.cursor.Peek() == '\n' {
		lx.cursor.Bump()
		lx.lineStart = lx.cursor.Off
		lx.atLineStart = true
		return lx.attachLeading(lx.mkStructural(token.Newline))
	}

	tok := lx.scanOne()
	return lx.attachLeading(tok)
}

// handleLineStart measures indentation at the start of a logical line
// and, if the line is not blank/comment-only, queues Indent/Dedent
// tokens ahead of the line's first real token (spec §4.1). It returns
// handled=false when the line turned out to be blank or comment-only,
// so the caller falls through to ordinary trivia/newline handling.
func (lx *Lexer) handleLineStart() (token.Token, bool) {
	tabs := lx.measureIndent()
	if lx.lineIsBlankOrComment() {
		return token.Token{}, false
	}
	lx.syncIndent(tabs)
	if len(lx.pending) > 0 {
		t := lx.pending[0]
		lx.pending = lx.pending[1:]
		return t, true
	}
	return token.Token{}, false
}

func (lx *Lexer) scanOne() token.Token {
	b := lx.cursor.Peek()

	switch {
	case b == '$':
		return lx.scanGetNode()
	case b == '"' || b == '\'':
		return lx.scanString()
	case b == 'r' || b == '&' || b == '^':
		if isStringPrefixStart(lx, b) {
			return lx.scanString()
		}
	}

	switch {
	case isIdentStartByte(b):
		return lx.scanIdentOrKeyword()
	case isDec(b):
		return lx.scanNumber()
	case b == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	case b >= utf8RuneSelf:
		if r, _ := lx.peekRune(); isIdentStartRune(r) {
			return lx.scanIdentOrKeyword()
		}
	}

	return lx.scanOperatorOrPunct()
}

// isStringPrefixStart reports whether the byte at the cursor begins a
// prefixed string literal (r"...", &"...", ^"...") rather than, e.g., an
// identifier starting with 'r' or the bitwise '&'/'^' operators.
func isStringPrefixStart(lx *Lexer, prefix byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != prefix {
		return false
	}
	return b1 == '"' || b1 == '\''
}

func (lx *Lexer) mkStructural(kind token.Kind) token.Token {
	sp := lx.emptySpan()
	return token.Token{Kind: kind, Span: sp}
}

func (lx *Lexer) emptySpan() source.Span {
	off := lx.cursor.Off
	return source.Span{File: lx.file.ID, Start: off, End: off}
}

func (lx *Lexer) attachLeading(t token.Token) token.Token {
	if h := lx.takeHold(); h != nil {
		t.Leading = h
	}
	return t
}
