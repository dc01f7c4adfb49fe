package lexer

import "github.com/Razoric480/gdformat/internal/token"

// collectLeadingTrivia skips horizontal whitespace and gathers any
// `#`-comments encountered before the next significant token into
// lx.hold. Outside brackets (bracketDepth == 0) it stops at a newline
// and leaves it for the caller, which emits a Newline token; inside
// brackets it skips a newline as just more whitespace.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			lx.cursor.Bump()
			continue
		}

		if lx.bracketDepth > 0 && b == '\n' {
			lx.cursor.Bump()
			lx.lineStart = lx.cursor.Off
			continue
		}

		if b == '#' {
			lx.scanCommentIntoHold()
			continue
		}

		break
	}
}

func (lx *Lexer) scanCommentIntoHold() {
	start := lx.cursor.Mark()
	col := lx.column(lx.cursor.Off)
	lx.cursor.Bump() // '#'
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind:   token.TriviaLineComment,
		Span:   sp,
		Text:   string(lx.file.Content[sp.Start:sp.End]),
		Column: col,
	})
}

// column returns the 1-based column of byte offset off on the current
// line, using the line-start offset the lexer has been tracking.
func (lx *Lexer) column(off uint32) uint32 {
	return off - lx.lineStart + 1
}

func (lx *Lexer) takeHold() []token.Trivia {
	if len(lx.hold) == 0 {
		return nil
	}
	h := lx.hold
	lx.hold = nil
	return h
}
