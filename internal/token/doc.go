// Package token defines lexical token kinds and trivia produced by the
// lexer.
//
// Invariants:
//   - Token.Text is a slice of the original source; the lexer never
//     copies or normalizes it.
//   - Token.Span matches Text exactly (Start..End).
//   - Indent/Dedent/Newline are synthetic: they carry no source text of
//     their own, only the span of the whitespace that produced them.
//   - Annotations are lexed as '@' (Kind: At) followed by Ident; there
//     is no per-annotation token kind.
package token
