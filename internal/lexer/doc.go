// Package lexer converts GDScript-style source text into a token
// stream. It tracks leading-tab indentation and emits synthetic
// Indent/Dedent/Newline tokens so the parser never has to look at raw
// whitespace (spec §4.1).
package lexer
