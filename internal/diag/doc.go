// Package diag carries the lexer/parser diagnostic model: a Severity,
// a small Code enum (spec §7), a capped Bag collector, and the Reporter
// interface phases use to emit diagnostics without depending on how
// they are stored.
package diag
